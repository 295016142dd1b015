package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"inventario_web/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestRouter builds the real router over an in-memory database
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Producto{}))
	return NewRouter(db, "test-secret"), db
}

// browser drives the router like a cookie-keeping client
type browser struct {
	t       *testing.T
	router  *gin.Engine
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, router *gin.Engine) *browser {
	return &browser{t: t, router: router, cookies: make(map[string]*http.Cookie)}
}

// do performs one request, carrying and collecting session cookies
func (b *browser) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range b.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	b.router.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		b.cookies[ck.Name] = ck
	}
	return w
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, path, nil)
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	return b.do(http.MethodPost, path, form)
}

// register submits the registration form
func (b *browser) register(username, password, email string) *httptest.ResponseRecorder {
	return b.post("/register", url.Values{
		"username": {username},
		"password": {password},
		"email":    {email},
	})
}

// login submits the login form
func (b *browser) login(username, password string) *httptest.ResponseRecorder {
	return b.post("/login", url.Values{
		"username": {username},
		"password": {password},
	})
}

// signUp registers and logs in a fresh user in one step
func (b *browser) signUp(username, password, email string) {
	b.t.Helper()
	w := b.register(username, password, email)
	require.Equal(b.t, http.StatusFound, w.Code)
	w = b.login(username, password)
	require.Equal(b.t, http.StatusFound, w.Code)
}

// addProducto submits the add-product form
func (b *browser) addProducto(nombre, descripcion, precio, cantidad string) *httptest.ResponseRecorder {
	return b.post("/agregar_producto", url.Values{
		"nombre":      {nombre},
		"descripcion": {descripcion},
		"precio":      {precio},
		"cantidad":    {cantidad},
	})
}
