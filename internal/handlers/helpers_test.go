package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/vincentkoh/portfolio-backend/internal/handlers"
	"github.com/vincentkoh/portfolio-backend/internal/routes"
	"github.com/vincentkoh/portfolio-backend/internal/session"
	"github.com/vincentkoh/portfolio-backend/internal/storage"
)

// client drives the API through the real router, carrying cookies between
// requests like a browser would. Each client gets fresh stores.
type client struct {
	t       *testing.T
	router  http.Handler
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T) *client {
	store := storage.NewMemStorage()
	sessions := session.NewMemory()
	h := handlers.New(store, sessions, false)

	r := chi.NewRouter()
	routes.Setup(r, h, sessions, store)

	return &client{t: t, router: r, cookies: make(map[string]*http.Cookie)}
}

// sameSiteClient shares the router (and therefore the stores) of another
// client but keeps its own cookie jar, simulating a second browser.
func (c *client) sameSiteClient() *client {
	return &client{t: c.t, router: c.router, cookies: make(map[string]*http.Cookie)}
}

func (c *client) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.MaxAge < 0 || cookie.Value == "" {
			delete(c.cookies, cookie.Name)
		} else {
			c.cookies[cookie.Name] = cookie
		}
	}
	return rec
}

func (c *client) register(username, password, accessCode string) *httptest.ResponseRecorder {
	return c.do(http.MethodPost, "/api/register", map[string]string{
		"username":   username,
		"password":   password,
		"accessCode": accessCode,
	})
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
