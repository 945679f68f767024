package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecureHeaders(t *testing.T) {
	rr := httptest.NewRecorder()

	r, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	secureHeaders(next).ServeHTTP(rr, r)

	rs := rr.Result()
	defer rs.Body.Close()

	expectedCSP := "default-src 'self'; style-src 'self' fonts.googleapis.com; font-src fonts.gstatic.com"
	assert.Equal(t, expectedCSP, rs.Header.Get("Content-Security-Policy"))
	assert.Equal(t, "origin-when-cross-origin", rs.Header.Get("Referrer-Policy"))
	assert.Equal(t, "nosniff", rs.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "deny", rs.Header.Get("X-Frame-Options"))
	assert.Equal(t, "0", rs.Header.Get("X-XSS-Protection"))

	assert.Equal(t, http.StatusOK, rs.StatusCode)

	body, err := io.ReadAll(rs.Body)
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))
}

func TestRecoverPanic(t *testing.T) {
	app := newTestApplication(t)

	rr := httptest.NewRecorder()

	r, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	app.recoverPanic(next).ServeHTTP(rr, r)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "close", rr.Header().Get("Connection"))
}

func TestRequireAuthentication(t *testing.T) {
	app := newTestApplication(t)
	ts := newTestServer(t, app.routes())
	defer ts.Close()

	t.Run("anonymous", func(t *testing.T) {
		code, header, _ := ts.get(t, "/credit-card")

		assert.Equal(t, http.StatusSeeOther, code)
		assert.Equal(t, "/login", header.Get("Location"))
	})

	t.Run("returns to the requested page after login", func(t *testing.T) {
		ts.get(t, "/shipping-billing")

		form := map[string][]string{
			"username":   {"alice@example.com"},
			"password":   {"pa$$word"},
			"csrf_token": {ts.csrfToken(t, "/login")},
		}

		code, header, _ := ts.postForm(t, "/login", form)

		assert.Equal(t, http.StatusSeeOther, code)
		assert.Equal(t, "/shipping-billing", header.Get("Location"))
	})

	t.Run("signed in", func(t *testing.T) {
		code, header, _ := ts.get(t, "/credit-card")

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "no-store", header.Get("Cache-Control"))
	})
}
