package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/justinas/nosurf"
)

var ErrRecovered = errors.New("recovered")

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy",
			"default-src 'self'; style-src 'self' fonts.googleapis.com; font-src fonts.gstatic.com")
		w.Header().Set("Referrer-Policy", "origin-when-cross-origin")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "deny")
		w.Header().Set("X-XSS-Protection", "0")

		// Hand over to the next handler in the chain.
		next.ServeHTTP(w, r)
	})
}

// logRequest writes the client address, protocol, method and URI of every request to the infoLog.
func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.infoLog.Printf("%s - %s %s %s", r.RemoteAddr, r.Proto, r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The deferred function runs while Go unwinds the stack after a panic.
		defer func() {
			// recover returns the panic value, or nil when the handler returned normally.
			if err := recover(); err != nil {
				// Ask Go's HTTP server to close the connection once the response is sent.
				w.Header().Set("Connection", "close")
				app.serverError(w, fmt.Errorf("%w: %s", ErrRecovered, err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// requireAuthentication sends anonymous visitors to the login page and remembers where they were going.
func (app *application) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Anonymous visitors go to the login page and the rest of the chain is skipped.
		if !app.isAuthenticated(r) {
			// Remember the requested path so accountLoginPost can send them back to it.
			app.sessionManager.Put(r.Context(), redirectPathAfterLoginKey, r.URL.Path)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		// Protected pages are never stored by the browser or intermediary caches.
		w.Header().Add("Cache-Control", "no-store")

		next.ServeHTTP(w, r)
	})
}

// noSurf rejects POST requests that do not carry the CSRF token issued in the csrf_token cookie.
func noSurf(next http.Handler) http.Handler {
	csrfHandler := nosurf.New(next)
	csrfHandler.SetBaseCookie(http.Cookie{
		Path:     "/",
		Secure:   true, // false to deploy without an SSL/TLS certificate
		HttpOnly: true,
	})

	return csrfHandler
}

func (app *application) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// GetInt returns 0 when the session holds no account ID,
		// in which case the request carries on as anonymous.
		id := app.sessionManager.GetInt(r.Context(), authenticatedAccountIDKey)
		if id == 0 {
			next.ServeHTTP(w, r)
			return
		}

		exists, err := app.accounts.Exists(id)
		if err != nil {
			app.serverError(w, err)
			return
		}

		// The account may have been removed since login, so only a live account marks the request
		// as authenticated. The flag travels in a copy of the request context.
		if exists {
			ctx := context.WithValue(r.Context(), isAuthenticatedContextKey, true)
			r = r.WithContext(ctx)
		}

		next.ServeHTTP(w, r)
	})
}
