package main

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"runtime/debug"
	"time"

	"github.com/go-playground/form/v4"
	"github.com/justinas/nosurf"
)

var ErrNoTmpl = errors.New("template does not exist")

// serverError helper writes an error message and a stack trace to the errorLog,
// then sends a generic 500 Internal Server Error response to the user.
func (app *application) serverError(w http.ResponseWriter, err error) {
	trace := fmt.Sprintf("%s\n%s", err.Error(), debug.Stack())
	app.errorLog.Output(2, trace)

	if app.debug {
		http.Error(w, trace, http.StatusInternalServerError)
		return
	}

	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// clientError helper sends a specific status code and its description to the user.
func (app *application) clientError(w http.ResponseWriter, status int) {
	http.Error(w, http.StatusText(status), status)
}

func (app *application) notFound(w http.ResponseWriter) {
	app.clientError(w, http.StatusNotFound)
}

// render executes the cached template set for page and writes it with the given status.
func (app *application) render(w http.ResponseWriter, status int, page string, data *templateData) {
	// The page file name is the template cache key.
	ts, ok := app.templateCache[page]
	if !ok {
		err := fmt.Errorf("%w: %s", ErrNoTmpl, page)
		app.serverError(w, err)
		return
	}

	buf := new(bytes.Buffer)

	// Render into a buffer first so a template error never produces a half-written page.
	err := ts.ExecuteTemplate(buf, "base", data)
	if err != nil {
		app.serverError(w, err)
		return
	}

	w.WriteHeader(status)

	// Copy the rendered page from the buffer to the response.
	_, err = buf.WriteTo(w)
	if err != nil {
		app.serverError(w, err)
		return
	}
}

// renderForm re-renders page with the submitted form and a 422 status.
func (app *application) renderForm(w http.ResponseWriter, r *http.Request, page string, form any) {
	data := app.newTemplateData(r)
	data.Form = form
	app.render(w, http.StatusUnprocessableEntity, page, data)
}

// newTemplateData returns the data every page needs: auth state, flash, CSRF token and select options.
func (app *application) newTemplateData(r *http.Request) *templateData {
	now := time.Now()

	return &templateData{
		IsAuthenticated: app.isAuthenticated(r),
		CurrentYear:     now.Year(),
		Flash:           app.sessionManager.PopString(r.Context(), flashKey),
		CSRFToken:       nosurf.Token(r),
		Options:         newFormOptions(now, app.catalog.Species()),
	}
}

// decodePostForm parses the request body and decodes the form values into dst, which must be a non-nil pointer.
func (app *application) decodePostForm(r *http.Request, dst any) error {
	err := r.ParseForm()
	if err != nil {
		return err
	}

	return app.decodeValues(dst, r.PostForm)
}

// decodeQuery decodes the URL query string into dst, for GET forms.
func (app *application) decodeQuery(r *http.Request, dst any) error {
	return app.decodeValues(dst, r.URL.Query())
}

func (app *application) decodeValues(dst any, values url.Values) error {
	err := app.formDecoder.Decode(dst, values)
	if err != nil {
		// A nil or non-pointer dst is a programming error rather than bad input, so it
		// surfaces as an *form.InvalidDecoderError and is escalated to a panic.
		var invalidDecoderError *form.InvalidDecoderError

		if errors.As(err, &invalidDecoderError) {
			panic(err)
		}

		// Anything else is malformed client input.
		return fmt.Errorf("form decoding error: %w", err)
	}

	return nil
}

// isAuthenticated reads the flag set by the authenticate middleware.
func (app *application) isAuthenticated(r *http.Request) bool {
	isAuthenticated, ok := r.Context().Value(isAuthenticatedContextKey).(bool)
	if !ok {
		return false
	}

	return isAuthenticated
}

// accountID returns the signed-in account, or 0 for an anonymous visitor.
func (app *application) accountID(r *http.Request) int {
	if !app.isAuthenticated(r) {
		return 0
	}
	return app.sessionManager.GetInt(r.Context(), authenticatedAccountIDKey)
}
