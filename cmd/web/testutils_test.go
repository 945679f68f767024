package main

import (
	"bytes"
	"html"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"regexp"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-playground/form/v4"
	"github.com/stretchr/testify/require"

	"github.com/efuller/md-forms/internal/models"
	"github.com/efuller/md-forms/internal/models/mocks"
)

// csrfTokenRX captures the CSRF token value from a rendered form.
var csrfTokenRX = regexp.MustCompile(`<input type="hidden" name="csrf_token" value="(.+)">`)

func extractCSRFToken(t *testing.T, body string) string {
	t.Helper()

	matches := csrfTokenRX.FindStringSubmatch(body)
	if len(matches) < 2 {
		t.Fatal("no csrf token found in body")
	}

	return html.UnescapeString(matches[1])
}

// newTestApplication creates an instance of the application struct with mock models.
func newTestApplication(t *testing.T) *application {
	t.Helper()

	templateCache, err := newTemplateCache()
	require.NoError(t, err)

	catalog, err := models.NewCatalogModel()
	require.NoError(t, err)

	sessionManager := scs.New()
	sessionManager.Lifetime = 12 * time.Hour
	sessionManager.Cookie.Secure = true

	return &application{
		errorLog:       log.New(io.Discard, "", 0),
		infoLog:        log.New(io.Discard, "", 0),
		accounts:       &mocks.AccountModel{},
		submissions:    &mocks.SubmissionModel{},
		catalog:        catalog,
		templateCache:  templateCache,
		formDecoder:    form.NewDecoder(),
		sessionManager: sessionManager,
	}
}

// A custom testServer type that embeds an httptest.Server instance.
type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	t.Helper()

	ts := httptest.NewTLSServer(h)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	// Response cookies are stored and sent with later requests from the same client.
	ts.Client().Jar = jar

	// Return redirect responses to the caller instead of following them.
	ts.Client().CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &testServer{ts}
}

// get makes a GET request to a given url path using the test server client and returns the response
// status code, headers, and body.
func (ts *testServer) get(t *testing.T, urlPath string) (int, http.Header, string) {
	t.Helper()

	rs, err := ts.Client().Get(ts.URL + urlPath)
	require.NoError(t, err)
	defer rs.Body.Close()

	body, err := io.ReadAll(rs.Body)
	require.NoError(t, err)

	return rs.StatusCode, rs.Header, string(bytes.TrimSpace(body))
}

// postForm sends a POST request with form as the url-encoded body.
func (ts *testServer) postForm(t *testing.T, urlPath string, form url.Values) (int, http.Header, string) {
	t.Helper()

	rs, err := ts.Client().PostForm(ts.URL+urlPath, form)
	require.NoError(t, err)
	defer rs.Body.Close()

	body, err := io.ReadAll(rs.Body)
	require.NoError(t, err)

	return rs.StatusCode, rs.Header, string(bytes.TrimSpace(body))
}

// csrfToken loads urlPath and returns the CSRF token embedded in the page.
func (ts *testServer) csrfToken(t *testing.T, urlPath string) string {
	t.Helper()

	_, _, body := ts.get(t, urlPath)
	return extractCSRFToken(t, body)
}

// login signs in as the mock account so protected routes can be reached.
func (ts *testServer) login(t *testing.T) {
	t.Helper()

	form := url.Values{}
	form.Add("username", "alice@example.com")
	form.Add("password", "pa$$word")
	form.Add("csrf_token", ts.csrfToken(t, "/login"))

	code, _, _ := ts.postForm(t, "/login", form)
	require.Equal(t, http.StatusSeeOther, code)
}
