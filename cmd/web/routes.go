package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"

	"github.com/efuller/md-forms/ui"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	// Route httprouter's own 404s through the notFound helper.
	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.notFound(w)
	})

	// Serve CSS from the embedded file system instead of reading files from disk at runtime.
	fileServer := http.FileServer(http.FS(ui.Files))
	router.Handler(http.MethodGet, "/static/*filepath", fileServer)

	// A ping route for uptime checks and tests.
	router.HandlerFunc(http.MethodGet, "/ping", ping)

	// Routes that use sessions, CSRF protection and the authentication flag.
	dynamic := alice.New(app.sessionManager.LoadAndSave, noSurf, app.authenticate)

	router.Handler(http.MethodGet, "/", dynamic.ThenFunc(app.home))
	router.Handler(http.MethodGet, "/submission/:ref", dynamic.ThenFunc(app.submissionView))
	router.Handler(http.MethodGet, "/signup", dynamic.ThenFunc(app.accountSignup))
	router.Handler(http.MethodPost, "/signup", dynamic.ThenFunc(app.accountSignupPost))
	router.Handler(http.MethodGet, "/login", dynamic.ThenFunc(app.accountLogin))
	router.Handler(http.MethodPost, "/login", dynamic.ThenFunc(app.accountLoginPost))
	router.Handler(http.MethodGet, "/scheduling", dynamic.ThenFunc(app.scheduling))
	router.Handler(http.MethodPost, "/scheduling", dynamic.ThenFunc(app.schedulingPost))
	router.Handler(http.MethodGet, "/questionnaire", dynamic.ThenFunc(app.questionnaire))
	router.Handler(http.MethodPost, "/questionnaire", dynamic.ThenFunc(app.questionnairePost))
	router.Handler(http.MethodGet, "/search", dynamic.ThenFunc(app.search))

	// Payment and address forms need a signed-in account.
	protected := dynamic.Append(app.requireAuthentication)

	router.Handler(http.MethodGet, "/credit-card", protected.ThenFunc(app.creditCard))
	router.Handler(http.MethodPost, "/credit-card", protected.ThenFunc(app.creditCardPost))
	router.Handler(http.MethodGet, "/shipping-billing", protected.ThenFunc(app.shippingBilling))
	router.Handler(http.MethodPost, "/shipping-billing", protected.ThenFunc(app.shippingBillingPost))
	router.Handler(http.MethodPost, "/logout", protected.ThenFunc(app.accountLogoutPost))

	// Every request passes through the standard chain before reaching the router.
	standard := alice.New(app.recoverPanic, app.logRequest, secureHeaders)

	return standard.Then(router)
}
