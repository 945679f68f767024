package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/efuller/md-forms/internal/models"
	"github.com/efuller/md-forms/internal/validator"
)

const (
	MinNameChars     = 3
	MinPasswordChars = 6
	MinimumAge       = 13
	MinBirthYear     = 1000
	LatestLimit      = 5
)

// The struct tags tell the go-playground/form decoder how to map HTML form values into the different struct fields.
// The struct tag `form:"-"` tells the decoder to completely ignore a field during decoding.
type accountSignupForm struct {
	FirstName           string `form:"firstName"`
	LastName            string `form:"lastName"`
	Email               string `form:"email"`
	OutfitterName       string `form:"outfitterName"`
	DateOfBirth         string `form:"dateOfBirth"`
	Password            string `form:"password"`
	PasswordConfirm     string `form:"passwordConfirm"`
	validator.Validator `form:"-"`
}

type accountLoginForm struct {
	Username            string `form:"username"`
	Password            string `form:"password"`
	validator.Validator `form:"-"`
}

// home lists the forms along with the most recent submissions.
func (app *application) home(w http.ResponseWriter, r *http.Request) {
	submissions, err := app.submissions.Latest(LatestLimit)
	if err != nil {
		app.serverError(w, err)
		return
	}

	data := app.newTemplateData(r)
	data.Submissions = submissions

	app.render(w, http.StatusOK, "home.page.tmpl", data)
}

func (app *application) submissionView(w http.ResponseWriter, r *http.Request) {
	// ParamsFromContext returns the route parameters httprouter stored in the request context.
	params := httprouter.ParamsFromContext(r.Context())

	// Unknown and malformed references both come back as ErrNoRecord.
	submission, err := app.submissions.Get(params.ByName("ref"))
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			app.notFound(w)
		} else {
			app.serverError(w, err)
		}
		return
	}

	data := app.newTemplateData(r)
	data.Submission = submission

	app.render(w, http.StatusOK, "submission.page.tmpl", data)
}

// recordSubmission stores an accepted form, flashes a confirmation and redirects to its receipt.
func (app *application) recordSubmission(w http.ResponseWriter, r *http.Request, form string, fields map[string]string) {
	// Anonymous visitors are recorded with account ID 0.
	reference, err := app.submissions.Insert(form, app.accountID(r), fields)
	if err != nil {
		app.serverError(w, err)
		return
	}

	app.infoLog.Printf("accepted %s submission %s", form, reference)

	// Put adds a flash message that the receipt page pops and shows once.
	app.sessionManager.Put(r.Context(), flashKey, "Thanks! Your form was submitted.")

	http.Redirect(w, r, fmt.Sprintf("/submission/%s", reference), http.StatusSeeOther)
}

func (app *application) accountSignup(w http.ResponseWriter, r *http.Request) {
	data := app.newTemplateData(r)
	// An empty form keeps templateData.Form non-nil for the template.
	data.Form = accountSignupForm{}
	app.render(w, http.StatusOK, "signup.page.tmpl", data)
}

func (app *application) accountSignupPost(w http.ResponseWriter, r *http.Request) {
	var form accountSignupForm

	err := app.decodePostForm(r, &form)
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	// Each field reports only its first failing check, matching the order the messages appear on the page.
	form.CheckField(!validator.IsEmpty(form.FirstName), "firstName", "Please enter a first name.")
	form.CheckField(validator.IsOfLength(form.FirstName, MinNameChars), "firstName",
		"First name needs to be at least 3 characters.")

	form.CheckField(!validator.IsEmpty(form.LastName), "lastName", "Please enter a last name.")
	form.CheckField(validator.IsOfLength(form.LastName, MinNameChars), "lastName",
		"Last name needs to be at least 3 characters.")

	form.CheckField(!validator.IsEmpty(form.Email), "email", "Please enter an email address.")
	form.CheckField(validator.IsEmailAddress(form.Email), "email", "Please enter a valid email address.")

	form.CheckField(!validator.IsEmpty(form.OutfitterName), "outfitterName", "Please enter an outfitter name.")
	form.CheckField(validator.IsOfLength(form.OutfitterName, MinNameChars), "outfitterName",
		"Name needs to be at least 3 characters.")

	form.CheckField(!validator.IsEmpty(form.DateOfBirth), "dateOfBirth", "Please enter a date of birth.")
	form.CheckField(validator.IsDate(form.DateOfBirth), "dateOfBirth", "Please enter a valid date of birth.")
	form.CheckField(plausibleBirthDate(form.DateOfBirth, time.Now()), "dateOfBirth",
		"Please enter a valid date of birth.")
	form.CheckField(validator.IsOfAge(form.DateOfBirth, MinimumAge), "dateOfBirth",
		"You must be at least 13 to register.")

	form.CheckField(!validator.IsEmpty(form.Password), "password", "Please enter a password.")
	form.CheckField(!validator.IsEmpty(form.PasswordConfirm), "passwordConfirm", "Please confirm your password.")

	// The length and match checks apply once both passwords are present, and mark both fields.
	if !validator.IsEmpty(form.Password) && !validator.IsEmpty(form.PasswordConfirm) {
		if !validator.IsOfLength(form.Password, MinPasswordChars) ||
			!validator.IsOfLength(form.PasswordConfirm, MinPasswordChars) {
			form.AddFieldError("password", "Passwords must be at least 6 characters long.")
			form.AddFieldError("passwordConfirm", "Passwords must be at least 6 characters long.")
		} else if form.Password != form.PasswordConfirm {
			form.AddFieldError("password", "Passwords do not match.")
			form.AddFieldError("passwordConfirm", "Passwords do not match.")
		}
	}

	// If there are validation errors, redisplay the signup form along with a 422 status code.
	if !form.Valid() {
		app.renderForm(w, r, "signup.page.tmpl", form)
		return
	}

	// The date already passed IsDate, so this parse succeeds.
	dob, err := validator.ParseDate(form.DateOfBirth)
	if err != nil {
		app.serverError(w, err)
		return
	}

	account := models.Account{
		FirstName:     form.FirstName,
		LastName:      form.LastName,
		Email:         form.Email,
		OutfitterName: form.OutfitterName,
		DateOfBirth:   dob,
	}

	// Insert hashes the password; a taken email comes back as ErrDuplicateEmail.
	err = app.accounts.Insert(account, form.Password)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			form.AddFieldError("email", "Email address is already in use.")
			app.renderForm(w, r, "signup.page.tmpl", form)
		} else {
			app.serverError(w, err)
		}
		return
	}

	app.sessionManager.Put(r.Context(), flashKey, "Your signup was successful. Please log in.")

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// plausibleBirthDate reports whether input parses to a day before now and no earlier than MinBirthYear,
// which keeps it inside the range of a MySQL DATE column.
func plausibleBirthDate(input string, now time.Time) bool {
	dob, err := validator.ParseDate(input)
	if err != nil {
		return false
	}

	return dob.Year() >= MinBirthYear && dob.Before(now)
}

func (app *application) accountLogin(w http.ResponseWriter, r *http.Request) {
	data := app.newTemplateData(r)
	data.Form = accountLoginForm{}
	app.render(w, http.StatusOK, "login.page.tmpl", data)
}

func (app *application) accountLoginPost(w http.ResponseWriter, r *http.Request) {
	var form accountLoginForm

	err := app.decodePostForm(r, &form)
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	form.CheckField(!validator.IsEmpty(form.Username), "username", "Please enter a user name.")
	form.CheckField(validator.IsOfLength(form.Username, MinNameChars), "username",
		"User name needs to be at least 3 characters.")
	form.CheckField(!validator.IsEmpty(form.Password), "password", "Please enter a password.")
	form.CheckField(validator.IsOfLength(form.Password, MinPasswordChars), "password",
		"Passwords must be at least 6 characters long.")

	if !form.Valid() {
		app.renderForm(w, r, "login.page.tmpl", form)
		return
	}

	// Wrong credentials get a generic non-field error so the form does not reveal which part was wrong.
	id, err := app.accounts.Authenticate(form.Username, form.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			form.AddNonFieldError("User name or password is incorrect.")
			app.renderForm(w, r, "login.page.tmpl", form)
		} else {
			app.serverError(w, err)
		}
		return
	}

	// Renew the session ID whenever the authentication state changes.
	err = app.sessionManager.RenewToken(r.Context())
	if err != nil {
		app.serverError(w, err)
		return
	}

	// Storing the account ID in the session signs the user in.
	app.sessionManager.Put(r.Context(), authenticatedAccountIDKey, id)

	// PopString returns "" when requireAuthentication did not store a path.
	urlPath := app.sessionManager.PopString(r.Context(), redirectPathAfterLoginKey)
	if urlPath != "" {
		http.Redirect(w, r, urlPath, http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *application) accountLogoutPost(w http.ResponseWriter, r *http.Request) {
	// Logging out changes the authentication state too, so the session ID is renewed here as well.
	err := app.sessionManager.RenewToken(r.Context())
	if err != nil {
		app.serverError(w, err)
		return
	}

	// Removing the account ID from the session signs the user out.
	app.sessionManager.Remove(r.Context(), authenticatedAccountIDKey)

	app.sessionManager.Put(r.Context(), flashKey, "You've been logged out successfully!")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ping answers health checks with 200 OK.
func ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodGet {
		fmt.Fprintln(w, "OK")
	}
}
