package main

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/efuller/md-forms/internal/models"
	"github.com/efuller/md-forms/internal/validator"
)

const (
	OpeningHour     = 9
	ClosingHour     = 17
	MaxMessageWords = 200
	MinOtherChars   = 3
)

type schedulingForm struct {
	Date                string `form:"date"`
	Time                string `form:"time"`
	Timezone            string `form:"timezone"`
	Message             string `form:"message"`
	PhoneNumber         string `form:"phoneNumber"`
	Email               string `form:"email"`
	validator.Validator `form:"-"`
}

type questionnaireForm struct {
	Answer              string `form:"answer"`
	OtherText           string `form:"otherText"`
	validator.Validator `form:"-"`
}

func (app *application) scheduling(w http.ResponseWriter, r *http.Request) {
	data := app.newTemplateData(r)
	data.Form = schedulingForm{}
	app.render(w, http.StatusOK, "scheduling.page.tmpl", data)
}

func (app *application) schedulingPost(w http.ResponseWriter, r *http.Request) {
	var form schedulingForm

	err := app.decodePostForm(r, &form)
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	form.CheckField(!validator.IsEmpty(form.Date), "date", "Please enter a date.")
	form.CheckField(validator.IsDate(form.Date), "date", "Please enter a valid date.")

	if _, bad := form.FieldErrors["date"]; !bad {
		after, err := validator.IsAfterToday(form.Date)
		if err != nil && !errors.Is(err, validator.ErrInvalidDate) {
			app.serverError(w, err)
			return
		}
		form.CheckField(after, "date", "Cannot make same-day appointments.")
	}

	form.CheckField(!validator.IsEmpty(form.Time), "time", "Please enter a time.")
	form.CheckField(validator.IsBetween(leadingInt(form.Time), OpeningHour, ClosingHour), "time",
		"Time must be between 9:00AM and 5:00PM.")

	form.CheckField(validator.PermittedValue(form.Timezone, optionValues(timezoneOptions)...), "timezone",
		"Please enter a timezone.")

	form.CheckField(!validator.IsEmpty(form.Message), "message", "Please enter a message.")
	form.CheckField(validator.LessWordsThan(form.Message, MaxMessageWords), "message",
		"Message must be 200 words or fewer.")

	form.CheckField(!validator.IsEmpty(form.PhoneNumber), "phoneNumber", "Please enter a phone number.")
	form.CheckField(validator.IsPhoneNumber(form.PhoneNumber), "phoneNumber",
		"Please enter a valid phone number. 444-333-2222")

	form.CheckField(!validator.IsEmpty(form.Email), "email", "Please enter an email address.")
	form.CheckField(validator.IsEmailAddress(form.Email), "email", "Please enter a valid email address.")

	if !form.Valid() {
		app.renderForm(w, r, "scheduling.page.tmpl", form)
		return
	}

	app.recordSubmission(w, r, models.FormScheduling, map[string]string{
		"date":        form.Date,
		"time":        form.Time,
		"timezone":    form.Timezone,
		"message":     form.Message,
		"phoneNumber": form.PhoneNumber,
		"email":       form.Email,
	})
}

// leadingInt parses the integer at the start of s, ignoring whatever follows it,
// so "09:30" gives 9. It returns 0 when s does not start with a number.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func (app *application) questionnaire(w http.ResponseWriter, r *http.Request) {
	data := app.newTemplateData(r)
	data.Form = questionnaireForm{}
	app.render(w, http.StatusOK, "questionnaire.page.tmpl", data)
}

func (app *application) questionnairePost(w http.ResponseWriter, r *http.Request) {
	var form questionnaireForm

	err := app.decodePostForm(r, &form)
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	if !validator.PermittedValue(form.Answer, optionValues(answerOptions)...) {
		form.AddNonFieldError("Please choose one of the answers.")
	}

	// Free text is only required when "other" is the chosen answer.
	if form.Answer == "other" {
		form.CheckField(!validator.IsEmpty(form.OtherText), "otherText", "Please enter text for other.")
		form.CheckField(validator.IsOfLength(form.OtherText, MinOtherChars), "otherText",
			"Text needs to be at least 3 characters.")
	}

	if !form.Valid() {
		app.renderForm(w, r, "questionnaire.page.tmpl", form)
		return
	}

	fields := map[string]string{"answer": form.Answer}
	if form.Answer == "other" {
		fields["otherText"] = form.OtherText
	}

	app.recordSubmission(w, r, models.FormQuestionnaire, fields)
}
