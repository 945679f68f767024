package main

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/efuller/md-forms/internal/models"
	"github.com/efuller/md-forms/internal/validator"
)

const (
	CardNumberLength = 16
	CVCLength        = 3
	ZipLength        = 5
)

// The leading token matters to validator.IsComposedOf, so these keep the order the inputs were designed with.
var (
	cardDigits = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"}
	cvcDigits  = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
)

type creditCardForm struct {
	FullName            string `form:"fullName"`
	CardNumber          string `form:"cardNumber"`
	CVC                 string `form:"cvc"`
	Month               string `form:"month"`
	Year                string `form:"year"`
	validator.Validator `form:"-"`
}

// address is one block of the shipping and billing form.
type address struct {
	FirstName string
	LastName  string
	Address   string
	City      string
	State     string
	Zip       string
	Country   string
}

type shippingBillingForm struct {
	Billing             address `form:"billing"`
	Shipping            address `form:"shipping"`
	SameInfo            bool    `form:"sameInfo"`
	validator.Validator `form:"-"`
}

func (app *application) creditCard(w http.ResponseWriter, r *http.Request) {
	data := app.newTemplateData(r)
	data.Form = creditCardForm{}
	app.render(w, http.StatusOK, "creditcard.page.tmpl", data)
}

func (app *application) creditCardPost(w http.ResponseWriter, r *http.Request) {
	var form creditCardForm

	err := app.decodePostForm(r, &form)
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	now := time.Now()

	form.CheckField(!validator.IsEmpty(form.FullName), "fullName", "Please enter your full name.")
	form.CheckField(validator.IsOfLength(form.FullName, MinNameChars), "fullName",
		"Full name needs to be at least 3 characters.")

	form.CheckField(!validator.IsEmpty(form.CardNumber), "cardNumber", "Please enter a card number.")
	form.CheckField(len(form.CardNumber) == CardNumberLength, "cardNumber", "Card number needs to be 16 digits long.")
	form.CheckField(validator.IsComposedOf(form.CardNumber, cardDigits), "cardNumber", "Please use digits 0 - 9.")
	form.CheckField(validator.IsCreditCard(form.CardNumber), "cardNumber", "Please enter a valid credit card number.")

	form.CheckField(!validator.IsEmpty(form.CVC), "cvc", "Please enter a CVC number.")
	form.CheckField(len(form.CVC) == CVCLength, "cvc", "CVC must be 3 digits.")
	form.CheckField(validator.IsComposedOf(form.CVC, cvcDigits), "cvc", "CVC must use digits 0 - 9.")
	// IsComposedOf ignores symbols, so a value like "---" needs the alphanumeric check too.
	form.CheckField(validator.IsAlphanumeric(form.CVC), "cvc", "CVC must use digits 0 - 9.")

	form.CheckField(validator.PermittedValue(form.Month, optionValues(monthOptions())...), "month",
		"Please select a month.")
	form.CheckField(validator.PermittedValue(form.Year, optionValues(yearOptions(now))...), "year",
		"Please select a year.")

	if _, bad := form.FieldErrors["month"]; !bad {
		if _, bad := form.FieldErrors["year"]; !bad && cardExpired(form.Month, form.Year, now) {
			form.AddNonFieldError("Card has expired. Please check the date.")
		}
	}

	if !form.Valid() {
		app.renderForm(w, r, "creditcard.page.tmpl", form)
		return
	}

	// Only the last four digits of the card are ever stored.
	app.recordSubmission(w, r, models.FormCreditCard, map[string]string{
		"fullName":  form.FullName,
		"cardLast4": form.CardNumber[len(form.CardNumber)-4:],
		"expires":   fmt.Sprintf("%s/%s", form.Month, form.Year),
	})
}

// cardExpired reports whether a card expiring in month/year is no longer valid on day now.
// A card stays valid through its whole expiry month.
func cardExpired(month, year string, now time.Time) bool {
	m, err := strconv.Atoi(month)
	if err != nil {
		return true
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return true
	}

	if y == now.Year() {
		return m < int(now.Month())
	}

	expires := time.Date(y, time.Month(m), 1, 0, 0, 0, 0, now.Location())

	return expires.Before(now)
}

func (app *application) shippingBilling(w http.ResponseWriter, r *http.Request) {
	data := app.newTemplateData(r)
	data.Form = shippingBillingForm{}
	app.render(w, http.StatusOK, "shipping.page.tmpl", data)
}

func (app *application) shippingBillingPost(w http.ResponseWriter, r *http.Request) {
	var form shippingBillingForm

	err := app.decodePostForm(r, &form)
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	// The "same as billing" checkbox copies the billing block over whatever shipping values were posted.
	if form.SameInfo {
		form.Shipping = form.Billing
	}

	form.checkAddress("billing", form.Billing)
	form.checkAddress("shipping", form.Shipping)

	if !form.Valid() {
		app.renderForm(w, r, "shipping.page.tmpl", form)
		return
	}

	fields := make(map[string]string)
	for prefix, a := range map[string]address{"billing": form.Billing, "shipping": form.Shipping} {
		fields[prefix+".name"] = a.FirstName + " " + a.LastName
		fields[prefix+".address"] = a.Address
		fields[prefix+".city"] = a.City
		fields[prefix+".state"] = a.State
		fields[prefix+".zip"] = a.Zip
		fields[prefix+".country"] = a.Country
	}

	app.recordSubmission(w, r, models.FormShipping, fields)
}

// checkAddress validates one address block. Field keys match the input names, e.g. "billing.Zip".
func (f *shippingBillingForm) checkAddress(prefix string, a address) {
	key := func(field string) string { return prefix + "." + field }

	f.CheckField(!validator.IsEmpty(a.FirstName), key("FirstName"), "Please enter a first name.")
	f.CheckField(validator.IsOfLength(a.FirstName, MinNameChars), key("FirstName"),
		"First name needs to be at least 3 characters.")

	f.CheckField(!validator.IsEmpty(a.LastName), key("LastName"), "Please enter a last name.")
	f.CheckField(validator.IsOfLength(a.LastName, MinNameChars), key("LastName"),
		"Last name needs to be at least 3 characters.")

	f.CheckField(!validator.IsEmpty(a.Address), key("Address"), "Please enter an address.")
	f.CheckField(!validator.IsEmpty(a.City), key("City"), "Please enter a city.")

	f.CheckField(validator.PermittedValue(a.State, optionValues(stateOptions)...), key("State"),
		"Please enter a state.")

	f.CheckField(!validator.IsEmpty(a.Zip), key("Zip"), "Zip required.")
	f.CheckField(validator.IsComposedOf(a.Zip, cardDigits), key("Zip"), "Please use 0 - 9.")
	f.CheckField(validator.IsAlphanumeric(a.Zip), key("Zip"), "Please use 0 - 9.")
	f.CheckField(len(a.Zip) == ZipLength, key("Zip"), "Please enter 5 digits.")

	f.CheckField(validator.PermittedValue(a.Country, optionValues(countryOptions)...), key("Country"),
		"Please enter a country.")
}
