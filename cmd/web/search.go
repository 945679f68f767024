package main

import (
	"net/http"
	"strings"

	"github.com/efuller/md-forms/internal/validator"
)

type searchForm struct {
	Query               string `form:"q"`
	Species             string `form:"species"`
	validator.Validator `form:"-"`
}

// search renders the search form and, once a query is submitted, the matching catalog animals.
// It is a GET form so results can be bookmarked.
func (app *application) search(w http.ResponseWriter, r *http.Request) {
	data := app.newTemplateData(r)

	if r.URL.RawQuery == "" {
		data.Form = searchForm{}
		app.render(w, http.StatusOK, "search.page.tmpl", data)
		return
	}

	var form searchForm

	err := app.decodeQuery(r, &form)
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	form.CheckField(!validator.IsEmpty(form.Query), "q", "Please enter a search term.")
	form.CheckField(validator.PermittedValue(form.Species, app.catalog.Species()...), "species",
		"Please select a species.")

	data.Form = form

	if !form.Valid() {
		app.render(w, http.StatusUnprocessableEntity, "search.page.tmpl", data)
		return
	}

	data.Searched = true
	data.Results = app.catalog.Search(strings.TrimSpace(form.Query), form.Species)

	app.render(w, http.StatusOK, "search.page.tmpl", data)
}
