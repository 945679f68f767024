package main

import (
	"fmt"
	"strconv"
	"time"
)

// option is a value/label pair rendered as a select option or radio button.
type option struct {
	Value string
	Label string
}

// formOptions holds the choices offered by the select and radio inputs.
type formOptions struct {
	States    []option
	Countries []option
	Timezones []option
	Months    []option
	Years     []option
	Answers   []option
	Species   []string
}

var (
	stateOptions = []option{
		{"AK", "Alaska"}, {"AZ", "Arizona"}, {"CA", "California"}, {"CO", "Colorado"},
		{"ID", "Idaho"}, {"MI", "Michigan"}, {"MN", "Minnesota"}, {"MT", "Montana"},
		{"NM", "New Mexico"}, {"OR", "Oregon"}, {"TX", "Texas"}, {"UT", "Utah"},
		{"WA", "Washington"}, {"WI", "Wisconsin"}, {"WY", "Wyoming"},
	}

	countryOptions = []option{
		{"US", "United States"},
		{"CA", "Canada"},
		{"MX", "Mexico"},
	}

	timezoneOptions = []option{
		{"America/New_York", "Eastern"},
		{"America/Chicago", "Central"},
		{"America/Denver", "Mountain"},
		{"America/Phoenix", "Arizona"},
		{"America/Los_Angeles", "Pacific"},
		{"America/Anchorage", "Alaska"},
		{"Pacific/Honolulu", "Hawaii"},
	}

	answerOptions = []option{
		{"email", "An email newsletter"},
		{"friend", "A friend"},
		{"search", "A search engine"},
		{"social", "Social media"},
		{"other", "Other"},
	}
)

func monthOptions() []option {
	months := make([]option, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, option{fmt.Sprintf("%02d", int(m)), m.String()})
	}
	return months
}

// yearOptions offers the current year and the following ten.
func yearOptions(now time.Time) []option {
	years := make([]option, 0, 11)
	for y := now.Year(); y <= now.Year()+10; y++ {
		years = append(years, option{strconv.Itoa(y), strconv.Itoa(y)})
	}
	return years
}

func newFormOptions(now time.Time, species []string) *formOptions {
	return &formOptions{
		States:    stateOptions,
		Countries: countryOptions,
		Timezones: timezoneOptions,
		Months:    monthOptions(),
		Years:     yearOptions(now),
		Answers:   answerOptions,
		Species:   species,
	}
}

// optionValues returns the Value of each option, for use with validator.PermittedValue.
func optionValues(options []option) []string {
	values := make([]string, len(options))
	for i, o := range options {
		values[i] = o.Value
	}
	return values
}
