package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanDate(t *testing.T) {
	tests := []struct {
		name string
		tm   time.Time
		want string
	}{
		{
			name: "UTC",
			tm:   time.Date(2023, 7, 19, 10, 15, 0, 0, time.UTC),
			want: "Jul 19 2023 at 10:15",
		},
		{
			name: "Empty",
			tm:   time.Time{},
			want: "",
		},
		{
			name: "CET",
			tm:   time.Date(2023, 7, 19, 10, 15, 0, 0, time.FixedZone("CET", 1*60*60)),
			want: "Jul 19 2023 at 09:15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanDate(tt.tm))
		})
	}
}

func TestFormTitle(t *testing.T) {
	assert.Equal(t, "Shipping Billing", formTitle("shipping-billing"))
	assert.Equal(t, "Scheduling", formTitle("scheduling"))
	assert.Equal(t, "", formTitle(""))
}

func TestTemplateCache(t *testing.T) {
	cache, err := newTemplateCache()
	assert.NoError(t, err)

	for _, page := range []string{
		"home.page.tmpl", "signup.page.tmpl", "login.page.tmpl", "creditcard.page.tmpl",
		"shipping.page.tmpl", "scheduling.page.tmpl", "questionnaire.page.tmpl",
		"search.page.tmpl", "submission.page.tmpl",
	} {
		assert.Contains(t, cache, page)
	}
}
