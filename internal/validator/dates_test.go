package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efuller/md-forms/internal/validator"
)

func day(offset int) string {
	return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
}

func TestParseDate(t *testing.T) {
	t.Run("browser date input", func(t *testing.T) {
		got, err := validator.ParseDate("2024-01-15")
		require.NoError(t, err)
		want := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local)
		assert.True(t, want.Equal(got), "got %s", got)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := validator.ParseDate("not a date")
		assert.ErrorIs(t, err, validator.ErrInvalidDate)
	})
}

func TestIsDate(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2024-01-15", true},
		{"2024/01/15", true},
		{"01/15/2024", true},
		{"2024-01-15T10:30:00Z", true},
		{"", false},
		{"not a date", false},
		{"2024-13-45", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, validator.IsDate(tt.input), "IsDate(%q)", tt.input)
	}
}

func TestIsBeforeDate(t *testing.T) {
	tests := []struct {
		name             string
		input, reference string
		want             bool
	}{
		{"earlier", "2024-01-01", "2024-06-01", true},
		{"same day is inclusive", "2024-06-01", "2024-06-01", true},
		{"later", "2024-06-02", "2024-06-01", false},
		{"missing input", "", "2024-06-01", false},
		{"missing reference", "2024-06-01", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validator.IsBeforeDate(tt.input, tt.reference)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid dates are errors", func(t *testing.T) {
		_, err := validator.IsBeforeDate("nope", "2024-06-01")
		assert.ErrorIs(t, err, validator.ErrInvalidDate)

		_, err = validator.IsBeforeDate("2024-06-01", "nope")
		assert.ErrorIs(t, err, validator.ErrInvalidDate)
	})
}

func TestIsAfterDate(t *testing.T) {
	tests := []struct {
		name             string
		input, reference string
		want             bool
	}{
		{"later", "2024-06-02", "2024-06-01", true},
		{"same day is inclusive", "2024-06-01", "2024-06-01", true},
		{"earlier", "2024-01-01", "2024-06-01", false},
		{"missing input", "", "2024-06-01", false},
		{"missing reference", "2024-06-01", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validator.IsAfterDate(tt.input, tt.reference)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid dates are errors", func(t *testing.T) {
		_, err := validator.IsAfterDate("2024-06-01", "someday")
		assert.ErrorIs(t, err, validator.ErrInvalidDate)
	})
}

func TestIsBeforeToday(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yesterday", day(-1), true},
		{"last year", day(-365), true},
		{"today", day(0), false},
		{"tomorrow", day(1), false},
		{"missing", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validator.IsBeforeToday(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid date is an error", func(t *testing.T) {
		_, err := validator.IsBeforeToday("not a date")
		assert.ErrorIs(t, err, validator.ErrInvalidDate)
	})
}

func TestIsAfterToday(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"tomorrow", day(1), true},
		{"next month", day(31), true},
		{"today", day(0), false},
		{"yesterday", day(-1), false},
		{"missing", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validator.IsAfterToday(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid date is an error", func(t *testing.T) {
		_, err := validator.IsAfterToday("not a date")
		assert.ErrorIs(t, err, validator.ErrInvalidDate)
	})
}
