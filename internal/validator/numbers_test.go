package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/efuller/md-forms/internal/validator"
)

func TestIsBetween(t *testing.T) {
	tests := []struct {
		name               string
		input, floor, ceil int
		want               bool
	}{
		{"inside", 10, 9, 17, true},
		{"at floor", 9, 9, 17, true},
		{"at ceiling", 17, 9, 17, true},
		{"above", 18, 9, 17, false},
		{"below", 8, 9, 17, false},
		{"negative range", -5, -10, -1, true},
		{"zero input counts as missing", 0, 9, 17, false},
		{"zero floor counts as missing", 5, 0, 10, false},
		{"zero ceiling counts as missing", 5, 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.IsBetween(tt.input, tt.floor, tt.ceil))
		})
	}

	t.Run("floats", func(t *testing.T) {
		assert.True(t, validator.IsBetween(1.5, 0.5, 2.5))
		assert.False(t, validator.IsBetween(2.6, 0.5, 2.5))
	})
}
