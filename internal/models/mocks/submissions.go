package mocks

import (
	"time"

	"github.com/efuller/md-forms/internal/models"
)

// Reference is the only submission reference the mock knows about.
const Reference = "0b6f7a52-2f5c-4d1e-9a3c-5c2d1f8e7b10"

type SubmissionModel struct{}

// newMockSubmission creates an instance of the Submission struct with mock data.
func newMockSubmission() *models.Submission {
	return &models.Submission{
		ID:        1,
		Reference: Reference,
		Form:      models.FormScheduling,
		Fields: map[string]string{
			"date":  "2030-05-14",
			"time":  "10:00",
			"email": "alice@example.com",
		},
		Created: time.Now(),
	}
}

func (m *SubmissionModel) Insert(string, int, map[string]string) (string, error) {
	return Reference, nil
}

func (m *SubmissionModel) Get(reference string) (*models.Submission, error) {
	switch reference {
	case Reference:
		return newMockSubmission(), nil
	default:
		return nil, models.ErrNoRecord
	}
}

func (m *SubmissionModel) Latest(int) ([]*models.Submission, error) {
	return []*models.Submission{newMockSubmission()}, nil
}
