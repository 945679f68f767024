package models

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Form names recorded with each submission.
const (
	FormCreditCard    = "credit-card"
	FormShipping      = "shipping-billing"
	FormScheduling    = "scheduling"
	FormQuestionnaire = "questionnaire"
)

type SubmissionModelInterface interface {
	Insert(form string, accountID int, fields map[string]string) (string, error)
	Get(reference string) (*Submission, error)
	Latest(limit int) ([]*Submission, error)
}

// Submission is an accepted form post. Fields holds the validated values keyed by input name.
type Submission struct {
	ID        int
	Reference string
	Form      string
	AccountID int
	Fields    map[string]string
	Created   time.Time
}

// SubmissionModel wraps a database connection pool
type SubmissionModel struct {
	DB *sql.DB
}

// Insert stores the fields and returns the public reference of the new submission.
// An accountID of zero records an anonymous submission.
func (m *SubmissionModel) Insert(form string, accountID int, fields map[string]string) (string, error) {
	payload, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encoding %s submission: %w", form, err)
	}

	reference := uuid.NewString()

	statement := `INSERT INTO submissions (reference, form, account_id, payload, created)
VALUES(?, ?, ?, ?, UTC_TIMESTAMP())`

	account := sql.NullInt64{Int64: int64(accountID), Valid: accountID > 0}

	_, err = m.DB.Exec(statement, reference, form, account, payload)
	if err != nil {
		return "", err
	}

	return reference, nil
}

func (m *SubmissionModel) Get(reference string) (*Submission, error) {
	if _, err := uuid.Parse(reference); err != nil {
		return nil, ErrNoRecord
	}

	query := `SELECT id, reference, form, account_id, payload, created FROM submissions WHERE reference = ?`

	s, err := scanSubmission(m.DB.QueryRow(query, reference))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRecord
		}
		return nil, err
	}

	return s, nil
}

func (m *SubmissionModel) Latest(limit int) ([]*Submission, error) {
	query := `SELECT id, reference, form, account_id, payload, created FROM submissions ORDER BY id DESC LIMIT ?`

	rows, err := m.DB.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []*Submission

	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return submissions, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row scanner) (*Submission, error) {
	s := &Submission{}

	var account sql.NullInt64
	var payload []byte

	err := row.Scan(&s.ID, &s.Reference, &s.Form, &account, &payload, &s.Created)
	if err != nil {
		return nil, err
	}

	s.AccountID = int(account.Int64)

	if err := json.Unmarshal(payload, &s.Fields); err != nil {
		return nil, fmt.Errorf("decoding submission %s: %w", s.Reference, err)
	}

	return s, nil
}
