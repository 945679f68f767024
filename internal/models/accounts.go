package models

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type AccountModelInterface interface {
	Insert(account Account, password string) error
	Authenticate(email, password string) (int, error)
	Exists(id int) (bool, error)
}

// Account is an outfitter registered through the signup form.
type Account struct {
	ID            int
	FirstName     string
	LastName      string
	Email         string
	OutfitterName string
	DateOfBirth   time.Time
	Created       time.Time
}

type AccountModel struct {
	DB *sql.DB
}

func (m *AccountModel) Insert(account Account, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}

	statement := `INSERT INTO accounts (first_name, last_name, email, outfitter_name, date_of_birth, hashed_password, created)
VALUES(?, ?, ?, ?, ?, ?, UTC_TIMESTAMP())`

	_, err = m.DB.Exec(statement, account.FirstName, account.LastName, account.Email, account.OutfitterName,
		account.DateOfBirth, string(hashedPassword))
	if err != nil {
		// 1062 is the MySQL error number for a duplicate entry on a unique key.
		var mySQLError *mysql.MySQLError
		if errors.As(err, &mySQLError) {
			if mySQLError.Number == 1062 && strings.Contains(mySQLError.Message, "accounts_uc_email") {
				return ErrDuplicateEmail
			}
		}
		return err
	}

	return nil
}

// Authenticate returns the account ID when the email and password match a stored account.
func (m *AccountModel) Authenticate(email, password string) (int, error) {
	var id int
	var hashedPassword []byte

	query := `SELECT id, hashed_password FROM accounts WHERE email = ?`

	err := m.DB.QueryRow(query, email).Scan(&id, &hashedPassword)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrInvalidCredentials
		}
		return 0, err
	}

	err = bcrypt.CompareHashAndPassword(hashedPassword, []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return 0, ErrInvalidCredentials
		}
		return 0, err
	}

	return id, nil
}

func (m *AccountModel) Exists(id int) (bool, error) {
	var exists bool

	query := `SELECT EXISTS(SELECT true FROM accounts WHERE id = ?)`

	err := m.DB.QueryRow(query, id).Scan(&exists)

	return exists, err
}
