// Package mirror copies the accounts and transactions of linked Budgea users
// into local storage.
package mirror

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrTokenUnauthorized is returned when Budgea rejects a user token (401).
	// The token is cleared and callers should stop syncing this user.
	ErrTokenUnauthorized = errors.New("budgea token unauthorized")
	ErrNoToken           = errors.New("user has no budgea token")
	ErrUserNotFound      = errors.New("linked user not found")
)

// LinkedUser is a Budgea user whose data is mirrored. Token is decrypted.
type LinkedUser struct {
	ID                  int64
	BudgeaUserID        int64
	Label               string
	Token               *string
	LastTransactionSync *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// HasToken reports whether the user can be synced.
func (u *LinkedUser) HasToken() bool {
	return u.Token != nil && *u.Token != ""
}

type Account struct {
	ID           int64
	LinkedUserID int64
	ConnectionID *int64
	Name         string
	Type         string
	Currency     string
	Balance      decimal.Decimal
	IBAN         *string
	Disabled     bool
	LastUpdate   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UpsertAccountParams struct {
	ID           int64
	LinkedUserID int64
	ConnectionID *int64
	Name         string
	Type         string
	Currency     string
	Balance      decimal.Decimal
	IBAN         *string
	Disabled     bool
	LastUpdate   *time.Time
}

type Transaction struct {
	ID           int64
	AccountID    int64
	LinkedUserID int64
	Date         time.Time
	Value        decimal.Decimal
	Wording      string
	Type         string
	CategoryID   *int64
	Coming       bool
	Deleted      bool
	LastUpdate   *time.Time
}

type UpsertTransactionParams struct {
	ID           int64
	AccountID    int64
	LinkedUserID int64
	Date         time.Time
	Value        decimal.Decimal
	Wording      string
	Type         string
	CategoryID   *int64
	Coming       bool
	LastUpdate   *time.Time
}

// ConnectionState is the last known state of a bank connection.
type ConnectionState struct {
	ID           int64
	LinkedUserID int64
	BankID       int64
	BankName     string
	State        *string
	ErrorMessage *string
	Active       bool
	LastUpdate   *time.Time
}
