package budgea

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidAlert = errors.New("invalid user alert")

// UserAlert configures the balance, expense and income notifications of a user.
type UserAlert struct {
	ID               int64            `json:"id"`
	Type             string           `json:"type"`
	ValueType        string           `json:"value_type"`
	Apply            *string          `json:"apply,omitempty"`
	Enabled          bool             `json:"enabled"`
	BalanceMax       decimal.Decimal  `json:"balance_max"`
	BalanceMin1      decimal.Decimal  `json:"balance_min1"`
	BalanceMin2      decimal.Decimal  `json:"balance_min2"`
	ExpenseMax       decimal.Decimal  `json:"expense_max"`
	IncomeMax        *decimal.Decimal `json:"income_max,omitempty"`
	DateRange        *int             `json:"date_range,omitempty"`
	ResumeEnabled    bool             `json:"resume_enabled"`
	ResumeFrequency  int              `json:"resume_frequency"`
	TransactionTypes *string          `json:"transaction_types,omitempty"`
}

// NewUserAlert returns an enabled alert with the server-side thresholds.
func NewUserAlert(alertType, valueType string) *UserAlert {
	incomeMax := decimal.NewFromInt(500)
	return &UserAlert{
		Type:          alertType,
		ValueType:     valueType,
		Enabled:       true,
		BalanceMax:    decimal.NewFromInt(10000),
		BalanceMin1:   decimal.NewFromInt(500),
		BalanceMin2:   decimal.Zero,
		ExpenseMax:    decimal.NewFromInt(500),
		IncomeMax:     &incomeMax,
		ResumeEnabled: true,
	}
}

// Validate checks the fields the API refuses to store empty.
func (a *UserAlert) Validate() error {
	if a.Type == "" {
		return fmt.Errorf("%w: type must not be empty", ErrInvalidAlert)
	}
	if a.ValueType == "" {
		return fmt.Errorf("%w: value_type must not be empty", ErrInvalidAlert)
	}
	if a.ResumeFrequency < 0 {
		return fmt.Errorf("%w: resume_frequency must not be negative", ErrInvalidAlert)
	}
	return nil
}

// Params returns the alert as form parameters for the create and update calls.
func (a *UserAlert) Params() Params {
	p := Params{
		"type":             a.Type,
		"value_type":       a.ValueType,
		"enabled":          a.Enabled,
		"balance_max":      a.BalanceMax,
		"balance_min1":     a.BalanceMin1,
		"balance_min2":     a.BalanceMin2,
		"expense_max":      a.ExpenseMax,
		"resume_enabled":   a.ResumeEnabled,
		"resume_frequency": a.ResumeFrequency,
	}
	if a.Apply != nil {
		p["apply"] = *a.Apply
	}
	if a.IncomeMax != nil {
		p["income_max"] = *a.IncomeMax
	}
	if a.DateRange != nil {
		p["date_range"] = *a.DateRange
	}
	if a.TransactionTypes != nil {
		p["transaction_types"] = *a.TransactionTypes
	}
	return p
}

type UserAlerts struct {
	Alerts []UserAlert `json:"alerts"`
	Total  int         `json:"total,omitempty"`
}
