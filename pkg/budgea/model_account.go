package budgea

import "github.com/shopspring/decimal"

type Currency struct {
	ID        string `json:"id"`
	Symbol    string `json:"symbol"`
	Prefix    bool   `json:"prefix"`
	Precision int    `json:"precision"`
}

// Account is a bank account discovered on a connection.
type Account struct {
	ID               int64               `json:"id"`
	IDConnection     *int64              `json:"id_connection,omitempty"`
	IDUser           *int64              `json:"id_user,omitempty"`
	IDSource         *int64              `json:"id_source,omitempty"`
	IDParent         *int64              `json:"id_parent,omitempty"`
	Number           *string             `json:"number,omitempty"`
	WebID            *string             `json:"webid,omitempty"`
	OriginalName     string              `json:"original_name"`
	Name             string              `json:"name"`
	Balance          decimal.NullDecimal `json:"balance"`
	Coming           decimal.NullDecimal `json:"coming"`
	Display          bool                `json:"display"`
	Disabled         DateTime            `json:"disabled"`
	Deleted          DateTime            `json:"deleted"`
	LastUpdate       DateTime            `json:"last_update"`
	IBAN             *string             `json:"iban,omitempty"`
	Currency         *Currency           `json:"currency,omitempty"`
	Type             string              `json:"type,omitempty"`
	IDType           *int64              `json:"id_type,omitempty"`
	Bookmarked       int                 `json:"bookmarked,omitempty"`
	Usage            *string             `json:"usage,omitempty"`
	Error            *string             `json:"error,omitempty"`
	FormattedBalance string              `json:"formatted_balance,omitempty"`
	Transactions     []Transaction       `json:"transactions,omitempty"`
}

// CurrencyCode returns the ISO code of the account currency, or "".
func (a *Account) CurrencyCode() string {
	if a.Currency == nil {
		return ""
	}
	return a.Currency.ID
}

type Accounts struct {
	Accounts []Account                  `json:"accounts"`
	Balance  decimal.Decimal            `json:"balance"`
	Balances map[string]decimal.Decimal `json:"balances,omitempty"`
	Total    int                        `json:"total,omitempty"`
}
