package budgea

import "github.com/shopspring/decimal"

// Recipient is a beneficiary reachable from an account.
type Recipient struct {
	ID              int64     `json:"id"`
	IDAccount       int64     `json:"id_account"`
	IDTargetAccount *int64    `json:"id_target_account,omitempty"`
	Label           string    `json:"label"`
	BankName        *string   `json:"bank_name,omitempty"`
	IBAN            *string   `json:"iban,omitempty"`
	WebID           *string   `json:"webid,omitempty"`
	Category        *string   `json:"category,omitempty"`
	State           *string   `json:"state,omitempty"`
	Currency        *Currency `json:"currency,omitempty"`
	EnabledAt       DateTime  `json:"enabled_at"`
	ExpireDate      DateTime  `json:"expire_date"`
	LastUpdate      DateTime  `json:"last_update"`
	Deleted         DateTime  `json:"deleted"`
	AddVerified     bool      `json:"add_verified"`
}

type Recipients struct {
	Recipients []Recipient `json:"recipients"`
	Total      int         `json:"total,omitempty"`
}

// Transfer moves money from an account to a recipient.
type Transfer struct {
	ID            int64               `json:"id"`
	IDUser        *int64              `json:"id_user,omitempty"`
	IDAccount     int64               `json:"id_account"`
	IDRecipient   int64               `json:"id_recipient"`
	WebID         *string             `json:"webid,omitempty"`
	Amount        decimal.Decimal     `json:"amount"`
	Fees          decimal.NullDecimal `json:"fees"`
	Currency      *Currency           `json:"currency,omitempty"`
	Label         string              `json:"label"`
	ExecDate      Date                `json:"exec_date"`
	RegisterDate  DateTime            `json:"register_date"`
	State         string              `json:"state"`
	ErrorMessage  *string             `json:"error_message,omitempty"`
	AccountIBAN   *string             `json:"account_iban,omitempty"`
	RecipientIBAN *string             `json:"recipient_iban,omitempty"`
	Fields        []Field             `json:"fields,omitempty"`
}

type Transfers struct {
	Transfers []Transfer `json:"transfers"`
	Total     int        `json:"total,omitempty"`
}
