package budgea

import "github.com/shopspring/decimal"

// Document is a file (bill, receipt, statement) attached to a user.
type Document struct {
	ID             int64               `json:"id"`
	IDUser         int64               `json:"id_user"`
	IDType         int64               `json:"id_type"`
	IDCategory     *int64              `json:"id_category,omitempty"`
	IDTransaction  *int64              `json:"id_transaction,omitempty"`
	IDSubscription *int64              `json:"id_subscription,omitempty"`
	IDFile         *int64              `json:"id_file,omitempty"`
	IDThumbnail    *int64              `json:"id_thumbnail,omitempty"`
	Name           string              `json:"name"`
	Date           Date                `json:"date"`
	DueDate        Date                `json:"duedate"`
	Timestamp      DateTime            `json:"timestamp"`
	TotalAmount    decimal.NullDecimal `json:"total_amount"`
	UntaxedAmount  decimal.NullDecimal `json:"untaxed_amount"`
	VAT            decimal.NullDecimal `json:"vat"`
	Income         bool                `json:"income"`
	URL            *string             `json:"url,omitempty"`
	ThumbURL       *string             `json:"thumb_url,omitempty"`
	Number         *string             `json:"number,omitempty"`
	Issuer         *string             `json:"issuer,omitempty"`
	Readonly       bool                `json:"readonly"`
	HasFile        bool                `json:"has_file"`
}

type Documents struct {
	Documents []Document `json:"documents"`
	Total     int        `json:"total,omitempty"`
}

type DocumentType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Attacheable bool   `json:"attacheable"`
	IDParent    *int64 `json:"id_parent,omitempty"`
}

type DocumentTypes struct {
	DocumentTypes []DocumentType `json:"documenttypes"`
	Total         int            `json:"total,omitempty"`
}
