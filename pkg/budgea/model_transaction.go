package budgea

import "github.com/shopspring/decimal"

// Transaction is a bank transaction of an account.
type Transaction struct {
	ID                int64               `json:"id"`
	IDAccount         int64               `json:"id_account"`
	WebID             *string             `json:"webid,omitempty"`
	Date              Date                `json:"date"`
	RDate             Date                `json:"rdate"`
	VDate             Date                `json:"vdate"`
	BDate             Date                `json:"bdate"`
	ApplicationDate   Date                `json:"application_date"`
	DateScraped       DateTime            `json:"date_scraped"`
	Value             decimal.Decimal     `json:"value"`
	GrossValue        decimal.NullDecimal `json:"gross_value"`
	OriginalValue     decimal.NullDecimal `json:"original_value"`
	OriginalCurrency  *Currency           `json:"original_currency,omitempty"`
	Commission        decimal.NullDecimal `json:"commission"`
	Type              string              `json:"type"`
	OriginalWording   string              `json:"original_wording"`
	SimplifiedWording string              `json:"simplified_wording"`
	StemmedWording    string              `json:"stemmed_wording,omitempty"`
	Wording           *string             `json:"wording,omitempty"`
	IDCategory        *int64              `json:"id_category,omitempty"`
	State             string              `json:"state,omitempty"`
	Coming            bool                `json:"coming"`
	Active            bool                `json:"active"`
	IDCluster         *int64              `json:"id_cluster,omitempty"`
	Comment           *string             `json:"comment,omitempty"`
	Card              *string             `json:"card,omitempty"`
	Country           *string             `json:"country,omitempty"`
	LastUpdate        DateTime            `json:"last_update"`
	Deleted           DateTime            `json:"deleted"`
	DocumentsCount    int                 `json:"documents_count,omitempty"`
}

// Label returns the user wording when set, otherwise the simplified one.
func (t *Transaction) Label() string {
	if t.Wording != nil && *t.Wording != "" {
		return *t.Wording
	}
	if t.SimplifiedWording != "" {
		return t.SimplifiedWording
	}
	return t.OriginalWording
}

type Transactions struct {
	Transactions  []Transaction `json:"transactions"`
	FirstDate     Date          `json:"first_date"`
	LastDate      Date          `json:"last_date"`
	ResultMinDate Date          `json:"result_min_date"`
	ResultMaxDate Date          `json:"result_max_date"`
	Total         int           `json:"total,omitempty"`
}
