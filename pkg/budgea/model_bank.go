package budgea

// Bank is a connector: a bank or a provider supported by the platform.
type Bank struct {
	ID            int64          `json:"id"`
	UUID          string         `json:"uuid,omitempty"`
	Name          string         `json:"name"`
	Slug          string         `json:"slug,omitempty"`
	Code          *string        `json:"code,omitempty"`
	Color         *string        `json:"color,omitempty"`
	Hidden        bool           `json:"hidden"`
	Beta          bool           `json:"beta"`
	Charged       bool           `json:"charged"`
	Capabilities  []string       `json:"capabilities,omitempty"`
	AuthMechanism string         `json:"auth_mechanism,omitempty"`
	MonthsToFetch *int           `json:"months_to_fetch,omitempty"`
	SIRET         *string        `json:"siret,omitempty"`
	Fields        []Field        `json:"fields,omitempty"`
	Categories    []BankCategory `json:"categories,omitempty"`
	IDCategory    *int64         `json:"id_category,omitempty"`
}

type Banks struct {
	Banks []Bank `json:"banks"`
	Total int    `json:"total,omitempty"`
}

// Field describes one input of a connector login form.
type Field struct {
	Name     string       `json:"name"`
	Label    string       `json:"label"`
	Type     string       `json:"type"`
	Regex    *string      `json:"regex,omitempty"`
	Required bool         `json:"required"`
	AuthType *string      `json:"auth_type,omitempty"`
	Values   []FieldValue `json:"values,omitempty"`
}

type FieldValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Fields struct {
	Fields []Field `json:"fields"`
	Total  int     `json:"total,omitempty"`
}

type BankCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BankCategories struct {
	Categories []BankCategory `json:"bankscategories"`
	Total      int            `json:"total,omitempty"`
}
