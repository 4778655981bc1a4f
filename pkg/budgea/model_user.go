package budgea

import "encoding/json"

type User struct {
	ID       int64    `json:"id"`
	Signin   DateTime `json:"signin"`
	Platform string   `json:"platform,omitempty"`
}

type Users struct {
	Users []User `json:"users"`
	Total int    `json:"total,omitempty"`
}

// UserConfig holds the per-user configuration keys; values are left raw
// because the API mixes strings and numbers.
type UserConfig map[string]json.RawMessage
