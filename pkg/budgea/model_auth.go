package budgea

import "encoding/json"

// AuthInit is returned when an anonymous user is created.
type AuthInit struct {
	AuthToken string `json:"auth_token"`
	Type      string `json:"type"`
	IDUser    int64  `json:"id_user"`
	ExpiresIn *int   `json:"expires_in,omitempty"`
}

// AuthTokenCode is a single-use code exchangeable for an access token.
type AuthTokenCode struct {
	Code      string `json:"code"`
	Type      string `json:"type"`
	Access    string `json:"access,omitempty"`
	ExpiresIn *int   `json:"expires_in,omitempty"`
}

type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type JWT struct {
	JWTToken string          `json:"jwt_token"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}
