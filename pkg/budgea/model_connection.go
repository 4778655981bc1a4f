package budgea

import "encoding/json"

// Connection links a user to a bank with a set of credentials.
type Connection struct {
	ID           int64     `json:"id"`
	IDUser       int64     `json:"id_user"`
	IDBank       int64     `json:"id_bank"`
	IDConnector  int64     `json:"id_connector,omitempty"`
	State        *string   `json:"state,omitempty"`
	Error        *string   `json:"error,omitempty"`
	ErrorMessage *string   `json:"error_message,omitempty"`
	Active       bool      `json:"active"`
	Created      DateTime  `json:"created"`
	LastUpdate   DateTime  `json:"last_update"`
	NextTry      DateTime  `json:"next_try"`
	Expire       DateTime  `json:"expire"`
	Bank         *Bank     `json:"bank,omitempty"`
	Accounts     []Account `json:"accounts,omitempty"`
	Fields       []Field   `json:"fields,omitempty"`
}

// NeedsUserAction reports whether the connection is blocked on the user
// (new credentials, an OTP, a validation on the bank website).
func (c *Connection) NeedsUserAction() bool {
	state := c.State
	if state == nil {
		state = c.Error
	}
	if state == nil {
		return false
	}
	switch *state {
	case "wrongpass", "additionalInformationNeeded", "actionNeeded", "passwordExpired", "SCARequired", "webauthRequired", "decoupled":
		return true
	}
	return false
}

type Connections struct {
	Connections []Connection `json:"connections"`
	Total       int          `json:"total,omitempty"`
}

type ConnectionLog struct {
	ID           int64           `json:"id"`
	IDUser       int64           `json:"id_user"`
	IDConnection int64           `json:"id_connection"`
	IDBank       int64           `json:"id_bank,omitempty"`
	Timestamp    DateTime        `json:"timestamp"`
	State        *string         `json:"state,omitempty"`
	Error        *string         `json:"error,omitempty"`
	ErrorMessage *string         `json:"error_message,omitempty"`
	NbAccounts   *int            `json:"nb_accounts,omitempty"`
	Fields       json.RawMessage `json:"fields,omitempty"`
}

type ConnectionLogs struct {
	Logs  []ConnectionLog `json:"connectionlogs"`
	Total int             `json:"total,omitempty"`
}
