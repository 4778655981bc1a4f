package budgea

import "encoding/json"

// Client is an OAuth client (or a merchant) declared on the domain.
type Client struct {
	ID                   int64           `json:"id"`
	Name                 string          `json:"name"`
	RedirectURIs         []string        `json:"redirect_uris,omitempty"`
	Secret               string          `json:"secret,omitempty"`
	Config               json.RawMessage `json:"config,omitempty"`
	Pro                  bool            `json:"pro"`
	Description          *string         `json:"description,omitempty"`
	DescriptionBanks     *string         `json:"description_banks,omitempty"`
	DescriptionProviders *string         `json:"description_providers,omitempty"`
	PrimaryColor         *string         `json:"primary_color,omitempty"`
	SecondaryColor       *string         `json:"secondary_color,omitempty"`
	IDLogo               *int64          `json:"id_logo,omitempty"`
	IBAN                 *string         `json:"iban,omitempty"`
	PublicKey            *string         `json:"public_key,omitempty"`
}

type Clients struct {
	Clients []Client `json:"clients"`
	Total   int      `json:"total,omitempty"`
}

type Merchants struct {
	Merchants []Client `json:"merchants"`
	Total     int      `json:"total,omitempty"`
}

// ConfigLog records a change of a domain configuration key.
type ConfigLog struct {
	ID            int64    `json:"id"`
	IDUser        *int64   `json:"id_user,omitempty"`
	Key           string   `json:"key"`
	Value         *string  `json:"value,omitempty"`
	PreviousValue *string  `json:"previous_value,omitempty"`
	Type          string   `json:"type,omitempty"`
	Timestamp     DateTime `json:"timestamp"`
}

type ConfigLogs struct {
	ConfigLogs []ConfigLog `json:"configlogs"`
	Total      int         `json:"total,omitempty"`
}

// AuthProvider is the authentication method used when posting webhooks.
type AuthProvider struct {
	ID     int64           `json:"id"`
	Name   string          `json:"name"`
	Type   int             `json:"type"`
	Config json.RawMessage `json:"config,omitempty"`
}

type WebhooksAuth struct {
	WebhooksAuth []AuthProvider `json:"webhooks_auth"`
}

type Webhook struct {
	ID        int64    `json:"id"`
	IDAuth    *int64   `json:"id_auth,omitempty"`
	IDService *int64   `json:"id_service,omitempty"`
	IDUser    *int64   `json:"id_user,omitempty"`
	Event     string   `json:"event,omitempty"`
	URL       string   `json:"url"`
	Created   DateTime `json:"created"`
	Updated   DateTime `json:"updated"`
	Deleted   DateTime `json:"deleted"`
}

type Webhooks struct {
	Webhooks []Webhook `json:"webhooks"`
}

// WebhookData is a key/value pair appended to every payload of a webhook.
type WebhookData struct {
	ID        int64  `json:"id,omitempty"`
	IDWebhook int64  `json:"id_webhook"`
	Key       string `json:"key"`
	Value     string `json:"value"`
}

type WebHookAddToData struct {
	Data []WebhookData `json:"data"`
}

type WebHookLog struct {
	ID        int64    `json:"id"`
	IDWebhook int64    `json:"id_webhook"`
	IDUser    *int64   `json:"id_user,omitempty"`
	Timestamp DateTime `json:"timestamp"`
	Status    *int     `json:"status,omitempty"`
	Response  *string  `json:"response,omitempty"`
	Retry     int      `json:"retry,omitempty"`
}

type WebHookLogs struct {
	Logs  []WebHookLog `json:"webhooklogs"`
	Total int          `json:"total,omitempty"`
}
