package budgea

import (
	"context"
	"net/http"
)

// AlertsAPI manages the balance and expense alerts of a user.
type AlertsAPI service

var (
	opListAlerts = register(&Operation{
		Name:         "users_id_user_alerts_get",
		Method:       http.MethodGet,
		Path:         "/users/{id_user}/alerts",
		PathParams:   []string{"id_user"},
		QueryParams:  []string{"limit", "offset", "expand"},
		Required:     []string{"id_user"},
		ResponseType: "UserAlerts",
		Auth:         []string{authScheme},
	})
	opCreateAlert = register(&Operation{
		Name:         "users_id_user_alerts_post",
		Method:       http.MethodPost,
		Path:         "/users/{id_user}/alerts",
		PathParams:   []string{"id_user"},
		QueryParams:  []string{"expand"},
		FormParams:   []string{"type", "value_type", "apply", "balance_max", "balance_min1", "balance_min2", "date_range", "enabled", "expense_max", "income_max", "resume_enabled", "resume_frequency", "transaction_types"},
		Required:     []string{"id_user", "type", "value_type"},
		ContentType:  contentTypeForm,
		ResponseType: "UserAlert",
		Auth:         []string{authScheme},
	})
	opUpdateAlert = register(&Operation{
		Name:         "users_id_user_alerts_id_alert_put",
		Method:       http.MethodPut,
		Path:         "/users/{id_user}/alerts/{id_alert}",
		PathParams:   []string{"id_user", "id_alert"},
		QueryParams:  []string{"expand"},
		FormParams:   []string{"type", "value_type", "apply", "balance_max", "balance_min1", "balance_min2", "date_range", "enabled", "expense_max", "income_max", "resume_enabled", "resume_frequency", "transaction_types"},
		Required:     []string{"id_user", "id_alert"},
		ContentType:  contentTypeForm,
		ResponseType: "UserAlert",
		Auth:         []string{authScheme},
	})
	opDeleteAlert = register(&Operation{
		Name:         "users_id_user_alerts_id_alert_delete",
		Method:       http.MethodDelete,
		Path:         "/users/{id_user}/alerts/{id_alert}",
		PathParams:   []string{"id_user", "id_alert"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_user", "id_alert"},
		ResponseType: "UserAlert",
		Auth:         []string{authScheme},
	})
)

// ListAlerts returns the alerts configured for a user.
func (a *AlertsAPI) ListAlerts(ctx context.Context, idUser string, opts Params) (*UserAlerts, error) {
	out, _, err := a.ListAlertsWithHTTPInfo(ctx, idUser, opts)
	return out, err
}

// ListAlertsWithHTTPInfo is ListAlerts and also returns the HTTP response.
func (a *AlertsAPI) ListAlertsWithHTTPInfo(ctx context.Context, idUser string, opts Params) (*UserAlerts, *http.Response, error) {
	return invoke[*UserAlerts](ctx, a.client, opListAlerts, bind(opts, "id_user", idUser))
}

// CreateAlert adds an alert. UserAlert.Params gives the options of a prepared
// alert.
func (a *AlertsAPI) CreateAlert(ctx context.Context, idUser, alertType, valueType string, opts Params) (*UserAlert, error) {
	out, _, err := a.CreateAlertWithHTTPInfo(ctx, idUser, alertType, valueType, opts)
	return out, err
}

// CreateAlertWithHTTPInfo is CreateAlert and also returns the HTTP response.
func (a *AlertsAPI) CreateAlertWithHTTPInfo(ctx context.Context, idUser, alertType, valueType string, opts Params) (*UserAlert, *http.Response, error) {
	return invoke[*UserAlert](ctx, a.client, opCreateAlert, bind(opts, "id_user", idUser, "type", alertType, "value_type", valueType))
}

// UpdateAlert changes an alert.
func (a *AlertsAPI) UpdateAlert(ctx context.Context, idUser string, idAlert int64, opts Params) (*UserAlert, error) {
	out, _, err := a.UpdateAlertWithHTTPInfo(ctx, idUser, idAlert, opts)
	return out, err
}

// UpdateAlertWithHTTPInfo is UpdateAlert and also returns the HTTP response.
func (a *AlertsAPI) UpdateAlertWithHTTPInfo(ctx context.Context, idUser string, idAlert int64, opts Params) (*UserAlert, *http.Response, error) {
	return invoke[*UserAlert](ctx, a.client, opUpdateAlert, bind(opts, "id_user", idUser, "id_alert", idAlert))
}

// DeleteAlert removes an alert.
func (a *AlertsAPI) DeleteAlert(ctx context.Context, idUser string, idAlert int64, opts Params) (*UserAlert, error) {
	out, _, err := a.DeleteAlertWithHTTPInfo(ctx, idUser, idAlert, opts)
	return out, err
}

// DeleteAlertWithHTTPInfo is DeleteAlert and also returns the HTTP response.
func (a *AlertsAPI) DeleteAlertWithHTTPInfo(ctx context.Context, idUser string, idAlert int64, opts Params) (*UserAlert, *http.Response, error) {
	return invoke[*UserAlert](ctx, a.client, opDeleteAlert, bind(opts, "id_user", idUser, "id_alert", idAlert))
}
