package budgea

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewUserAlert_Defaults(t *testing.T) {
	a := NewUserAlert("balance", "amount")

	assert.True(t, a.Enabled)
	assert.True(t, a.BalanceMax.Equal(decimal.NewFromInt(10000)))
	assert.True(t, a.BalanceMin1.Equal(decimal.NewFromInt(500)))
	assert.True(t, a.BalanceMin2.IsZero())
	assert.True(t, a.ExpenseMax.Equal(decimal.NewFromInt(500)))
	if assert.NotNil(t, a.IncomeMax) {
		assert.True(t, a.IncomeMax.Equal(decimal.NewFromInt(500)))
	}
	assert.True(t, a.ResumeEnabled)
	assert.NoError(t, a.Validate())
}

func TestUserAlert_Validate(t *testing.T) {
	tests := []struct {
		name  string
		alert UserAlert
	}{
		{"no type", UserAlert{ValueType: "amount"}},
		{"no value type", UserAlert{Type: "balance"}},
		{"negative frequency", UserAlert{Type: "balance", ValueType: "amount", ResumeFrequency: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.alert.Validate(), ErrInvalidAlert))
		})
	}
}

func TestUserAlert_ParamsBindToCreate(t *testing.T) {
	a := NewUserAlert("expense", "percent")
	r, err := opCreateAlert.bind(bind(a.Params(), "id_user", Me, "type", a.Type, "value_type", a.ValueType))
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "expense", r.form.Get("type"))
	assert.Equal(t, "10000", r.form.Get("balance_max"))
	assert.Equal(t, "true", r.form.Get("enabled"))
	assert.Equal(t, "500", r.form.Get("income_max"))
	assert.Equal(t, "true", r.form.Get("resume_enabled"))

	a.IncomeMax = nil
	r, err = opCreateAlert.bind(bind(a.Params(), "id_user", Me, "type", a.Type, "value_type", a.ValueType))
	if assert.NoError(t, err) {
		assert.False(t, r.form.Has("income_max"))
	}
}
