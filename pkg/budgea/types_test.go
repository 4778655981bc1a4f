package budgea

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	var v struct {
		D Date `json:"d"`
		E Date `json:"e"`
		F Date `json:"f"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"d":"2024-02-29","e":null,"f":"2024-02-29 10:11:12"}`), &v))

	assert.Equal(t, "2024-02-29", v.D.String())
	assert.True(t, v.E.IsZero())
	assert.Equal(t, 10, v.F.Hour())

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2024-02-29","e":null,"f":"2024-02-29"}`, string(out))
}

func TestDateTime_JSON(t *testing.T) {
	var dt DateTime
	require.NoError(t, json.Unmarshal([]byte(`"2021-06-01 08:30:00"`), &dt))
	assert.Equal(t, time.Date(2021, 6, 1, 8, 30, 0, 0, time.UTC), dt.Time)

	out, err := json.Marshal(dt)
	require.NoError(t, err)
	assert.Equal(t, `"2021-06-01 08:30:00"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &dt))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2020-12-31")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2020, time.December, 31), d)

	_, err = ParseDate("31/12/2020")
	assert.Error(t, err)
}
