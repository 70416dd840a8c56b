package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemConfigTypedAccessors(t *testing.T) {
	intCfg := SystemConfig{Key: "payment_expiry_minutes", Value: "90", DataType: ConfigInteger}
	v, err := intCfg.IntValue()
	require.NoError(t, err)
	assert.Equal(t, int64(90), v)

	decCfg := SystemConfig{Key: "min_deposit", Value: "10000.50", DataType: ConfigDecimal}
	d, err := decCfg.DecimalValue()
	require.NoError(t, err)
	assert.True(t, d.Equal(dec("10000.50")))

	boolCfg := SystemConfig{Key: "maintenance_mode", Value: "true", DataType: ConfigBoolean}
	b, err := boolCfg.BoolValue()
	require.NoError(t, err)
	assert.True(t, b)

	jsonCfg := SystemConfig{Key: "banners", Value: `{"homepage":"promo"}`, DataType: ConfigJSON}
	m, err := jsonCfg.JSONValue()
	require.NoError(t, err)
	assert.Equal(t, "promo", m["homepage"])
}

func TestSystemConfigTypeMismatch(t *testing.T) {
	cfg := SystemConfig{Key: "greeting", Value: "hello", DataType: ConfigString}

	_, err := cfg.IntValue()
	assert.Error(t, err)
	_, err = cfg.DecimalValue()
	assert.Error(t, err)
	_, err = cfg.BoolValue()
	assert.Error(t, err)
	_, err = cfg.JSONValue()
	assert.Error(t, err)
}
