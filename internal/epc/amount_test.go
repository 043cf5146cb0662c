package epc_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/girohub/epc-qr/internal/epc"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		reason string
	}{
		{name: "cents", input: "12.50", want: "12.50"},
		{name: "whole euros", input: "7", want: "7.00"},
		{name: "single decimal", input: "0.5", want: "0.50"},
		{name: "minimum", input: "0.01", want: "0.01"},
		{name: "maximum", input: "999999999.99", want: "999999999.99"},
		{name: "negative", input: "-1.00", reason: epc.AmountReasonNegative},
		{name: "zero", input: "0.00", reason: epc.AmountReasonZero},
		{name: "sub-cent", input: "1.005", reason: epc.AmountReasonPrecision},
		{name: "overflow", input: "1000000000.00", reason: epc.AmountReasonOverflow},
		{name: "garbage", input: "12,50", reason: epc.AmountReasonFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := epc.ParseAmount(tt.input)
			if tt.reason != "" {
				var amountErr *epc.InvalidAmountError
				require.ErrorAs(t, err, &amountErr)
				assert.Equal(t, tt.reason, amountErr.Reason)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestAmountFromDecimal(t *testing.T) {
	a, err := epc.AmountFromDecimal(decimal.New(1250, -2))
	require.NoError(t, err)
	assert.Equal(t, int64(12), a.Euro())
	assert.Equal(t, int64(50), a.Cent())
	assert.True(t, a.Decimal().Equal(decimal.New(1250, -2)))
}

func TestNewAmount(t *testing.T) {
	a, err := epc.NewAmount(3, 5)
	require.NoError(t, err)
	assert.Equal(t, "3.05", a.String())

	_, err = epc.NewAmount(0, 0)
	var amountErr *epc.InvalidAmountError
	require.ErrorAs(t, err, &amountErr)
	assert.Equal(t, epc.AmountReasonZero, amountErr.Reason)

	_, err = epc.NewAmount(1, 100)
	require.ErrorAs(t, err, &amountErr)
	assert.Equal(t, epc.AmountReasonOverflow, amountErr.Reason)
}
