package kernel

import (
	"strings"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseOrderID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "simple", raw: "ORD-001", want: "ORD-001"},
		{name: "alphanumeric suffix", raw: "ORD-2024ABC", want: "ORD-2024ABC"},
		{name: "surrounding whitespace is trimmed", raw: "  ORD-001  ", want: "ORD-001"},
		{name: "max length", raw: "ORD-" + strings.Repeat("A", 45), want: "ORD-" + strings.Repeat("A", 45)},
		{name: "empty", raw: "", wantErr: true},
		{name: "whitespace only", raw: "   ", wantErr: true},
		{name: "missing prefix", raw: "001", wantErr: true},
		{name: "wrong prefix", raw: "INV-001", wantErr: true},
		{name: "lowercase prefix", raw: "ord-001", wantErr: true},
		{name: "prefix without suffix", raw: "ORD-", wantErr: true},
		{name: "illegal character", raw: "ORD-00 1", wantErr: true},
		{name: "too long", raw: "ORD-" + strings.Repeat("A", 46), wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			id, err := ParseOrderID(test.raw)

			if test.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, id.Validate())
			assert.Equal(t, test.want, id.String())
		})
	}
}

func Test_OrderID_RoundTrip(t *testing.T) {
	original, err := ParseOrderID("ORD-2024ABC")
	require.NoError(t, err)

	reparsed, err := ParseOrderID(original.String())
	require.NoError(t, err)

	assert.True(t, original.IsEqual(reparsed))
	assert.Equal(t, original.String(), reparsed.String())
}

func Test_OrderID_Validate_ZeroValue(t *testing.T) {
	var id OrderID
	assert.ErrorIs(t, id.Validate(), ErrOrderIDIsNotConstructed)
}

func Test_ParseCustomerID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "simple", raw: "CUST-001", want: "CUST-001"},
		{name: "trimmed", raw: " CUST-42 ", want: "CUST-42"},
		{name: "empty", raw: "", wantErr: true},
		{name: "wrong prefix", raw: "ORD-001", wantErr: true},
		{name: "prefix without suffix", raw: "CUST-", wantErr: true},
		{name: "illegal character", raw: "CUST-0_1", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			id, err := ParseCustomerID(test.raw)

			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, id.String())
		})
	}
}

func Test_ParseInvoiceID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "simple", raw: "INV-001", want: "INV-001"},
		{name: "trimmed", raw: "\tINV-9\n", want: "INV-9"},
		{name: "empty", raw: "", wantErr: true},
		{name: "wrong prefix", raw: "ORD-001", wantErr: true},
		{name: "too long", raw: "INV-" + strings.Repeat("9", 46), wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			id, err := ParseInvoiceID(test.raw)

			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, id.String())
		})
	}
}

func Test_ParseProductID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "simple", raw: "PROD-1", want: "PROD-1"},
		{name: "underscore and dash", raw: "sku_ab-12", want: "sku_ab-12"},
		{name: "max length", raw: strings.Repeat("x", 50), want: strings.Repeat("x", 50)},
		{name: "empty", raw: "", wantErr: true},
		{name: "question marks", raw: "??", wantErr: true},
		{name: "embedded space", raw: "PROD 1", wantErr: true},
		{name: "too long", raw: strings.Repeat("x", 51), wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			id, err := ParseProductID(test.raw)

			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, id.String())
		})
	}
}
