package kernel

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseMoney(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "two decimals", raw: "123.45 USD", want: "123.45 USD"},
		{name: "integer amount is canonicalised", raw: "10 EUR", want: "10.00 EUR"},
		{name: "one decimal is canonicalised", raw: "10.5 USD", want: "10.50 USD"},
		{name: "zero amount", raw: "0 RON", want: "0.00 RON"},
		{name: "lowercase currency is upper-cased", raw: "5.00 usd", want: "5.00 USD"},
		{name: "extra whitespace", raw: "  7.25   USD  ", want: "7.25 USD"},
		{name: "empty", raw: "", wantErr: true},
		{name: "missing currency", raw: "123.45", wantErr: true},
		{name: "missing amount", raw: "USD", wantErr: true},
		{name: "negative amount", raw: "-1.00 USD", wantErr: true},
		{name: "non-numeric amount", raw: "abc USD", wantErr: true},
		{name: "two-letter currency", raw: "1.00 US", wantErr: true},
		{name: "four-letter currency", raw: "1.00 USDX", wantErr: true},
		{name: "too many fields", raw: "1.00 USD extra", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			money, err := ParseMoney(test.raw)

			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, money.Validate())
			assert.Equal(t, test.want, money.String())
		})
	}
}

func Test_Money_RoundTrip(t *testing.T) {
	original, err := ParseMoney("123.45 USD")
	require.NoError(t, err)

	reparsed, err := ParseMoney(original.String())
	require.NoError(t, err)

	assert.True(t, original.IsEqual(reparsed))
}

func Test_Money_IsEqual(t *testing.T) {
	a, err := ParseMoney("10.5 USD")
	require.NoError(t, err)
	b, err := ParseMoney("10.50 USD")
	require.NoError(t, err)
	c, err := ParseMoney("10.51 USD")
	require.NoError(t, err)
	d, err := ParseMoney("10.50 EUR")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b), "equality is on the numeric value, not the text")
	assert.False(t, a.IsEqual(c))
	assert.False(t, b.IsEqual(d), "same amount, different currency")
}

func Test_Money_Times(t *testing.T) {
	unitPrice, err := ParseMoney("10.00 USD")
	require.NoError(t, err)

	total := unitPrice.Times(3)

	assert.Equal(t, "30.00 USD", total.String())
	assert.NoError(t, total.Validate())
}

func Test_Money_Add(t *testing.T) {
	t.Run("same currency", func(t *testing.T) {
		a, err := ParseMoney("10.25 USD")
		require.NoError(t, err)
		b, err := ParseMoney("5.75 USD")
		require.NoError(t, err)

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, "16.00 USD", sum.String())
	})

	t.Run("currency mismatch", func(t *testing.T) {
		a, err := ParseMoney("10.00 USD")
		require.NoError(t, err)
		b, err := ParseMoney("5.00 EUR")
		require.NoError(t, err)

		_, err = a.Add(b)

		assert.Error(t, err)
	})

	t.Run("zero-value operand", func(t *testing.T) {
		a, err := ParseMoney("10.00 USD")
		require.NoError(t, err)

		_, err = a.Add(Money{})

		assert.ErrorIs(t, err, ErrMoneyIsNotConstructed)
	})
}

func Test_NewMoney(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		money, err := NewMoney(decimal.RequireFromString("99.99"), " usd ")

		require.NoError(t, err)
		assert.Equal(t, "99.99 USD", money.String())
		assert.Equal(t, "USD", money.Currency())
		assert.True(t, money.Amount().Equal(decimal.RequireFromString("99.99")))
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(-1), "USD")

		assert.Error(t, err)
	})
}

func Test_Money_Validate_ZeroValue(t *testing.T) {
	var money Money
	assert.ErrorIs(t, money.Validate(), ErrMoneyIsNotConstructed)
}
