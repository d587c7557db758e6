package payroll

import (
	"testing"

	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/tax"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func decPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

// A four-bracket progressive table: the first slice is tax free, the last is
// unbounded.
func testBrackets() []tax.Bracket {
	return []tax.Bracket{
		{Min: dec(0), Max: decPtr(1000), Rate: dec(0)},
		{Min: dec(1000), Max: decPtr(5000), Rate: dec(0.10)},
		{Min: dec(5000), Max: decPtr(10000), Rate: dec(0.30)},
		{Min: dec(10000), Max: nil, Rate: dec(0.50)},
	}
}

func TestTaxCalculator_Calculate(t *testing.T) {
	calc := NewTaxCalculator()
	brackets := testBrackets()

	cases := []struct {
		name   string
		amount decimal.Decimal
		want   decimal.Decimal
	}{
		{"below first threshold", dec(900), dec(0)},
		{"exactly at threshold", dec(1000), dec(0)},
		{"inside second bracket", dec(3000), dec(200)},
		{"spans all brackets", dec(12000), dec(2900)},
		{"zero income", dec(0), dec(0)},
		{"negative income", dec(-100), dec(0)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := calc.Calculate(c.amount, brackets)
			assert.True(t, c.want.Equal(got), "tax(%s) = %s, want %s", c.amount, got, c.want)
		})
	}
}

func TestTaxCalculator_Calculate_BracketBoundary(t *testing.T) {
	calc := NewTaxCalculator()
	brackets := testBrackets()

	// Max is exclusive: an amount exactly on a boundary is taxed entirely by
	// the brackets below it.
	atBoundary := calc.Calculate(dec(5000), brackets)
	assert.True(t, dec(400).Equal(atBoundary), "tax(5000) = %s, want 400", atBoundary)

	justAbove := calc.Calculate(dec(5001), brackets)
	assert.True(t, dec(400.30).Equal(justAbove), "tax(5001) = %s, want 400.30", justAbove)
}

func TestTaxCalculator_Calculate_EmptyBrackets(t *testing.T) {
	calc := NewTaxCalculator()
	got := calc.Calculate(dec(5000), nil)
	assert.True(t, got.IsZero())
}

func TestValidateBrackets(t *testing.T) {
	require.NoError(t, ValidateBrackets(testBrackets()))
}

func TestValidateBrackets_Empty(t *testing.T) {
	assert.ErrorIs(t, ValidateBrackets(nil), tax.ErrBracketsNotFound)
}

func TestValidateBrackets_BoundedLast(t *testing.T) {
	brackets := []tax.Bracket{
		{Min: dec(0), Max: decPtr(1000), Rate: dec(0)},
		{Min: dec(1000), Max: decPtr(5000), Rate: dec(0.10)},
	}
	assert.ErrorIs(t, ValidateBrackets(brackets), tax.ErrInvalidBracketSet)
}

func TestValidateBrackets_Gap(t *testing.T) {
	brackets := []tax.Bracket{
		{Min: dec(0), Max: decPtr(1000), Rate: dec(0)},
		{Min: dec(2000), Max: nil, Rate: dec(0.10)},
	}
	assert.ErrorIs(t, ValidateBrackets(brackets), tax.ErrInvalidBracketSet)
}

func TestValidateBrackets_Overlap(t *testing.T) {
	brackets := []tax.Bracket{
		{Min: dec(0), Max: decPtr(1500), Rate: dec(0)},
		{Min: dec(1000), Max: nil, Rate: dec(0.10)},
	}
	assert.ErrorIs(t, ValidateBrackets(brackets), tax.ErrInvalidBracketSet)
}

func TestValidateBrackets_RateOutOfRange(t *testing.T) {
	aboveOne := []tax.Bracket{
		{Min: dec(0), Max: decPtr(1000), Rate: dec(0)},
		{Min: dec(1000), Max: nil, Rate: dec(1.5)},
	}
	assert.ErrorIs(t, ValidateBrackets(aboveOne), tax.ErrInvalidBracketSet)

	negative := []tax.Bracket{
		{Min: dec(0), Max: decPtr(1000), Rate: dec(-0.10)},
		{Min: dec(1000), Max: nil, Rate: dec(0.10)},
	}
	assert.ErrorIs(t, ValidateBrackets(negative), tax.ErrInvalidBracketSet)
}

func TestValidateBrackets_NegativeMin(t *testing.T) {
	brackets := []tax.Bracket{
		{Min: dec(-500), Max: decPtr(1000), Rate: dec(0)},
		{Min: dec(1000), Max: nil, Rate: dec(0.10)},
	}
	assert.ErrorIs(t, ValidateBrackets(brackets), tax.ErrInvalidBracketSet)
}
