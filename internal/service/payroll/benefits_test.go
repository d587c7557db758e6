package payroll

import (
	"testing"
	"time"

	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/benefit"
	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	d, _ := time.Parse(time.DateOnly, s)
	return d
}

func TestBenefitsResolver_Resolve(t *testing.T) {
	resolver := NewBenefitsResolver()
	from := date("2025-01-01")

	items := []benefit.Item{
		{Name: "transport", Category: benefit.CategoryBenefit, Amount: dec(300), EffectiveFrom: from},
		{Name: "bonus", Category: benefit.CategoryBenefit, IsPercentage: true, Percentage: dec(10), EffectiveFrom: from},
		{Name: "loan", Category: benefit.CategoryDeduction, Amount: dec(150), EffectiveFrom: from},
	}

	benefits, deductions := resolver.Resolve(items, dec(5000), date("2025-06-30"))

	// 300 fixed + 10% of 5000
	assert.True(t, dec(800).Equal(benefits), "benefits = %s, want 800", benefits)
	assert.True(t, dec(150).Equal(deductions), "deductions = %s, want 150", deductions)
}

func TestBenefitsResolver_Resolve_ExpiredItemSkipped(t *testing.T) {
	resolver := NewBenefitsResolver()
	to := date("2025-03-31")

	items := []benefit.Item{
		{Name: "project allowance", Category: benefit.CategoryBenefit, Amount: dec(500),
			EffectiveFrom: date("2025-01-01"), EffectiveTo: &to},
	}

	benefits, _ := resolver.Resolve(items, dec(5000), date("2025-06-30"))
	assert.True(t, benefits.IsZero(), "expired item must not contribute, got %s", benefits)

	benefits, _ = resolver.Resolve(items, dec(5000), date("2025-02-15"))
	assert.True(t, dec(500).Equal(benefits))
}

func TestBenefitsResolver_Resolve_NotYetEffective(t *testing.T) {
	resolver := NewBenefitsResolver()

	items := []benefit.Item{
		{Name: "meal", Category: benefit.CategoryBenefit, Amount: dec(200), EffectiveFrom: date("2025-07-01")},
	}

	benefits, _ := resolver.Resolve(items, dec(5000), date("2025-06-30"))
	assert.True(t, benefits.IsZero())
}
