package service

import (
	"testing"

	"github.com/lumapos/internal/models"

	"github.com/shopspring/decimal"
)

func TestCalculateTotalsTaxAfterDiscounts(t *testing.T) {
	totals := CalculateTotals(
		models.NewMoneyFromDecimal(decimal.NewFromInt(1000)),
		models.Money{},
		models.NewMoneyFromDecimal(decimal.NewFromInt(200)),
		decimal.NewFromInt(10),
	)
	if totals.TaxAmount.String() != "80.00" {
		t.Fatalf("tax want 80 got %s", totals.TaxAmount)
	}
	if totals.TotalAmount.String() != "880.00" {
		t.Fatalf("total want 880 got %s", totals.TotalAmount)
	}
	if totals.DiscountAmount.String() != "200.00" {
		t.Fatalf("discount amount want 200 got %s", totals.DiscountAmount)
	}
}

func TestCalculateTotalsDoesNotClampNegative(t *testing.T) {
	totals := CalculateTotals(
		models.NewMoneyFromDecimal(decimal.NewFromInt(100)),
		models.Money{},
		models.NewMoneyFromDecimal(decimal.NewFromInt(150)),
		decimal.NewFromInt(10),
	)
	if !totals.TotalAmount.Decimal.IsNegative() {
		t.Fatalf("overshooting discounts should produce negative total, got %s", totals.TotalAmount)
	}
	if totals.TotalAmount.String() != "-55.00" {
		t.Fatalf("total want -55 got %s", totals.TotalAmount)
	}
}

func TestCalculateTotalsIsIdempotent(t *testing.T) {
	subtotal := models.NewMoneyFromDecimal(decimal.NewFromInt(1234))
	manual := models.NewMoneyFromDecimal(decimal.NewFromInt(34))
	auto := models.NewMoneyFromDecimal(decimal.NewFromInt(100))
	rate := decimal.NewFromFloat(7.5)

	first := CalculateTotals(subtotal, manual, auto, rate)
	second := CalculateTotals(subtotal, manual, auto, rate)
	if first.TotalAmount.String() != second.TotalAmount.String() ||
		first.TaxAmount.String() != second.TaxAmount.String() {
		t.Fatalf("same input produced different totals: %+v vs %+v", first, second)
	}
}

func TestCalculateTotalsZeroRate(t *testing.T) {
	totals := CalculateTotals(
		models.NewMoneyFromDecimal(decimal.NewFromInt(500)),
		models.NewMoneyFromDecimal(decimal.NewFromInt(50)),
		models.Money{},
		decimal.Zero,
	)
	if !totals.TaxAmount.Decimal.IsZero() {
		t.Fatalf("zero rate tax want 0 got %s", totals.TaxAmount)
	}
	if totals.TotalAmount.String() != "450.00" {
		t.Fatalf("total want 450 got %s", totals.TotalAmount)
	}
}
