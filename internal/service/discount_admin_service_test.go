package service

import (
	"errors"
	"testing"
	"time"

	"github.com/lumapos/internal/constants"
	"github.com/lumapos/internal/models"
)

func TestValidateDiscountRequiresWindow(t *testing.T) {
	now := time.Now()
	later := now.Add(time.Hour)
	discount := &models.Discount{
		Name:  "window check",
		Type:  constants.DiscountTypeFixed,
		Value: moneyFromInt(50),
	}

	if err := validateDiscount(discount); !errors.Is(err, ErrDiscountWindowInvalid) {
		t.Fatalf("missing window want ErrDiscountWindowInvalid got %v", err)
	}

	discount.ValidFrom = &later
	discount.ValidTo = &now
	if err := validateDiscount(discount); !errors.Is(err, ErrDiscountWindowInvalid) {
		t.Fatalf("reversed window want ErrDiscountWindowInvalid got %v", err)
	}

	discount.ValidFrom = &now
	discount.ValidTo = &later
	if err := validateDiscount(discount); err != nil {
		t.Fatalf("valid window rejected: %v", err)
	}
}

func TestValidateDiscountTypeRules(t *testing.T) {
	now := time.Now()
	later := now.Add(time.Hour)

	percentage := &models.Discount{
		Name:      "too deep",
		Type:      constants.DiscountTypePercentage,
		Value:     moneyFromInt(150),
		ValidFrom: &now,
		ValidTo:   &later,
	}
	if err := validateDiscount(percentage); !errors.Is(err, ErrDiscountValueInvalid) {
		t.Fatalf("percentage over 100 want ErrDiscountValueInvalid got %v", err)
	}

	gift := &models.Discount{
		Name:      "gift without gifts",
		Type:      constants.DiscountTypeFreeGift,
		ValidFrom: &now,
		ValidTo:   &later,
	}
	if err := validateDiscount(gift); !errors.Is(err, ErrFreeGiftProductsEmpty) {
		t.Fatalf("free gift without products want ErrFreeGiftProductsEmpty got %v", err)
	}

	unknown := &models.Discount{
		Name:      "mystery",
		Type:      "mystery",
		Value:     moneyFromInt(10),
		ValidFrom: &now,
		ValidTo:   &later,
	}
	if err := validateDiscount(unknown); !errors.Is(err, ErrDiscountTypeInvalid) {
		t.Fatalf("unknown type want ErrDiscountTypeInvalid got %v", err)
	}
}
