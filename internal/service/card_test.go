package service

import (
	"errors"
	"testing"

	"github.com/lumapos/internal/constants"
)

func TestDetectCardType(t *testing.T) {
	cases := []struct {
		number string
		want   string
	}{
		{"4111111111111111", constants.CardTypeVisa},
		{"5500005555555559", constants.CardTypeMastercard},
		{"2221000000000009", constants.CardTypeMastercard},
		{"2720990000000007", constants.CardTypeMastercard},
		{"340000000000009", constants.CardTypeAmex},
		{"370000000000002", constants.CardTypeAmex},
		{"6011000000000004", constants.CardTypeDiscover},
		{"9999000000000001", constants.CardTypeUnknown},
	}
	for _, tc := range cases {
		got := DetectCardType(tc.number)
		if got != tc.want {
			t.Fatalf("card %s type want %s got %s", tc.number, tc.want, got)
		}
	}
}

func TestResolveCardInfoLengthRules(t *testing.T) {
	info, err := ResolveCardInfo("4111 1111 1111 1111", "Commercial Bank", "N PERERA")
	if err != nil {
		t.Fatalf("resolve visa failed: %v", err)
	}
	if info.CardType != constants.CardTypeVisa || info.LastFour != "1111" {
		t.Fatalf("unexpected visa info: %+v", info)
	}

	// 运通 15 位
	if _, err := ResolveCardInfo("340000000000009", "", ""); err != nil {
		t.Fatalf("resolve amex failed: %v", err)
	}
	if _, err := ResolveCardInfo("3400000000000091", "", ""); !errors.Is(err, ErrCardNumberInvalid) {
		t.Fatalf("16 digit amex should be invalid, got %v", err)
	}
	if _, err := ResolveCardInfo("41111111", "", ""); !errors.Is(err, ErrCardNumberInvalid) {
		t.Fatalf("short visa should be invalid, got %v", err)
	}
	if _, err := ResolveCardInfo("4111-abcd-1111-1111", "", ""); !errors.Is(err, ErrCardNumberInvalid) {
		t.Fatalf("non numeric card should be invalid, got %v", err)
	}
}
