package service

import (
	"strings"

	"github.com/lumapos/internal/constants"
)

// CardInfo 刷卡支付信息
type CardInfo struct {
	CardType   string `json:"card_type"`
	LastFour   string `json:"last_four"`
	BankName   string `json:"bank_name"`
	HolderName string `json:"holder_name"`
}

// normalizeCardNumber 去除卡号中的空格与连字符
func normalizeCardNumber(number string) string {
	replacer := strings.NewReplacer(" ", "", "-", "")
	return replacer.Replace(number)
}

// DetectCardType 根据卡号前缀识别卡组织
func DetectCardType(number string) string {
	digits := normalizeCardNumber(number)
	switch {
	case strings.HasPrefix(digits, "4"):
		return constants.CardTypeVisa
	case hasAnyPrefix(digits, "51", "52", "53", "54", "55",
		"22", "23", "24", "25", "26", "27"):
		return constants.CardTypeMastercard
	case hasAnyPrefix(digits, "34", "37"):
		return constants.CardTypeAmex
	case strings.HasPrefix(digits, "6"):
		return constants.CardTypeDiscover
	default:
		return constants.CardTypeUnknown
	}
}

// ResolveCardInfo 校验卡号并提取卡组织与末四位。
// 运通卡号 15 位，其余卡组织 16 位。
func ResolveCardInfo(number, bankName, holderName string) (CardInfo, error) {
	digits := normalizeCardNumber(number)
	if digits == "" || !isAllDigits(digits) {
		return CardInfo{}, ErrCardNumberInvalid
	}

	cardType := DetectCardType(digits)
	expectedLen := 16
	if cardType == constants.CardTypeAmex {
		expectedLen = 15
	}
	if len(digits) != expectedLen {
		return CardInfo{}, ErrCardNumberInvalid
	}

	return CardInfo{
		CardType:   cardType,
		LastFour:   digits[len(digits)-4:],
		BankName:   strings.TrimSpace(bankName),
		HolderName: strings.TrimSpace(holderName),
	}, nil
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func isAllDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
