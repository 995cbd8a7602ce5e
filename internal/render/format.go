package render

import (
	"strconv"
	"strings"
	"unicode"
)

// FormatPriceBand maps backend price bands to display text. "upper_mid" is
// the one multi-word band; everything else just gets its first letter
// capitalized.
func FormatPriceBand(band string) string {
	if band == "" {
		return ""
	}
	if band == "upper_mid" {
		return "Upper Mid"
	}

	runes := []rune(band)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// FormatINR renders an amount as Indian-style grouped rupees with no
// fractional digits: the last three digits form one group, every group
// before it has two.
func FormatINR(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + "₹" + groupIndian(strconv.Itoa(amount))
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	groups = append(groups, tail)

	return strings.Join(groups, ",")
}
