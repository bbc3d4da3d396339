package catalog

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// priceTokenRegex matches "$1300", "$1,300" and "$99.50". Grouped digits are
// preferred so "$1,300" is not read as "$1".
var priceTokenRegex = regexp.MustCompile(`\$(\d{1,3}(?:,\d{3})+|\d+)(\.\d+)?`)

// FormatPrice renders a price as "$<integer>".
func FormatPrice(price decimal.Decimal) string {
	return "$" + price.StringFixed(0)
}

// ParsePriceToken extracts the first "$<digits>" token from an option label.
// Thousands separators are accepted. Labels without a token, such as the
// placeholder, report false, and so do malformed amounts like "$1,30".
func ParsePriceToken(label string) (decimal.Decimal, bool) {
	loc := priceTokenRegex.FindStringSubmatchIndex(label)
	if loc == nil || truncatedGroup(label[loc[1]:]) {
		return decimal.Zero, false
	}

	digits := strings.ReplaceAll(label[loc[2]:loc[3]], ",", "")
	if loc[4] >= 0 {
		digits += label[loc[4]:loc[5]]
	}
	d, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// truncatedGroup reports whether the text after a price token continues the
// number, as in "$1,30" or "$1,2345".
func truncatedGroup(rest string) bool {
	if rest == "" {
		return false
	}
	if isDigit(rest[0]) {
		return true
	}
	return len(rest) > 1 && rest[0] == ',' && isDigit(rest[1])
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
