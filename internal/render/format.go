package render

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatNumber renders n with thousands separators, e.g. 1,247
func FormatNumber(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// FormatGrowth renders a growth percentage with an explicit sign, e.g. +8.5%
func FormatGrowth(pct float64) string {
	s := strconv.FormatFloat(pct, 'f', -1, 64)
	if pct >= 0 {
		s = "+" + s
	}
	return s + "%"
}

// RegionClass turns a region id into its badge class, e.g. reg2 -> reg-2
func RegionClass(regionID string) string {
	return strings.Replace(regionID, "reg", "reg-", 1)
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
