package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// canonicalCredit matches the backend's balance convention: an integer part
// followed by exactly one fractional digit ("0.0", "-12.5").
var canonicalCredit = regexp.MustCompile(`^-?\d+\.\d$`)

// leadingDecimal extracts the longest numeric prefix of a string, mirroring
// how the legacy client parsed balances (parseFloat semantics). Malformed
// rows such as "12.5.0" therefore degrade to their prefix instead of to zero,
// and a bare fraction like ".5" parses as 0.5.
var leadingDecimal = regexp.MustCompile(`^-?(\d+(\.\d+)?|\.\d+)`)

// ParseAmount parses a credit string from the backend. Surrounding quotes and
// whitespace are stripped; anything without a numeric prefix parses as 0.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
	prefix := leadingDecimal.FindString(s)
	if prefix == "" {
		return 0
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatBalance renders a balance for writing back to the backend. The legacy
// rule appends a literal ".0" to the shortest decimal rendering of the value,
// so integral balances come out as "15.0". Kept byte-for-byte for
// compatibility with existing rows and the desktop client.
func FormatBalance(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + ".0"
}

// NormalizeCredit coerces a backend credit string into the canonical "0.0"
// shape. Empty and unparsable values become "0.0"; values already in shape
// pass through untouched; everything else ("0.00", "15") is reformatted to a
// single fractional digit.
func NormalizeCredit(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
	if s == "" {
		return "0.0"
	}
	if canonicalCredit.MatchString(s) {
		return s
	}
	return strconv.FormatFloat(ParseAmount(s), 'f', 1, 64)
}
