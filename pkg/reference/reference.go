// Package reference builds the labels users type into their bank transfer.
package reference

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

const (
	Prefix    = "PUPU-"
	digits    = 10
	minDigits = 6
)

// New returns a fresh reference whose digits carry a Luhn check digit.
func New() string {
	return Prefix + goluhn.Generate(digits)
}

// Normalize cleans up a reference as typed by a human: case, spaces and a
// missing dash are tolerated.
func Normalize(s string) string {
	s = strings.ToUpper(strings.Join(strings.Fields(s), ""))
	if strings.HasPrefix(s, "PUPU") && !strings.HasPrefix(s, Prefix) {
		s = Prefix + strings.TrimPrefix(s, "PUPU")
	}
	return s
}

// Valid reports whether s is a well formed reference with a correct check digit.
func Valid(s string) bool {
	if !strings.HasPrefix(s, Prefix) {
		return false
	}
	number := strings.TrimPrefix(s, Prefix)
	if len(number) < minDigits {
		return false
	}
	return goluhn.Validate(number) == nil
}
