package validate

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

const referencePrefix = "TXN-"

// IsReference reports whether s looks like a transaction reference issued
// by donation intake: TXN-<timestamp>-<luhn-valid suffix>.
func IsReference(s string) bool {
	if !strings.HasPrefix(s, referencePrefix) {
		return false
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return false
	}
	if len(parts[1]) != 14 {
		return false
	}
	return IsLuhn(parts[2])
}

func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
