package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// ChequeNumberLength is the number of digits in a cheque number.
const ChequeNumberLength = 16

func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// IsChequeNumber reports whether s could have been issued as a cheque number.
func IsChequeNumber(s string) bool {
	if len(s) != ChequeNumberLength {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return IsLuhn(s)
}

func NewChequeNumber() string {
	return goluhn.Generate(ChequeNumberLength)
}
