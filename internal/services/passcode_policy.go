package services

import (
	"errors"
	"strings"
	"unicode"
)

const (
	minPasscodeLength = 4
	maxPasscodeLength = 12
)

var ErrWeakPasscode = errors.New("passcode must be 4 to 12 digits")

func ValidatePasscode(passcode string) error {
	passcode = strings.TrimSpace(passcode)
	length := len([]rune(passcode))
	if length < minPasscodeLength || length > maxPasscodeLength {
		return ErrWeakPasscode
	}
	for _, char := range passcode {
		if !unicode.IsDigit(char) {
			return ErrWeakPasscode
		}
	}
	return nil
}
