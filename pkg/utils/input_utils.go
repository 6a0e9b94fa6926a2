package utils

import (
	"regexp"
	"strings"
)

var (
	// 10 digits, leading 0, second digit 6 or 7
	phonePattern = regexp.MustCompile(`^0[6-7][0-9]{8}$`)
	pinPattern   = regexp.MustCompile(`^[0-9]{4}$`)
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)
)

// SanitizeInput trims whitespace and strips the characters < > " ' & from
// raw user input. Store access still goes through parameterized queries;
// this only guards naive downstream rendering.
func SanitizeInput(input string) string {
	trimmed := strings.TrimSpace(input)
	return strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '"', '\'', '&':
			return -1
		}
		return r
	}, trimmed)
}

// ValidatePhone reports whether phone matches the national mobile pattern
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidatePIN reports whether pin is exactly 4 digits
func ValidatePIN(pin string) bool {
	return pinPattern.MatchString(pin)
}

// ValidateEmail reports whether email has a permissive local@domain shape
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePassword reports whether password meets the minimum length
func ValidatePassword(password string) bool {
	return len(password) >= 6
}
