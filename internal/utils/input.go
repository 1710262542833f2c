package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInt parses a whole-number answer typed at a prompt. Only the first
// whitespace-separated token is considered, matching how ids are read.
func ParseInt(input string) (int, error) {
	token := FirstToken(input)
	if token == "" {
		return 0, fmt.Errorf("empty input, expected a number")
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %v", token, err)
	}
	return n, nil
}

// ParseChoice parses a menu selection and checks it is within [lo, hi].
// The bool result reports whether the input was numeric at all.
func ParseChoice(input string, lo, hi int) (int, bool, error) {
	n, err := ParseInt(input)
	if err != nil {
		return 0, false, err
	}
	if n < lo || n > hi {
		return n, true, fmt.Errorf("choice must be between %d and %d", lo, hi)
	}
	return n, true, nil
}

// ParseDay parses a simulation day number. Days are limited to 32 bits so
// that day arithmetic stays in range.
func ParseDay(input string) (int, error) {
	token := FirstToken(input)
	if token == "" {
		return 0, fmt.Errorf("empty input, expected a day number")
	}
	n, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid day number %q: %v", token, err)
	}
	return int(n), nil
}

// FirstToken returns the first whitespace-separated word of input.
func FirstToken(input string) string {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
