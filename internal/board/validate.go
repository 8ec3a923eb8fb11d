package board

import (
	"regexp"
	"strings"
)

var hexColor = regexp.MustCompile(`^#[A-Fa-f0-9]{6}$`)

// IsHexColor reports whether color is a six-digit "#RRGGBB" code.
func IsHexColor(color string) bool {
	return hexColor.MatchString(color)
}

func ValidCounterLabel(label string) bool {
	return strings.TrimSpace(label) != ""
}

func ValidCause(cause string, color string) bool {
	return strings.TrimSpace(cause) != "" && IsHexColor(color)
}
