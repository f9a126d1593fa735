package models

import "strings"

// PositionClass buckets raw position strings into the coarse classes used
// for roster-balance analysis.
type PositionClass string

const (
	ClassGuard         PositionClass = "Guard"
	ClassForward       PositionClass = "Forward"
	ClassCenter        PositionClass = "Center"
	ClassForwardCenter PositionClass = "Forward-Center"
	ClassUnknown       PositionClass = "Unknown"
)

// positionClassMap maps individual position tokens (the pieces of a
// possibly hyphenated position string) to their class.
var positionClassMap = map[string]PositionClass{
	"PG":      ClassGuard,
	"SG":      ClassGuard,
	"G":       ClassGuard,
	"GUARD":   ClassGuard,
	"SF":      ClassForward,
	"PF":      ClassForward,
	"F":       ClassForward,
	"FORWARD": ClassForward,
	"C":       ClassCenter,
	"CENTER":  ClassCenter,
}

// ClassifyPosition maps a single position token to its class.
func ClassifyPosition(token string) PositionClass {
	if class, ok := positionClassMap[strings.ToUpper(strings.TrimSpace(token))]; ok {
		return class
	}
	return ClassUnknown
}

// SplitPosition splits a raw position string ("Forward-Center", "PG-SG")
// into its tokens.
func SplitPosition(raw string) []string {
	parts := strings.Split(raw, "-")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			tokens = append(tokens, trimmed)
		}
	}
	return tokens
}

// PrimaryPosition returns the first token of a raw position string. Hybrid
// players are attributed to their listed primary slot.
func PrimaryPosition(raw string) string {
	tokens := SplitPosition(raw)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}

// PositionClasses returns the distinct classes a raw position string
// covers. A "Forward-Center" hybrid covers both Forward and Center.
func PositionClasses(raw string) []PositionClass {
	seen := make(map[PositionClass]bool)
	classes := make([]PositionClass, 0, 2)
	for _, token := range SplitPosition(raw) {
		class := ClassifyPosition(token)
		if class == ClassUnknown || seen[class] {
			continue
		}
		seen[class] = true
		classes = append(classes, class)
	}
	return classes
}
