package speedparser

import (
	"fmt"
	"strings"
	"unicode"
)

// Symbolic speed values that stand in for a number.
var symbolicSpeeds = map[string]bool{
	"none": true,
	"walk": true,
}

// Units accepted after a numeric speed. Kilometres per hour is the
// implicit default and carries no suffix.
var speedUnits = map[string]bool{
	"mph":  true,
	"km/h": true,
}

// Parse converts one speed cell's text into tag pairs. Clauses are
// separated by ";"; the first unqualified clause sets maxspeed, a clause
// led by a qualifier word sets maxspeed:<qualifier>, and access clauses
// produce an access tag.
func Parse(text string) (map[string]string, error) {
	tags := make(map[string]string)

	for _, clause := range strings.Split(text, ";") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		if err := parseClause(clause, tags); err != nil {
			return nil, err
		}
	}

	if len(tags) == 0 {
		return nil, fmt.Errorf("empty speed expression")
	}
	return tags, nil
}

// parseClause interprets one ";"-separated clause and merges its tag into
// tags.
func parseClause(clause string, tags map[string]string) error {
	words := strings.Fields(clause)

	// "no access" / "access no"
	if len(words) == 2 && isAccessClause(words) {
		tags["access"] = "no"
		return nil
	}

	// Optional leading qualifier ("trucks 30", "urban 50 mph").
	key := "maxspeed"
	if len(words) > 1 && !isSpeedValue(words[0]) {
		qualifier := strings.ToLower(words[0])
		if !isWord(qualifier) {
			return fmt.Errorf("unrecognized qualifier %q in %q", words[0], clause)
		}
		key = "maxspeed:" + qualifier
		words = words[1:]
	}

	value, err := speedValue(words)
	if err != nil {
		return fmt.Errorf("%w in %q", err, clause)
	}

	tags[key] = value
	return nil
}

// speedValue validates the remaining words as a speed: a bare number, a
// number with a unit, or a symbolic value.
func speedValue(words []string) (string, error) {
	switch len(words) {
	case 1:
		if !isSpeedValue(words[0]) {
			return "", fmt.Errorf("expected speed value, got %q", words[0])
		}
		return words[0], nil
	case 2:
		if !isNumber(words[0]) || !speedUnits[strings.ToLower(words[1])] {
			return "", fmt.Errorf("expected speed with unit, got %q", strings.Join(words, " "))
		}
		return words[0] + " " + strings.ToLower(words[1]), nil
	default:
		return "", fmt.Errorf("expected speed value, got %q", strings.Join(words, " "))
	}
}

func isAccessClause(words []string) bool {
	a, b := strings.ToLower(words[0]), strings.ToLower(words[1])
	return (a == "no" && b == "access") || (a == "access" && b == "no")
}

func isSpeedValue(word string) bool {
	return isNumber(word) || symbolicSpeeds[strings.ToLower(word)]
}

func isNumber(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isWord(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) && r != '_' {
			return false
		}
	}
	return true
}
