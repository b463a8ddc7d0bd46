package dataprocessing

import (
	"regexp"
	"strconv"
	"strings"
)

// CNJ exports pack multiple values into one cell as "{Val1, Val2}".
var (
	digitRunPattern   = regexp.MustCompile(`\d+`)
	valueSplitPattern = regexp.MustCompile(`\s*,\s*`)
)

// SplitMultiValue extracts the individual values of a possibly
// multi-valued cell. Surrounding braces are stripped, values are
// comma-separated and whitespace-trimmed, empty items are dropped.
// A plain single-valued cell comes back as a one-element slice.
func SplitMultiValue(cell string) []string {
	text := strings.TrimSpace(cell)
	if text == "" {
		return nil
	}

	if strings.HasPrefix(text, "{") && strings.HasSuffix(text, "}") {
		text = text[1 : len(text)-1]
	}

	var values []string
	for _, item := range valueSplitPattern.Split(text, -1) {
		if item = strings.TrimSpace(item); item != "" {
			values = append(values, item)
		}
	}
	return values
}

// ExtractSubjectCodes returns every integer embedded in a subject-code
// cell. Non-numeric noise around the digits is ignored; an empty or
// numberless cell yields nil.
func ExtractSubjectCodes(cell string) []int {
	var codes []int
	for _, match := range digitRunPattern.FindAllString(cell, -1) {
		code, err := strconv.Atoi(match)
		if err != nil {
			// Digit runs longer than an int can hold; not a code.
			continue
		}
		codes = append(codes, code)
	}
	return codes
}

// ContainsAnyKeyword reports whether any value of the cell contains one
// of the keywords, case-insensitively.
func ContainsAnyKeyword(cell string, keywords []string) bool {
	for _, value := range SplitMultiValue(cell) {
		upper := strings.ToUpper(value)
		for _, keyword := range keywords {
			if strings.Contains(upper, keyword) {
				return true
			}
		}
	}
	return false
}
