package application

import (
	"fmt"
	"regexp"
	"strings"
)

// keyPattern matches item keys: letters, digits, dash, underscore and dot
var keyPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// listPattern matches list names
var listPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ._-]*$`)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "targetKey" -> "target key")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"key":       "key",
		"sourceKey": "source key",
		"targetKey": "target key",
		"parentKey": "parent key",
		"title":     "title",
		"list":      "list name",
		"mode":      "insertion mode",
		"query":     "query",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateKey checks that a key is present and well formed
func ValidateKey(fieldName, key string) error {
	if err := ValidateRequired(fieldName, key); err != nil {
		return err
	}
	if !keyPattern.MatchString(key) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("invalid %s: %s", formatFieldName(fieldName), key),
		}
	}
	return nil
}

// ValidateListName checks that a list name is present and well formed
func ValidateListName(name string) error {
	if err := ValidateRequired("list", name); err != nil {
		return err
	}
	if !listPattern.MatchString(name) {
		return &ValidationError{
			Field:   "list",
			Message: fmt.Sprintf("invalid list name: %s", name),
		}
	}
	return nil
}
