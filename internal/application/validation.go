package application

import (
	"fmt"
	"strings"

	"ppw/internal/domain"
)

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
// for more readable error messages (e.g., "inputFile" -> "input file")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"inputFile":  "input file",
		"targetFile": "target file",
		"depLog":     "dependency log",
		"listFile":   "file list",
		"outputDir":  "output directory",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateScriptPath checks that an input path names a file rather than a
// directory, so that a base name can be derived from it.
func ValidateScriptPath(fieldName, path string) error {
	if err := ValidateRequired(fieldName, path); err != nil {
		return err
	}
	normalized := domain.NormalizeSeparators(path)
	if strings.HasSuffix(normalized, "/") {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected a file, got directory: %s", path),
		}
	}
	return nil
}
