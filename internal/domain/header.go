package domain

import (
	"fmt"
	"strings"
)

// SlotBaseName prefixes every synthesized global variable
const SlotBaseName = "globalVariable_SHYDNUTN_"

// SlotName returns the identifier for slot index i, zero padded to at least
// three digits.
func SlotName(i int) string {
	return fmt.Sprintf("%s%03d", SlotBaseName, i)
}

// DeclarationLine declares n global slots in one var statement, or returns
// the empty string when n is zero.
func DeclarationLine(n int) string {
	if n <= 0 {
		return ""
	}
	names := make([]string, n)
	for i := range names {
		names[i] = SlotName(i)
	}
	return "var " + strings.Join(names, ",") + ";\n"
}

// RequireBlock emits one require statement per module path, in order.
func RequireBlock(paths []string) string {
	var sb strings.Builder
	for _, p := range paths {
		sb.WriteString(`require("`)
		sb.WriteString(p)
		sb.WriteString("\");\n")
	}
	return sb.String()
}

// SynthesizeHeader builds the text prepended to a target file.
func SynthesizeHeader(log *DependencyLog, includeRequires bool) string {
	header := DeclarationLine(log.Count)
	if includeRequires {
		header += RequireBlock(log.Paths)
	}
	return header
}
