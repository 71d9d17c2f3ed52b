package util

import "strings"

// SplitDelim splits s at every occurrence of delim. A trailing delimiter does
// not produce an empty last element, an empty s produces no elements and a
// zero delim leaves s whole.
func SplitDelim(s string, delim rune) []string {
	if s == "" {
		return []string{}
	}
	if delim == 0 {
		return []string{s}
	}

	parts := strings.Split(s, string(delim))
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	return parts
}

// CloneNested returns a deep copy of a slice of string slices
func CloneNested(in [][]string) [][]string {
	if in == nil {
		return nil
	}
	out := make([][]string, len(in))
	for i, v := range in {
		out[i] = append([]string{}, v...)
	}

	return out
}
