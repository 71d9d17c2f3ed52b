package ezopt

import (
	"sort"
	"strings"
	"unicode"
)

// CompareFlags orders flag aliases the way they are listed in usage output.
// Aliases with fewer leading symbols come first, then the first letter or
// digit decides case-insensitively; an upper case letter precedes its lower
// case form and the raw strings break any remaining tie. It returns a
// negative number when a sorts before b, a positive number when a sorts after
// b and 0 when they are equal.
//
// "-d" sorts before "--dimension", which sorts before "--dmn".
func CompareFlags(a, b string) int {
	aSymbols, aFirst := leadingSymbols(a)
	bSymbols, bFirst := leadingSymbols(b)

	if aSymbols != bSymbols {
		return aSymbols - bSymbols
	}

	if la, lb := unicode.ToLower(aFirst), unicode.ToLower(bFirst); la != lb {
		if la < lb {
			return -1
		}
		return 1
	}

	if aFirst != bFirst {
		if unicode.IsUpper(aFirst) {
			return -1
		}
		return 1
	}

	return strings.Compare(a, b)
}

// leadingSymbols counts the runes preceding the first letter or digit and
// returns that rune, or 0 when s has none.
func leadingSymbols(s string) (int, rune) {
	count := 0
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return count, r
		}
		count++
	}

	return count, 0
}

// SortFlags returns a copy of flags sorted with CompareFlags
func SortFlags(flags []string) []string {
	sorted := append([]string{}, flags...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return CompareFlags(sorted[i], sorted[j]) < 0
	})

	return sorted
}
