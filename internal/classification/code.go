// Package classification implements the classification-code hierarchy
// and retention rules: code validation, numeric-aware ordering,
// document-number identification, retention-date computation and
// main-category grouping.
package classification

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"arsipku/internal/model"
)

// codePattern matches a classification code: a 3-digit head followed
// by zero or more dotted numeric segments, e.g. "001", "002.3.1".
var codePattern = regexp.MustCompile(`^\d{3}(\.\d+)*$`)

// ValidCode reports whether code is a well-formed classification code.
func ValidCode(code string) bool {
	return codePattern.MatchString(code)
}

// Parent returns the code with its last dotted segment removed, or ""
// if the code has no parent (top-level or malformed).
func Parent(code string) string {
	idx := strings.LastIndex(code, ".")
	if idx < 0 {
		return ""
	}
	return code[:idx]
}

// IsMainCategory reports whether code is a top-level category: exactly
// one segment of exactly three digits.
func IsMainCategory(code string) bool {
	return len(code) == 3 && !strings.Contains(code, ".") && codePattern.MatchString(code)
}

// CompareCodes orders two codes by numeric-aware segment comparison:
// each dot-delimited segment compares as a number, so "2" sorts before
// "10". A code that is a strict prefix of another sorts first. Codes
// whose segments are numerically equal but textually different (e.g.
// "001.2" vs "001.02") fall back to string order.
func CompareCodes(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		an, aok := atoi(as[i])
		bn, bok := atoi(bs[i])
		switch {
		case aok && bok:
			if an != bn {
				if an < bn {
					return -1
				}
				return 1
			}
		default:
			if c := strings.Compare(as[i], bs[i]); c != 0 {
				return c
			}
		}
	}
	if len(as) != len(bs) {
		if len(as) < len(bs) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// SortByCode sorts classifications ascending by numeric-aware code
// order, in place. The sort is stable.
func SortByCode(items []model.Classification) {
	sort.SliceStable(items, func(i, j int) bool {
		return CompareCodes(items[i].Code, items[j].Code) < 0
	})
}

// FindByCode returns the classification with the exact code, if present.
func FindByCode(items []model.Classification, code string) (model.Classification, bool) {
	for _, c := range items {
		if c.Code == code {
			return c, true
		}
	}
	return model.Classification{}, false
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil
}
