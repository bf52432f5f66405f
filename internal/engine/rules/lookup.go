package rules

import (
	"strings"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

func fold(s string) string {
	return folder.String(strings.TrimSpace(s))
}

// ResolveName finds the candidate a free-text name refers to. It tries an
// exact match, then a case-insensitive match, then a substring match in
// either direction. Candidates are checked in order at each stage.
func ResolveName(candidates []string, name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	for _, c := range candidates {
		if c == name {
			return c, true
		}
	}

	folded := fold(name)
	for _, c := range candidates {
		if fold(c) == folded {
			return c, true
		}
	}

	for _, c := range candidates {
		fc := fold(c)
		if fc == "" {
			continue
		}
		if strings.Contains(fc, folded) || strings.Contains(folded, fc) {
			return c, true
		}
	}
	return "", false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsFold(list []string, s string) bool {
	folded := fold(s)
	for _, v := range list {
		if fold(v) == folded {
			return true
		}
	}
	return false
}

func remove(list []string, s string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
