package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	minTokenLen = 2
	maxTokenLen = 64
)

var (
	separatorRun = regexp.MustCompile(`[,;/()\[\]{}•]+`)
	quantityRe   = regexp.MustCompile(`^\p{Nd}+%?[\s\p{Zs}]*|[\s\p{Zs}]*\p{Nd}+%?$`)
)

// Tokenize splits a raw ingredient list into distinct lowercase tokens in
// order of first appearance. Segments outside 2..64 characters are dropped
// before leading and trailing quantities ("10%", "2 ") are stripped.
func Tokenize(text string) []string {
	s := strings.ToLower(norm.NFKC.String(text))
	s = separatorRun.ReplaceAllString(s, ",")

	var out []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if n := utf8.RuneCountInString(part); n < minTokenLen || n > maxTokenLen {
			continue
		}
		part = strings.TrimSpace(quantityRe.ReplaceAllString(part, ""))
		if part == "" {
			continue
		}
		if _, dup := seen[part]; dup {
			continue
		}
		seen[part] = struct{}{}
		out = append(out, part)
	}
	return out
}
