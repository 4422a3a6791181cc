package lol

import (
	"strings"
	"unicode"
)

// Tags are assumed to be short upper-case prefixes ("TSM Bjergsen").
// A split happens only when a space occurs within the first five
// characters and the token before it is entirely upper-case.
const maxTagSpaceIndex = 5

// SplitNameTag splits an optional team tag off a combined display name.
// When no tag is detected the whole input is returned as the player name.
// The upper-case convention means any short capitalized token is taken as
// a tag ("AB CD" splits); that quirk is load-bearing for downstream
// consumers and is kept as is.
func SplitNameTag(summonerName string) (tag, name string) {
	idx := strings.Index(summonerName, " ")
	if idx == -1 || idx >= maxTagSpaceIndex {
		return "", summonerName
	}
	head := summonerName[:idx]
	if !isUpperToken(head) {
		return "", summonerName
	}
	return head, summonerName[idx+1:]
}

// isUpperToken reports whether s contains at least one cased rune and no
// lower-case ones.
func isUpperToken(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}
