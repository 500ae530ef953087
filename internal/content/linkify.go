package content

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const coralShopURL = "https://ru.coral.club/shop/koral-mayn-silver.html?offer=2200&amp;REF_CODE=365272872010"

var waterWord = regexp.MustCompile(`(?i)вода`)

// LinkifyWater wraps every standalone occurrence of the word «вода» in an
// HTML link to the shop page, preserving the original case. Occurrences
// inside longer words are left alone.
func LinkifyWater(text string) string {
	matches := waterWord.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if letterBefore(text, start) || letterAfter(text, end) {
			continue
		}
		b.WriteString(text[last:start])
		b.WriteString(`<a href="`)
		b.WriteString(coralShopURL)
		b.WriteString(`">`)
		b.WriteString(text[start:end])
		b.WriteString(`</a>`)
		last = end
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

func letterBefore(s string, i int) bool {
	r, size := utf8.DecodeLastRuneInString(s[:i])
	return size > 0 && unicode.IsLetter(r)
}

func letterAfter(s string, i int) bool {
	r, size := utf8.DecodeRuneInString(s[i:])
	return size > 0 && unicode.IsLetter(r)
}
