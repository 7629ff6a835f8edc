package fishtts

import (
	"unicode"
	"unicode/utf8"
)

// splitText cuts text into chunks of at most size runes, preferring to cut
// right after a whitespace. Concatenating the chunks gives back text.
func splitText(text string, size int) (chunks []string) {
	if size <= 0 || utf8.RuneCountInString(text) <= size {
		return []string{text}
	}
	for text != "" {
		if utf8.RuneCountInString(text) <= size {
			chunks = append(chunks, text)
			break
		}
		var (
			runes     int
			cut       int
			lastSpace int
		)
		for i := 0; i < len(text); {
			if runes == size {
				cut = i
				break
			}
			r, width := utf8.DecodeRuneInString(text[i:])
			i += width
			runes++
			if unicode.IsSpace(r) {
				lastSpace = i
			}
		}
		if lastSpace > 0 {
			cut = lastSpace
		}
		chunks = append(chunks, text[:cut])
		text = text[cut:]
	}
	return
}
