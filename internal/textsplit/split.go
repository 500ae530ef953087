// Package textsplit segments long texts into Telegram-legal chunks,
// preferring line and word boundaries over mid-word cuts.
package textsplit

import "strings"

// Split cuts text into ordered chunks of at most limit characters.
// Inside each window the cut lands on the last line break or space;
// a single token longer than limit is hard-cut at the window edge so
// the loop always terminates. Chunks are trimmed and empty ones dropped.
func Split(text string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	runes := []rune(text)
	var chunks []string

	offset := 0
	for offset < len(runes) {
		end := offset + limit
		if end >= len(runes) {
			end = len(runes)
		} else {
			split := lastBoundary(runes, offset, end)
			if split <= offset {
				split = end
			}
			end = split
		}

		chunk := strings.TrimSpace(string(runes[offset:end]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		offset = end
	}
	return chunks
}

// SplitCaption cuts text into a media caption of at most limit characters
// plus the remainder to be sent as follow-up messages. The remainder is
// empty when the whole text fits.
func SplitCaption(text string, limit int) (caption, rest string) {
	if limit <= 0 {
		return "", strings.TrimSpace(text)
	}

	runes := []rune(text)
	if len(runes) <= limit {
		return strings.TrimSpace(text), ""
	}

	split := lastBoundary(runes, 0, limit)
	if split <= 0 {
		split = limit
	}
	return strings.TrimSpace(string(runes[:split])), strings.TrimSpace(string(runes[split:]))
}

// lastBoundary returns the position of the last line break or space in
// (offset, end), or offset when the window holds none.
func lastBoundary(runes []rune, offset, end int) int {
	for i := end - 1; i > offset; i-- {
		if runes[i] == '\n' || runes[i] == ' ' {
			return i
		}
	}
	return offset
}
