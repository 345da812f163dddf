package knowledge

import (
	"strings"
	"unicode"
)

// Chunk splits text into pieces of at most size runes, each overlapping the
// previous by overlap runes. Cuts prefer the last whitespace inside the
// window. Non-positive size returns the trimmed text as one chunk.
func Chunk(text string, size, overlap int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	runes := []rune(text)
	if size <= 0 || len(runes) <= size {
		return []string{text}
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + size
		if end >= len(runes) {
			chunks = append(chunks, strings.TrimSpace(string(runes[start:])))
			break
		}
		cut := end
		for k := end; k > start+size/2; k-- {
			if unicode.IsSpace(runes[k]) {
				cut = k
				break
			}
		}
		chunks = append(chunks, strings.TrimSpace(string(runes[start:cut])))
		next := cut - overlap
		if next <= start {
			next = cut
		}
		start = next
	}
	return chunks
}
