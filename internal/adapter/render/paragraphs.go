package render

import "strings"

// Paragraphs splits a description on blank-line boundaries for paginated
// chat display. Paragraph numbers are 1-based. An empty description yields a
// single empty paragraph.
type Paragraphs struct {
	parts []string
}

// SplitParagraphs splits text on double-newline boundaries.
func SplitParagraphs(text string) Paragraphs {
	return Paragraphs{parts: strings.Split(text, "\n\n")}
}

// Count returns the number of paragraphs.
func (p Paragraphs) Count() int {
	return len(p.parts)
}

// Get returns the n-th (1-based) paragraph. Numbers above the count clamp to
// the last paragraph.
func (p Paragraphs) Get(n int) string {
	if n > len(p.parts) {
		n = len(p.parts)
	}
	return p.parts[n-1]
}

// Append writes the n-th paragraph to the builder, followed by an " (i/N)"
// pagination suffix when there is more than one paragraph.
func (p Paragraphs) Append(n int, cb *ChatBuilder) {
	if n > len(p.parts) {
		n = len(p.parts)
	}
	cb.Append(p.parts[n-1])
	if len(p.parts) > 1 {
		cb.Append(" (").AppendInt(n).Append("/").AppendInt(len(p.parts)).Append(")")
	}
}
