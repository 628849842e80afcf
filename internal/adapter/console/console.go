package console

import (
	"fmt"
	"io"
	"strings"

	"jdoc/internal/domain"
)

// Relay writes bot responses to a console, fragmenting text that exceeds the
// maximum message length according to the response's split strategy.
type Relay struct {
	w      io.Writer
	maxLen int
}

// NewRelay creates a console relay. maxLen <= 0 disables fragmenting.
func NewRelay(w io.Writer, maxLen int) *Relay {
	return &Relay{w: w, maxLen: maxLen}
}

// Send prints the response, one fragment per line block.
func (r *Relay) Send(resp domain.ChatResponse) error {
	for _, part := range Split(resp.Text, resp.Split, r.maxLen) {
		if _, err := fmt.Fprintln(r.w, part); err != nil {
			return err
		}
	}
	return nil
}

// Split fragments text into pieces of at most maxLen characters. SplitWord
// breaks on word boundaries, SplitNewline on line boundaries, SplitNone cuts
// hard at the limit. A fragment longer than maxLen with no usable boundary
// is cut hard.
func Split(text string, strategy domain.SplitStrategy, maxLen int) []string {
	if maxLen <= 0 || len(text) <= maxLen {
		return []string{text}
	}

	switch strategy {
	case domain.SplitWord:
		return splitOn(text, " ", maxLen)
	case domain.SplitNewline:
		return splitOn(text, "\n", maxLen)
	default:
		return splitHard(text, maxLen)
	}
}

func splitOn(text, sep string, maxLen int) []string {
	var parts []string
	for len(text) > maxLen {
		cut := strings.LastIndex(text[:maxLen+1], sep)
		if cut <= 0 {
			// No boundary within the limit.
			parts = append(parts, text[:maxLen])
			text = text[maxLen:]
			continue
		}
		parts = append(parts, text[:cut])
		text = text[cut+len(sep):]
	}
	if text != "" {
		parts = append(parts, text)
	}
	return parts
}

func splitHard(text string, maxLen int) []string {
	var parts []string
	for len(text) > maxLen {
		parts = append(parts, text[:maxLen])
		text = text[maxLen:]
	}
	if text != "" {
		parts = append(parts, text)
	}
	return parts
}
