package render

import (
	"strconv"
	"strings"

	"jdoc/internal/domain"
)

// ChatBuilder builds a chat-markdown message. Style markers (bold, italic,
// code, strike) are toggles: call the method once to open and once to close.
type ChatBuilder struct {
	sb strings.Builder
}

// NewChatBuilder creates an empty builder.
func NewChatBuilder() *ChatBuilder {
	return &ChatBuilder{}
}

// Reply prefixes the message with a reply marker for the given message.
func (cb *ChatBuilder) Reply(msg domain.ChatMessage) *ChatBuilder {
	if msg.ID > 0 {
		cb.sb.WriteByte(':')
		cb.sb.WriteString(strconv.FormatInt(msg.ID, 10))
		cb.sb.WriteByte(' ')
	}
	return cb
}

// Append appends plain text.
func (cb *ChatBuilder) Append(s string) *ChatBuilder {
	cb.sb.WriteString(s)
	return cb
}

// AppendInt appends a decimal integer.
func (cb *ChatBuilder) AppendInt(n int) *ChatBuilder {
	cb.sb.WriteString(strconv.Itoa(n))
	return cb
}

// NL appends a newline.
func (cb *ChatBuilder) NL() *ChatBuilder {
	cb.sb.WriteByte('\n')
	return cb
}

// Bold toggles bold.
func (cb *ChatBuilder) Bold() *ChatBuilder {
	cb.sb.WriteString("**")
	return cb
}

// Italic toggles italics.
func (cb *ChatBuilder) Italic() *ChatBuilder {
	cb.sb.WriteByte('*')
	return cb
}

// Code toggles fixed-width markup.
func (cb *ChatBuilder) Code() *ChatBuilder {
	cb.sb.WriteByte('`')
	return cb
}

// CodeText appends s wrapped in fixed-width markup.
func (cb *ChatBuilder) CodeText(s string) *ChatBuilder {
	return cb.Code().Append(s).Code()
}

// Strike toggles strike-through.
func (cb *ChatBuilder) Strike() *ChatBuilder {
	cb.sb.WriteString("---")
	return cb
}

// Tag appends a chat tag.
func (cb *ChatBuilder) Tag(name string) *ChatBuilder {
	cb.sb.WriteString("[tag:")
	cb.sb.WriteString(name)
	cb.sb.WriteByte(']')
	return cb
}

// Link appends a hyperlink.
func (cb *ChatBuilder) Link(text, url string) *ChatBuilder {
	cb.sb.WriteByte('[')
	cb.sb.WriteString(text)
	cb.sb.WriteString("](")
	cb.sb.WriteString(url)
	cb.sb.WriteByte(')')
	return cb
}

// String returns the built message.
func (cb *ChatBuilder) String() string {
	return cb.sb.String()
}
