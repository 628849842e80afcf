package queryparse

import (
	"strconv"
	"strings"

	"jdoc/internal/domain"
)

// Parse turns a raw chat query into a ClassReference. It never fails: every
// malformed input degrades to a permissive default.
//
// Grammar (informal):
//
//	NAME
//	NAME(params)               constructor reference
//	NAME#method
//	NAME#method(params)
//	... paragraphNumber        trailing whitespace-separated integer
//
// A "(*)" parameter list means "don't filter by parameters" (same as
// omitting the list); "()" means "zero-arg overloads only".
func Parse(text string) domain.ClassReference {
	text = strings.TrimSpace(text)
	ref := domain.ClassReference{Paragraph: 1}

	i := 0
	for i < len(text) && !isNameEnd(text, i) {
		i++
	}
	ref.ClassName = text[:i]

	var params string
	haveParams := false

	if i < len(text) && text[i] == '(' {
		// A parenthesized list directly after the class name is a
		// constructor reference; the method name is the last dot-component
		// of the class name.
		params, i = readParens(text, i)
		haveParams = true
		name := ref.ClassName
		if dot := strings.LastIndex(name, "."); dot >= 0 {
			name = name[dot+1:]
		}
		ref.MethodName = name
	} else if i < len(text) && text[i] == '#' {
		i++
		start := i
		for i < len(text) && !isMethodEnd(text, i) {
			i++
		}
		ref.MethodName = text[start:i]
		if i < len(text) && text[i] == '(' {
			params, i = readParens(text, i)
			haveParams = true
		}
	}

	if haveParams {
		ref.Parameters = splitParams(params)
	}

	if rest := strings.TrimSpace(text[i:]); rest != "" {
		if n, err := strconv.Atoi(rest); err == nil {
			if n < 1 {
				n = 1
			}
			ref.Paragraph = n
		}
	}

	return ref
}

// isNameEnd reports whether the class name token stops at position i. An
// opening paren with no closing paren anywhere after it is an ordinary name
// character, not the start of a parameter list.
func isNameEnd(text string, i int) bool {
	switch text[i] {
	case '#':
		return true
	case '(':
		return strings.IndexByte(text[i+1:], ')') >= 0
	}
	return isSpace(text[i])
}

// isMethodEnd is isNameEnd without the '#' terminator: a method name runs
// until whitespace or a well-formed parameter list.
func isMethodEnd(text string, i int) bool {
	if text[i] == '(' {
		return strings.IndexByte(text[i+1:], ')') >= 0
	}
	return isSpace(text[i])
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// readParens consumes a parameter list starting at the '(' at position i and
// returns the list's inner text plus the position after the closing ')'.
func readParens(text string, i int) (string, int) {
	end := strings.IndexByte(text[i+1:], ')')
	inner := text[i+1 : i+1+end]
	return inner, i + end + 2
}

// splitParams parses the inner text of a parameter list. nil means "no
// parameter constraint", the empty slice means "zero-arg only".
func splitParams(inner string) []string {
	inner = strings.TrimSpace(inner)
	if inner == "*" {
		return nil
	}
	if inner == "" {
		return []string{}
	}
	parts := strings.Split(inner, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
