package domain

import "strings"

// ClassName is the qualified/simple name pair of a class or interface.
type ClassName struct {
	FullyQualified string `json:"fq"`
	Simple         string `json:"simple"`
}

// NewClassName builds a ClassName from a fully qualified name.
func NewClassName(fullyQualified string) ClassName {
	simple := fullyQualified
	if dot := strings.LastIndex(fullyQualified, "."); dot >= 0 {
		simple = fullyQualified[dot+1:]
	}
	return ClassName{FullyQualified: fullyQualified, Simple: simple}
}

// LibraryRecord describes the javadoc archive a class was loaded from.
type LibraryRecord struct {
	Name              string `json:"name"`
	Version           string `json:"version,omitempty"`
	BaseURL           string `json:"base_url,omitempty"`
	ProjectURL        string `json:"project_url,omitempty"`
	JavadocURLPattern string `json:"javadoc_url_pattern,omitempty"`
}

// ClassRecord is one indexed class. Records are read-only once written to
// the index.
type ClassRecord struct {
	Name        ClassName      `json:"name"`
	Modifiers   []string       `json:"modifiers,omitempty"`
	Deprecated  bool           `json:"deprecated,omitempty"`
	SuperClass  *ClassName     `json:"superclass,omitempty"`
	Interfaces  []ClassName    `json:"interfaces,omitempty"`
	Methods     []MethodRecord `json:"methods,omitempty"`
	Description string         `json:"description,omitempty"`
	Library     *LibraryRecord `json:"library,omitempty"`
	URL         string         `json:"url,omitempty"`
	FrameURL    string         `json:"frame_url,omitempty"`
}

// MethodRecord is one method (or constructor) of an indexed class.
type MethodRecord struct {
	Name        string            `json:"name"`
	Deprecated  bool              `json:"deprecated,omitempty"`
	Modifiers   []string          `json:"modifiers,omitempty"`
	Parameters  []ParameterRecord `json:"parameters,omitempty"`
	Description string            `json:"description,omitempty"`
	URLAnchor   string            `json:"anchor,omitempty"`
}

// ParameterRecord is one method parameter.
type ParameterRecord struct {
	Type  ClassName `json:"type"`
	Array bool      `json:"array,omitempty"`
}

// SimpleType returns the parameter's simple type name, with an array suffix.
func (p ParameterRecord) SimpleType() string {
	if p.Array {
		return p.Type.Simple + "[]"
	}
	return p.Type.Simple
}

// Signature returns the key used to dedup methods across a class hierarchy:
// the method name plus the ordered, fully qualified parameter type list.
func (m MethodRecord) Signature() string {
	var sb strings.Builder
	sb.WriteString(m.Name)
	sb.WriteByte('(')
	for i, p := range m.Parameters {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(p.Type.FullyQualified)
		if p.Array {
			sb.WriteString("[]")
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

// DisplaySignature returns the signature rendered for chat display:
// name(SimpleType, SimpleType[]).
func (m MethodRecord) DisplaySignature() string {
	types := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		types[i] = p.SimpleType()
	}
	return m.Name + "(" + strings.Join(types, ", ") + ")"
}

// ClassReference is a parsed query: a class name with an optional method
// reference, optional parameter constraint, and a paragraph selector.
// Parameters distinguishes nil ("don't filter by parameters") from the empty
// list ("zero-arg overloads only").
type ClassReference struct {
	ClassName  string
	MethodName string
	Parameters []string
	Paragraph  int
}

// HasMethod reports whether the query names a method.
func (r ClassReference) HasMethod() bool {
	return r.MethodName != ""
}

// LookupResult is the outcome of an index lookup: exactly one of Found,
// Ambiguous, or NotFound holds.
type LookupResult struct {
	Class      *ClassRecord
	Candidates []string
}

// Found reports whether the lookup resolved to a single class.
func (r LookupResult) Found() bool {
	return r.Class != nil
}

// Ambiguous reports whether the name matched more than one class.
func (r LookupResult) Ambiguous() bool {
	return len(r.Candidates) > 0
}

// NotFound reports whether the index knows no such class.
func (r LookupResult) NotFound() bool {
	return r.Class == nil && len(r.Candidates) == 0
}

// MatchSet aggregates one method resolution pass over a class hierarchy.
// A signature appears at most once in NameMatches, in hierarchy-walk order.
type MatchSet struct {
	Exact       *MethodRecord
	NameMatches []MethodRecord
}

// Empty reports whether the resolution found nothing at all.
func (m MatchSet) Empty() bool {
	return m.Exact == nil && len(m.NameMatches) == 0
}

// SplitStrategy hints how a transport may fragment a long response.
type SplitStrategy int

const (
	// SplitNone cuts at the length limit.
	SplitNone SplitStrategy = iota
	// SplitWord cuts on word boundaries (prose).
	SplitWord
	// SplitNewline cuts on line boundaries (numbered lists).
	SplitNewline
)

// ChatMessage is one incoming line of chat input.
type ChatMessage struct {
	ID      int64
	Content string
}

// ChatResponse is the bot's reply, tagged with a split strategy.
type ChatResponse struct {
	Text  string
	Split SplitStrategy
}
