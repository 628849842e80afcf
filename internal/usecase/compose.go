package usecase

import (
	"sort"
	"strings"

	"jdoc/internal/adapter/render"
	"jdoc/internal/domain"
)

// classModifierOrder lists the class flags to display, in a fixed order so a
// class with several modifiers renders consistently.
var classModifierOrder = []string{"abstract", "final"}

// classTypes is the set of "class type" modifiers. A class should carry
// exactly one, but nothing breaks if it doesn't.
var classTypes = map[string]bool{
	"annotation": true,
	"class":      true,
	"enum":       true,
	"exception":  true,
	"interface":  true,
}

// methodModifiersToIgnore are the access modifiers not worth repeating in
// chat output.
var methodModifiersToIgnore = map[string]bool{
	"private":   true,
	"protected": true,
	"public":    true,
}

// classMethods pairs a class with methods selected from its hierarchy, in
// hierarchy-walk order.
type classMethods struct {
	Class   *domain.ClassRecord
	Methods []domain.MethodRecord
}

func reply(msg domain.ChatMessage, text string) *domain.ChatResponse {
	cb := render.NewChatBuilder()
	cb.Reply(msg).Append(text)
	return &domain.ChatResponse{Text: cb.String()}
}

// printClass renders one paragraph of a class's documentation. The header
// (library tag, modifiers, linked name) appears only on paragraph 1.
func (u *LookupUseCase) printClass(class *domain.ClassRecord, paragraph int, msg domain.ChatMessage) *domain.ChatResponse {
	cb := render.NewChatBuilder()
	cb.Reply(msg)

	if paragraph == 1 {
		appendLibraryTag(cb, class)

		deprecated := class.Deprecated
		for _, mod := range classModifierOrder {
			if !hasModifier(class.Modifiers, mod) {
				continue
			}
			cb.Italic()
			strikeTag(cb, mod, deprecated)
			cb.Italic()
			cb.Append(" ")
		}
		for _, mod := range class.Modifiers {
			if !classTypes[mod] {
				continue
			}
			strikeTag(cb, mod, deprecated)
			cb.Append(" ")
		}

		if deprecated {
			cb.Strike()
		}
		name := render.NewChatBuilder().Bold().CodeText(class.Name.FullyQualified).Bold().String()
		if class.FrameURL == "" {
			cb.Append(name)
		} else {
			cb.Link(name, class.FrameURL)
		}
		if deprecated {
			cb.Strike()
		}
		cb.Append(": ")
	}

	render.SplitParagraphs(class.Description).Append(paragraph, cb)
	return &domain.ChatResponse{Text: cb.String(), Split: domain.SplitWord}
}

// printMethod renders one paragraph of a method's documentation.
func (u *LookupUseCase) printMethod(method domain.MethodRecord, class *domain.ClassRecord, paragraph int, msg domain.ChatMessage) *domain.ChatResponse {
	cb := render.NewChatBuilder()
	cb.Reply(msg)

	if paragraph == 1 {
		appendLibraryTag(cb, class)

		deprecated := method.Deprecated
		for _, mod := range method.Modifiers {
			if methodModifiersToIgnore[mod] {
				continue
			}
			strikeTag(cb, mod, deprecated)
			cb.Append(" ")
		}

		if deprecated {
			cb.Strike()
		}
		signature := render.NewChatBuilder().Bold().CodeText(method.DisplaySignature()).Bold().String()
		if class.URL == "" {
			cb.Append(signature)
		} else {
			cb.Link(signature, class.URL+"#"+method.URLAnchor)
		}
		if deprecated {
			cb.Strike()
		}
		cb.Append(": ")
	}

	render.SplitParagraphs(method.Description).Append(paragraph, cb)
	return &domain.ChatResponse{Text: cb.String(), Split: domain.SplitWord}
}

// printClassChoices offers a numbered list of fully qualified class names,
// sorted lexicographically.
func (u *LookupUseCase) printClassChoices(classes []string, msg domain.ChatMessage) *domain.ChatResponse {
	choices := make([]string, len(classes))
	copy(choices, classes)
	sort.Strings(choices)
	u.tracker.Offer(choices)

	cb := render.NewChatBuilder()
	cb.Reply(msg)
	cb.Append("Which one do you mean? (type the number)")

	for i, name := range choices {
		cb.NL().AppendInt(i + 1).Append(". ").Append(name)
	}

	return &domain.ChatResponse{Text: cb.String(), Split: domain.SplitNewline}
}

// printMethodChoices offers a numbered list of method signatures, grouped by
// enclosing class. params is the parameter constraint of the original query,
// used only to word the prompt.
func (u *LookupUseCase) printMethodChoices(groups []classMethods, params []string, msg domain.ChatMessage) *domain.ChatResponse {
	total := 0
	for _, g := range groups {
		total += len(g.Methods)
	}

	cb := render.NewChatBuilder()
	cb.Reply(msg)
	cb.Append(choicePrompt(total, params))

	var choices []string
	for _, g := range groups {
		for _, m := range g.Methods {
			label := g.Class.Name.FullyQualified + "#" + m.DisplaySignature()
			choices = append(choices, label)
			cb.NL().AppendInt(len(choices)).Append(". ").Append(label)
		}
	}
	u.tracker.Offer(choices)

	return &domain.ChatResponse{Text: cb.String(), Split: domain.SplitNewline}
}

func choicePrompt(total int, params []string) string {
	if params == nil {
		if total == 1 {
			return "Did you mean this one? (type the number)"
		}
		return "Which one do you mean? (type the number)"
	}

	var sb strings.Builder
	if len(params) == 0 {
		sb.WriteString("I couldn't find a zero-arg signature for that method.")
	} else {
		sb.WriteString("I couldn't find a signature with ")
		if len(params) == 1 {
			sb.WriteString("that parameter.")
		} else {
			sb.WriteString("those parameters.")
		}
	}
	if total == 1 {
		sb.WriteString(" Did you mean this one? (type the number)")
	} else {
		sb.WriteString(" Did you mean one of these? (type the number)")
	}
	return sb.String()
}

// appendLibraryTag prints a bolded library tag, except for the core "java"
// library which needs no attribution.
func appendLibraryTag(cb *render.ChatBuilder, class *domain.ClassRecord) {
	lib := class.Library
	if lib == nil || lib.Name == "" || strings.EqualFold(lib.Name, "java") {
		return
	}
	name := strings.ReplaceAll(lib.Name, " ", "-")
	cb.Bold().Tag(name).Bold().Append(" ")
}

func strikeTag(cb *render.ChatBuilder, tag string, deprecated bool) {
	if deprecated {
		cb.Strike()
	}
	cb.Tag(tag)
	if deprecated {
		cb.Strike()
	}
}

func hasModifier(modifiers []string, want string) bool {
	for _, m := range modifiers {
		if m == want {
			return true
		}
	}
	return false
}
