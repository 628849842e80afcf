package usecase

import (
	"jdoc/internal/adapter/queryparse"
	"jdoc/internal/domain"
	"jdoc/internal/port"
)

// Suggester proposes an alternative class name for queries the index has
// never heard of.
type Suggester interface {
	Suggest(name string) (string, bool)
}

// LookupUseCase is the javadoc lookup pipeline: parse the query, resolve it
// against the documentation index, disambiguate, and compose a paginated
// chat response. Numbered follow-up replies are resolved through the choice
// tracker and replayed through the same pipeline.
type LookupUseCase struct {
	index   port.DocIndex
	tracker *ChoiceTracker
	suggest Suggester
}

// NewLookupUseCase creates the lookup pipeline. suggest may be nil.
func NewLookupUseCase(index port.DocIndex, tracker *ChoiceTracker, suggest Suggester) *LookupUseCase {
	return &LookupUseCase{
		index:   index,
		tracker: tracker,
		suggest: suggest,
	}
}

// Query answers a free-text javadoc query. The returned error is an index
// I/O failure and aborts the turn; every other outcome is a chat response.
func (u *LookupUseCase) Query(msg domain.ChatMessage) (*domain.ChatResponse, error) {
	ref := queryparse.Parse(msg.Content)

	res, err := u.index.Lookup(ref.ClassName)
	if err != nil {
		return nil, err
	}

	switch {
	case res.Ambiguous():
		return u.multipleMatches(ref, res.Candidates, msg)
	case res.NotFound():
		return u.noMatch(ref, msg), nil
	default:
		return u.singleMatch(ref, res.Class, msg)
	}
}

// Choice handles a numbered reply to a previously offered choice list.
// A nil response means the reply is deliberately ignored (nothing pending,
// or the list expired). The selected choice text is replayed as a fresh,
// never privileged query.
func (u *LookupUseCase) Choice(msg domain.ChatMessage, num int) (*domain.ChatResponse, error) {
	text, status := u.tracker.Resolve(num)
	switch status {
	case ChoiceNone, ChoiceExpired:
		return nil, nil
	case ChoiceInvalid:
		return reply(msg, "That's not a valid choice."), nil
	}

	msg.Content = text
	return u.Query(msg)
}

func (u *LookupUseCase) singleMatch(ref domain.ClassReference, class *domain.ClassRecord, msg domain.ChatMessage) (*domain.ChatResponse, error) {
	if !ref.HasMethod() {
		return u.printClass(class, ref.Paragraph, msg), nil
	}

	matches, err := matchMethods(u.index, class, ref.MethodName, ref.Parameters)
	if err != nil {
		return nil, err
	}

	if matches.Empty() {
		return reply(msg, "Sorry, I can't find that method. :("), nil
	}

	if matches.Exact != nil {
		return u.printMethod(*matches.Exact, class, ref.Paragraph, msg), nil
	}

	if len(matches.NameMatches) == 1 && ref.Parameters == nil {
		return u.printMethod(matches.NameMatches[0], class, ref.Paragraph, msg), nil
	}

	groups := []classMethods{{Class: class, Methods: matches.NameMatches}}
	return u.printMethodChoices(groups, ref.Parameters, msg), nil
}

func (u *LookupUseCase) multipleMatches(ref domain.ClassReference, candidates []string, msg domain.ChatMessage) (*domain.ChatResponse, error) {
	if !ref.HasMethod() {
		return u.printClassChoices(candidates, msg), nil
	}

	// Resolve the method against every candidate class independently.
	var exacts, names []classMethods
	for _, fqn := range candidates {
		res, err := u.index.Lookup(fqn)
		if err != nil {
			return nil, err
		}
		if !res.Found() {
			continue
		}

		matches, err := matchMethods(u.index, res.Class, ref.MethodName, ref.Parameters)
		if err != nil {
			return nil, err
		}

		if matches.Exact != nil {
			exacts = append(exacts, classMethods{
				Class:   res.Class,
				Methods: []domain.MethodRecord{*matches.Exact},
			})
		}
		if len(matches.NameMatches) > 0 {
			names = append(names, classMethods{Class: res.Class, Methods: matches.NameMatches})
		}
	}

	switch {
	case len(exacts) == 0 && len(names) == 0:
		return reply(msg, "Sorry, I can't find that method. :("), nil
	case len(exacts) == 1:
		return u.printMethod(exacts[0].Methods[0], exacts[0].Class, ref.Paragraph, msg), nil
	case len(exacts) > 1:
		return u.printMethodChoices(exacts, ref.Parameters, msg), nil
	default:
		return u.printMethodChoices(names, ref.Parameters, msg), nil
	}
}

func (u *LookupUseCase) noMatch(ref domain.ClassReference, msg domain.ChatMessage) *domain.ChatResponse {
	text := "Sorry, I never heard of that class. :("
	if u.suggest != nil {
		if fqn, ok := u.suggest.Suggest(ref.ClassName); ok {
			text += " Did you mean `" + fqn + "`?"
		}
	}
	return reply(msg, text)
}
