package usecase

import (
	"strings"

	"jdoc/internal/domain"
	"jdoc/internal/port"
)

// matchMethods finds the methods of a class (or anywhere up its
// superclass/interface graph) whose name matches methodName,
// case-insensitively. With a non-nil params constraint, a method whose
// simple parameter type names (array suffix included) match positionally and
// case-insensitively is additionally recorded as the exact-signature match.
//
// The walk is an explicit LIFO worklist: a node's superclass is pushed
// before its interfaces, references the index doesn't know are silently
// skipped, and a visited set guards against reference cycles the index
// can't be trusted to exclude. A signature already recorded by a subtype is
// never re-added when a supertype redeclares it.
func matchMethods(index port.DocIndex, class *domain.ClassRecord, methodName string, params []string) (domain.MatchSet, error) {
	var matches domain.MatchSet
	seenSignatures := make(map[string]bool)
	visited := make(map[string]bool)

	stack := []*domain.ClassRecord{class}
	visited[class.Name.FullyQualified] = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for i := range cur.Methods {
			m := cur.Methods[i]
			if !strings.EqualFold(m.Name, methodName) {
				continue
			}

			signature := m.Signature()
			if seenSignatures[signature] {
				continue
			}
			seenSignatures[signature] = true
			matches.NameMatches = append(matches.NameMatches, m)

			if params == nil {
				// Not filtering by parameters.
				continue
			}
			if len(m.Parameters) != len(params) {
				continue
			}

			exact := true
			for j, p := range m.Parameters {
				if !strings.EqualFold(p.SimpleType(), params[j]) {
					exact = false
					break
				}
			}
			if exact {
				// Last exact match wins.
				method := m
				matches.Exact = &method
			}
		}

		push := func(name *domain.ClassName) error {
			if name == nil || visited[name.FullyQualified] {
				return nil
			}
			visited[name.FullyQualified] = true
			res, err := index.Lookup(name.FullyQualified)
			if err != nil {
				return err
			}
			if res.Found() {
				stack = append(stack, res.Class)
			}
			return nil
		}

		if err := push(cur.SuperClass); err != nil {
			return domain.MatchSet{}, err
		}
		for i := range cur.Interfaces {
			if err := push(&cur.Interfaces[i]); err != nil {
				return domain.MatchSet{}, err
			}
		}
	}

	return matches, nil
}
