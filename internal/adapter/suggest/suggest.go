package suggest

import (
	"strings"

	"github.com/hbollon/go-edlib"
	"jdoc/internal/port"
)

// Suggester proposes the closest known class name for a query the index has
// never heard of, using Jaro-Winkler similarity over simple class names.
type Suggester struct {
	index         port.DocIndex
	minSimilarity float64
}

// NewSuggester creates a suggester. minSimilarity is the score in [0,1] a
// candidate must reach to be offered.
func NewSuggester(index port.DocIndex, minSimilarity float64) *Suggester {
	return &Suggester{
		index:         index,
		minSimilarity: minSimilarity,
	}
}

// Suggest returns the fully qualified name of the closest indexed class, or
// false when nothing scores above the threshold. Lookup failures are treated
// as "no suggestion"; the caller is already on its fallback path.
func (s *Suggester) Suggest(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	names, err := s.index.ClassNames()
	if err != nil {
		return "", false
	}

	target := strings.ToLower(simpleName(name))
	best := ""
	bestScore := float64(0)

	for _, fqn := range names {
		candidate := strings.ToLower(simpleName(fqn))
		score, err := edlib.StringsSimilarity(target, candidate, edlib.JaroWinkler)
		if err != nil {
			continue
		}
		if float64(score) > bestScore {
			bestScore = float64(score)
			best = fqn
		}
	}

	if bestScore < s.minSimilarity {
		return "", false
	}
	return best, true
}

func simpleName(name string) string {
	if dot := strings.LastIndex(name, "."); dot >= 0 {
		return name[dot+1:]
	}
	return name
}
