package suggest

import (
	"strings"

	"github.com/kyleking/schema-wizard/internal/schema"
)

// Match describes the winning catalog entry for a description.
type Match struct {
	Pattern    Pattern
	MatchCount int
	Score      int
}

// Engine scores problem descriptions against the pattern catalog.
type Engine struct {
	patterns []Pattern
}

// NewEngine creates an engine backed by the built-in catalog.
func NewEngine() *Engine {
	return &Engine{patterns: catalog}
}

// Suggest returns the schema pair for the best-matching catalog pattern,
// or the default pair when the description is empty or matches nothing.
// Pure function of its input: safe for concurrent callers.
func (e *Engine) Suggest(description string) schema.Set {
	match, ok := e.Best(description)
	if !ok {
		return DefaultSet()
	}

	return match.Pattern.Generate()
}

// Best finds the highest-scoring catalog entry for a description. Each
// keyword counts once regardless of how often it occurs; a pattern's score
// is priority times the number of its keywords found. Ties keep the entry
// declared earlier in the catalog. Returns false when the trimmed
// description is empty (no scan) or no keyword matches.
func (e *Engine) Best(description string) (Match, bool) {
	if strings.TrimSpace(description) == "" {
		return Match{}, false
	}

	lowered := strings.ToLower(description)

	var (
		winner Match
		found  bool
	)

	for _, p := range e.patterns {
		matched := 0

		for _, keyword := range p.Keywords {
			if strings.Contains(lowered, keyword) {
				matched++
			}
		}

		if matched == 0 {
			continue
		}

		score := p.Priority * matched
		if !found || score > winner.Score {
			winner = Match{Pattern: p, MatchCount: matched, Score: score}
			found = true
		}
	}

	return winner, found
}
