package parser

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/arnavsurve/intrus/internal/compiler/token"
)

// statementKeywords are the words that can start a statement.
var statementKeywords = []string{"let", "return"}

// maxTypoDistance bounds the edit distance of a "did you mean" suggestion.
const maxTypoDistance = 2

// suggestKeyword returns a " (did you mean ...)" hint when an identifier at
// the start of a statement looks like a misspelled statement keyword.
func suggestKeyword(tok token.Token) string {
	if tok.Kind != token.IDENT {
		return ""
	}
	word := tok.Text
	if len([]rune(word)) < 2 {
		return ""
	}

	// Abbreviations: "ret" -> "return".
	if ranks := fuzzy.RankFindNormalizedFold(word, statementKeywords); len(ranks) > 0 {
		sort.Sort(ranks)
		return ` (did you mean "` + ranks[0].Target + `"?)`
	}

	// Typos: "retrun" -> "return".
	best, bestDist := "", maxTypoDistance+1
	for _, kw := range statementKeywords {
		if d := fuzzy.LevenshteinDistance(word, kw); d < bestDist {
			best, bestDist = kw, d
		}
	}
	if best == "" {
		return ""
	}
	return ` (did you mean "` + best + `"?)`
}
