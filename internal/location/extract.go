package location

import (
	"strings"
	"unicode"
)

// sentenceWords are capitalised words that start requests rather than name places
var sentenceWords = map[string]bool{
	"i": true, "i'm": true, "im": true, "i'll": true, "i've": true, "i'd": true,
	"what": true, "what's": true, "whats": true, "where": true, "when": true, "how": true,
	"which": true, "who": true, "why": true, "is": true, "are": true, "can": true,
	"could": true, "would": true, "will": true, "should": true, "do": true, "does": true,
	"take": true, "show": true, "tell": true, "give": true, "find": true, "plan": true,
	"let's": true, "lets": true, "let": true, "please": true, "hi": true, "hello": true,
	"hey": true, "the": true, "a": true, "an": true, "my": true, "we": true, "we're": true,
	"going": true, "visiting": true, "visit": true, "trip": true, "weather": true,
	"and": true, "or": true, "in": true, "to": true, "at": true, "for": true, "me": true,
	"then": true, "also": true, "next": true,
}

// connectors may sit inside a multi-word place name, as in "Rio de Janeiro"
var connectors = map[string]bool{
	"de": true, "da": true, "do": true, "dos": true, "das": true, "del": true, "la": true,
	"le": true, "of": true, "upon": true, "on": true, "am": true, "von": true, "van": true,
	"der": true, "al": true, "el": true, "sur": true, "y": true,
}

// ExtractPlaceName returns the longest run of capitalised words that is not a
// sentence starter, e.g. "New York" from "I'm visiting New York, what ...".
// It returns "" when there is no such run or when two different runs tie for
// longest, in which case the caller should use the whole query.
func ExtractPlaceName(query string) string {
	var (
		spans   [][]string
		current []string
		pending []string
	)
	flush := func() {
		if len(current) > 0 {
			spans = append(spans, current)
		}
		current, pending = nil, nil
	}

	for _, raw := range strings.Fields(query) {
		word := strings.TrimFunc(raw, func(r rune) bool {
			return unicode.IsPunct(r) && r != '\'' && r != '-'
		})
		word = strings.TrimSuffix(strings.TrimSuffix(word, "'s"), "’s")
		switch {
		case isPlaceWord(word):
			current = append(current, pending...)
			current = append(current, word)
			pending = nil
		case len(current) > 0 && connectors[strings.ToLower(word)]:
			pending = append(pending, word)
		default:
			flush()
		}
		// Sentence punctuation ends a span even between capitalised words
		if strings.ContainsAny(raw, ",.!?;:") {
			flush()
		}
	}
	flush()

	var best []string
	tie := false
	for _, s := range spans {
		switch {
		case len(s) > len(best):
			best, tie = s, false
		case len(s) == len(best) && !strings.EqualFold(strings.Join(s, " "), strings.Join(best, " ")):
			tie = true
		}
	}
	if best == nil || tie {
		return ""
	}
	return strings.Join(best, " ")
}

func isPlaceWord(word string) bool {
	if word == "" || sentenceWords[strings.ToLower(word)] {
		return false
	}
	first := []rune(word)[0]
	return unicode.IsUpper(first) || (unicode.IsLetter(first) && !unicode.IsLower(first) && !unicode.IsUpper(first))
}
