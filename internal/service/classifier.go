package service

import "strings"

// QueryType routes a query to one of three response modes.
type QueryType int

const (
	QueryGreeting QueryType = iota
	QueryGeneralQuestion
	QueryLegalQuestion
)

func (t QueryType) String() string {
	switch t {
	case QueryGreeting:
		return "greeting"
	case QueryGeneralQuestion:
		return "general_question"
	default:
		return "legal_question"
	}
}

var greetingLexicon = []string{
	"hi", "hello", "hey", "здраво", "добар ден", "здрава", "поздрав",
}

var generalIntentLexicon = []string{
	"what can you do", "who are you", "how does this work",
	"што можеш да правиш", "кој си ти", "како работи ова",
}

// ClassifyQuery decides the response mode for a raw user query. Checks
// are plain substring matches on the lowercased, trimmed text; a greeting
// additionally requires the original query to be at most three words.
func ClassifyQuery(query string) QueryType {
	q := strings.ToLower(strings.TrimSpace(query))

	for _, greeting := range greetingLexicon {
		if strings.Contains(q, greeting) && len(strings.Fields(query)) <= 3 {
			return QueryGreeting
		}
	}

	for _, phrase := range generalIntentLexicon {
		if strings.Contains(q, phrase) {
			return QueryGeneralQuestion
		}
	}

	return QueryLegalQuestion
}
