// Package search ranks corpus documents against a free-text query using
// lexical scoring: weighted key-term hits plus a recency bonus. No
// embeddings are involved.
package search

import (
	"regexp"
	"sort"
	"strings"

	"legal-chatbot/internal/models"
)

// Key terms are maximal word-character runs of at least three runes.
// Unicode letters are included so Macedonian queries tokenize the same
// way as English ones.
var keyTermPattern = regexp.MustCompile(`[\p{L}\p{N}_]{3,}`)

const (
	titleWeight  = 3.0
	recencyEpoch = 2000
)

// KeyTerms extracts the lowercased key terms from a query. Words shorter
// than three runes are dropped; non-alphanumeric characters separate words.
func KeyTerms(query string) []string {
	return keyTermPattern.FindAllString(strings.ToLower(query), -1)
}

// Occurrences counts non-overlapping matches of needle in haystack.
// After each match the scan advances by the needle length, so
// Occurrences("aaaa", "aa") == 2.
func Occurrences(haystack, needle string) int {
	if needle == "" {
		return 0
	}
	count := 0
	for {
		i := strings.Index(haystack, needle)
		if i < 0 {
			return count
		}
		count++
		haystack = haystack[i+len(needle):]
	}
}

// Score is the lexical relevance of a single document: term hits in the
// title weigh 3 each, every content occurrence weighs 1, and newer
// documents get max(0, (year-2000)/5) on top.
func Score(doc models.Document, terms []string) float64 {
	title := strings.ToLower(doc.Title)
	content := strings.ToLower(doc.Content)

	var termScore float64
	for _, term := range terms {
		if strings.Contains(title, term) {
			termScore += titleWeight
		}
		termScore += float64(Occurrences(content, term))
	}

	recency := float64(doc.Year-recencyEpoch) / 5.0
	if recency < 0 {
		recency = 0
	}
	return termScore + recency
}

// Rank orders documents by relevance to the query. Documents that contain
// at least one key term as a substring of their title or content are kept
// and sorted by descending score; ties preserve the input order. A query
// with no key terms returns the full input sorted by year descending.
func Rank(docs []models.Document, query string) []models.Document {
	terms := KeyTerms(query)
	if len(terms) == 0 {
		return byYearDescending(docs)
	}

	type scored struct {
		doc   models.Document
		score float64
	}
	var candidates []scored
	for _, doc := range docs {
		title := strings.ToLower(doc.Title)
		content := strings.ToLower(doc.Content)
		for _, term := range terms {
			if strings.Contains(title, term) || strings.Contains(content, term) {
				candidates = append(candidates, scored{doc: doc, score: Score(doc, terms)})
				break
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	results := make([]models.Document, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, c.doc)
	}
	return results
}

func byYearDescending(docs []models.Document) []models.Document {
	results := make([]models.Document, len(docs))
	copy(results, docs)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Year > results[j].Year
	})
	return results
}
