package service

import "testing"

func TestClassifyQuery(t *testing.T) {
	tests := []struct {
		query string
		want  QueryType
	}{
		{"hello", QueryGreeting},
		{"Hi there!", QueryGreeting},
		{"Здраво", QueryGreeting},
		{"добар ден", QueryGreeting},
		// A greeting token buried in a long sentence is not a greeting.
		{"hello can you explain the vat rate to me", QueryLegalQuestion},
		{"what can you do", QueryGeneralQuestion},
		{"Who are you exactly?", QueryGeneralQuestion},
		{"Што можеш да правиш?", QueryGeneralQuestion},
		{"What is the VAT rate?", QueryLegalQuestion},
		{"Како се основа друштво со ограничена одговорност?", QueryLegalQuestion},
		// "hi" matches inside "shipping" but the query has too many words.
		{"tell me about maritime shipping law", QueryLegalQuestion},
		// A three-word query with a buried greeting token is a greeting.
		{"admiralty maritime shipping", QueryGreeting},
		{"admiralty maritime vessel chartering", QueryLegalQuestion},
	}

	for _, tt := range tests {
		if got := ClassifyQuery(tt.query); got != tt.want {
			t.Errorf("ClassifyQuery(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}
