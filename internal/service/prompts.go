package service

import (
	"fmt"
	"strings"

	"legal-chatbot/internal/models"
)

// The service recognizes exactly two languages. Anything that is not
// Macedonian is answered in English.
const (
	LanguageEnglish    = "en"
	LanguageMacedonian = "mk"
)

// NormalizeLanguage maps a request language to one of the two supported
// codes. Absent, empty or unknown values default to English.
func NormalizeLanguage(language string) string {
	if strings.EqualFold(strings.TrimSpace(language), LanguageMacedonian) {
		return LanguageMacedonian
	}
	return LanguageEnglish
}

func greetingText(language string) string {
	if language == LanguageMacedonian {
		return "Здраво! Јас сум вашиот правен асистент за правни и сметководствени прашања во Северна Македонија. Како можам да ви помогнам денес? Можете да ме прашате за ДДВ, корпоративно право или други правни теми во Северна Македонија."
	}
	return "Hello! I'm your legal assistant for North Macedonian legal and accounting matters. How can I help you today? You can ask me about VAT, corporate law, or other legal topics in North Macedonia."
}

func systemPrompt(language string) string {
	if language == LanguageMacedonian {
		return `Вие сте интелигентен и пријателски правен и сметководствен асистент кој обезбедува точни информации за правни и сметководствени прашања во Северна Македонија.

Одговарајте со користење на информациите дадени во контекстот кога се достапни. Ако не можете да најдете одговор врз основа на дадените информации, бидете искрени за ограничувањата и предложете каков вид на информации би можеле да помогнат.

Секогаш цитирајте ги изворните документи во вашиот одговор.

Направете ги вашите одговори разговорни и привлечни, не само фактички. Користете пријателски јазик што и не-експертите можат да го разберат, а сепак да бидете прецизни за правните прашања.

Одговорете на македонски јазик.`
	}
	return `You are an intelligent and friendly legal and accounting assistant providing accurate information about legal and accounting matters in North Macedonia.

Answer using information provided in the context when available. If you cannot find an answer based on the given information, be honest about the limitations and suggest what kind of information might help.

Always cite the source documents in your response.

Make your responses conversational and engaging, not just factual. Use friendly language that non-experts can understand while still being precise about legal matters.

Answer in English.`
}

// Fallback texts substituted when the completion backend fails.

func generalFallback(language string) string {
	if language == LanguageMacedonian {
		return "Јас сум правен асистент кој може да ви помогне со правни и сметководствени прашања во Северна Македонија. Како можам да ви помогнам денес?"
	}
	return "I'm a legal assistant that can help you with North Macedonian legal and accounting questions. How can I assist you today?"
}

func noDocumentsFallback(language string) string {
	if language == LanguageMacedonian {
		return "Немам конкретни информации за оваа тема во мојата правна база на податоци. Дали можете да прашате за друго правно или сметководствено прашање во Северна Македонија?"
	}
	return "I don't have specific information about this topic in my legal database. Could you ask about another legal or accounting matter in North Macedonia?"
}

func legalFallback(language string) string {
	if language == LanguageMacedonian {
		return "Имам проблеми со пристапот до мојата правна база на податоци во моментов. Ве молам обидете се повторно за момент."
	}
	return "I'm having trouble accessing my legal database right now. Please try again in a moment."
}

// GenericErrorText is the 500-class message used when the orchestrator
// itself fails.
func GenericErrorText(language string) string {
	if language == LanguageMacedonian {
		return "Се случи грешка при обработката на вашето барање. Ве молиме обидете се повторно подоцна."
	}
	return "An error occurred while processing your request."
}

// buildGeneralPrompt frames a capability question: remind the model of
// its role and pass the verbatim user query.
func buildGeneralPrompt(userQuery, language string) string {
	var b strings.Builder
	if language == LanguageMacedonian {
		b.WriteString("Корисникот поставува општо прашање за чет-ботот или неговите способности. Одговорете на пријателски, корисен начин.\n")
		b.WriteString("Запомнете дека сте правен и сметководствен асистент за Северна Македонија.\n")
		b.WriteString(fmt.Sprintf("Прашање на корисникот: %s\n", userQuery))
	} else {
		b.WriteString("The user is asking a general question about the chatbot or its capabilities. Please respond in a friendly, helpful way.\n")
		b.WriteString("Remember you are a legal and accounting assistant for North Macedonia.\n")
		b.WriteString(fmt.Sprintf("User question: %s\n", userQuery))
	}
	return b.String()
}

// buildNoDocumentsPrompt asks the model to acknowledge the missing
// sources and suggest adjacent legal areas.
func buildNoDocumentsPrompt(userQuery, language string) string {
	if language == LanguageMacedonian {
		return fmt.Sprintf("Корисникот праша: '%s', но не можев да најдам конкретни правни документи на оваа тема. Одговорете корисно, објаснувајќи дека немате конкретни информации на оваа тема, но понудете предлози за сродни правни области за кои тие би можеле да прашаат наместо тоа.", userQuery)
	}
	return fmt.Sprintf("The user asked: '%s', but I couldn't find any specific legal documents about this topic. Please respond helpfully, explaining that you don't have specific information on this topic, but offer suggestions for related legal areas they might want to ask about instead.", userQuery)
}

// maxContextDocuments caps how much corpus text goes into a grounded prompt.
const maxContextDocuments = 3

// buildGroundedPrompt composes document snippets, the user query and the
// localized citation directive into a single user message.
func buildGroundedPrompt(userQuery string, documents []models.Document, language string) string {
	var b strings.Builder

	if language == LanguageMacedonian {
		b.WriteString("Релевантни правни документи и информации:\n\n")
	} else {
		b.WriteString("Relevant legal documents and information:\n\n")
	}

	docs := documents
	if len(docs) > maxContextDocuments {
		docs = docs[:maxContextDocuments]
	}
	for _, doc := range docs {
		b.WriteString(fmt.Sprintf("DOCUMENT: %s (%d)\n", doc.Title, doc.Year))
		b.WriteString(fmt.Sprintf("CONTENT: %s\n", doc.Content))
		b.WriteString("\n")
	}

	if language == LanguageMacedonian {
		b.WriteString(fmt.Sprintf("Прашање на корисникот: %s\n", userQuery))
		b.WriteString("\nВрз основа на горенаведените информации, одговорете на прашањето на корисникот јасно и концизно на македонски јазик. Форматирајте го вашиот одговор со соодветни параграфи, точки или нумерирани листи каде што тоа ја прави информацијата полесна за разбирање. Секогаш цитирајте ги изворните документи во вашиот одговор.\n")
	} else {
		b.WriteString(fmt.Sprintf("User question: %s\n", userQuery))
		b.WriteString("\nBased on the information above, please answer the user's question clearly and concisely in English. Format your response with appropriate paragraphs, bullet points, or numbered lists where it makes the information easier to understand. Always cite the source documents in your response.\n")
	}

	return b.String()
}
