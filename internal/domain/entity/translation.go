// Package entity contains the core business objects of the project.
package entity

// TranslationResult is the outcome of one machine-translation call. The
// confidence score is transient: it is recomputed on every call and never
// persisted. The chat surface uses it to decide whether to offer a
// "low confidence, retry?" affordance.
type TranslationResult struct {
	OriginalText   string  `json:"original_text"`
	TranslatedText string  `json:"translated_text"`
	FromLang       string  `json:"from_lang"`
	ToLang         string  `json:"to_lang"`
	Confidence     float64 `json:"confidence"` // Always within [0.3, 0.95].
}
