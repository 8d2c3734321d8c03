package sms

import (
	"github.com/aradsms/golang_sdk/models"
)

// PreviewRequestBody asks how a text would be segmented and encoded
// before actually sending it.
type PreviewRequestBody struct {
	LanguageCode    *string `json:"languageCode,omitempty" validate:"omitempty,oneof=TR ES PT AUTODETECT"`
	Text            string  `json:"text" validate:"required,min=1"`
	Transliteration *string `json:"transliteration,omitempty" validate:"omitempty,oneof=TURKISH GREEK CYRILLIC SERBIAN_CYRILLIC CENTRAL_EUROPEAN BALTIC NON_UNICODE"`
}

// NewPreviewRequestBody builds a preview request for the given text.
func NewPreviewRequestBody(text string) *PreviewRequestBody {
	return &PreviewRequestBody{Text: text}
}

// Validate checks the field constraints on the request.
func (r *PreviewRequestBody) Validate() error { return models.Validate(r) }

// Configuration echoes the language settings a preview was computed
// with.
type Configuration struct {
	Language        *Language `json:"language,omitempty"`
	Transliteration *string   `json:"transliteration,omitempty"`
}

// Preview is one possible rendering of the submitted text.
type Preview struct {
	TextPreview         *string        `json:"textPreview,omitempty"`
	MessageCount        *int32         `json:"messageCount,omitempty"`
	CharactersRemaining *int32         `json:"charactersRemaining,omitempty"`
	Configuration       *Configuration `json:"configuration,omitempty"`
}

// PreviewResponseBody lists the previews computed for the submitted
// text.
type PreviewResponseBody struct {
	OriginalText *string   `json:"originalText,omitempty"`
	Previews     []Preview `json:"previews,omitempty"`
}
