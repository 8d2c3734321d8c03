// Package email defines the request bodies, response bodies and query
// parameter sets for the email endpoints: sending, bulk scheduling,
// delivery reports, logs, address validation and domain management.
// Types carry their field constraints as validate tags and their wire
// names as json tags; the transport layer is out of scope here.
package email

import (
	"github.com/aradsms/golang_sdk/models"
)

// SendRequestBody is the request body for sending email messages. Only
// the destination address is mandatory up front; content rules beyond
// that are enforced by ValidateContent.
type SendRequestBody struct {
	// From is the sender displayed to the recipient, either a plain
	// address or the "Name <address>" form.
	From *string `json:"from,omitempty"`
	To   string  `json:"to" validate:"required,min=1"`
	CC   *string `json:"cc,omitempty"`
	BCC  *string `json:"bcc,omitempty"`
	// Subject is required by the remote API unless a template
	// supplies it.
	Subject *string `json:"subject,omitempty" validate:"omitempty,min=1,max=150"`
	Text    *string `json:"text,omitempty"`
	HTML    *string `json:"html,omitempty"`
	AmpHTML *string `json:"ampHtml,omitempty"`
	// TemplateID selects a stored message template instead of
	// inline subject and body content.
	TemplateID         *int32  `json:"templateId,omitempty"`
	Attachment         *string `json:"attachment,omitempty"`
	InlineImage        *string `json:"inlineImage,omitempty"`
	IntermediateReport *bool   `json:"intermediateReport,omitempty"`
	NotifyURL          *string `json:"notifyUrl,omitempty" validate:"omitempty,url"`
	NotifyContentType  *string `json:"notifyContentType,omitempty"`
	// CallbackData is echoed back verbatim in delivery reports.
	CallbackData *string `json:"callbackData,omitempty" validate:"omitempty,max=4000"`
	Track        *bool   `json:"track,omitempty"`
	TrackClicks  *bool   `json:"trackClicks,omitempty"`
	TrackOpens   *bool   `json:"trackOpens,omitempty"`
	TrackingURL  *string `json:"trackingUrl,omitempty" validate:"omitempty,url"`
	BulkID       *string `json:"bulkId,omitempty"`
	MessageID    *string `json:"messageId,omitempty"`
	ReplyTo      *string `json:"replyTo,omitempty"`
	// DefaultPlaceholders is a JSON object, serialized to a string,
	// substituted into the template for every recipient.
	DefaultPlaceholders *string `json:"defaultPlaceholders,omitempty"`
	PreserveRecipients  *bool   `json:"preserveRecipients,omitempty"`
	// SendAt schedules delivery for a future moment, up to 30 days
	// ahead, as an ISO 8601 timestamp.
	SendAt                  *string `json:"sendAt,omitempty"`
	LandingPagePlaceholders *string `json:"landingPagePlaceholders,omitempty"`
	LandingPageID           *string `json:"landingPageId,omitempty"`
}

// NewSendRequestBody builds a send request carrying only the destination
// address. Remaining fields are optional and set directly.
func NewSendRequestBody(to string) *SendRequestBody {
	return &SendRequestBody{To: to}
}

// Validate checks the field constraints on the request and reports every
// violation through a *models.ValidationError.
func (r *SendRequestBody) Validate() error { return models.Validate(r) }

// ValidateContent enforces the remote content rule on top of Validate:
// a request must either reference a template or carry a sender, a
// subject and at least one of the text or HTML bodies. Validate alone
// accepts the minimal form so requests stay usable while being built.
func (r *SendRequestBody) ValidateContent() error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.TemplateID != nil {
		return nil
	}

	var violations []models.Violation
	if r.From == nil || *r.From == "" {
		violations = append(violations, models.Violation{
			Field:      "SendRequestBody.From",
			Constraint: "required_without",
			Param:      "TemplateID",
			Value:      "",
		})
	}
	if r.Subject == nil || *r.Subject == "" {
		violations = append(violations, models.Violation{
			Field:      "SendRequestBody.Subject",
			Constraint: "required_without",
			Param:      "TemplateID",
			Value:      "",
		})
	}
	if (r.Text == nil || *r.Text == "") && (r.HTML == nil || *r.HTML == "") {
		violations = append(violations, models.Violation{
			Field:      "SendRequestBody.Text",
			Constraint: "required_without_all",
			Param:      "HTML TemplateID",
			Value:      "",
		})
	}
	if len(violations) > 0 {
		return &models.ValidationError{Violations: violations}
	}
	return nil
}

// SentMessageDetails describes one accepted message in a send response.
type SentMessageDetails struct {
	To        *string `json:"to,omitempty"`
	MessageID *string `json:"messageId,omitempty"`
	Status    *Status `json:"status,omitempty"`
}

// SendResponseBody is the response body returned when messages are
// accepted for sending.
type SendResponseBody struct {
	BulkID   *string              `json:"bulkId,omitempty"`
	Messages []SentMessageDetails `json:"messages,omitempty"`
}
