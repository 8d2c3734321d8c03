package sms

import (
	"github.com/aradsms/golang_sdk/models"
)

// GetInboundReportsQueryParameters caps how many unread inbound messages
// are fetched at once.
type GetInboundReportsQueryParameters struct {
	Limit *int32 `url:"limit,omitempty" validate:"omitempty,min=1,max=1000"`
}

// NewGetInboundReportsQueryParameters builds an empty filter matching
// all unread inbound messages.
func NewGetInboundReportsQueryParameters() *GetInboundReportsQueryParameters {
	return &GetInboundReportsQueryParameters{}
}

// Validate checks the field constraints on the query parameters.
func (q *GetInboundReportsQueryParameters) Validate() error { return models.Validate(q) }

// InboundMessage is one message received on a dedicated number.
// CleanText is the text with the keyword stripped.
type InboundMessage struct {
	CallbackData *string `json:"callbackData,omitempty"`
	CleanText    *string `json:"cleanText,omitempty"`
	From         *string `json:"from,omitempty"`
	Keyword      *string `json:"keyword,omitempty"`
	MessageID    *string `json:"messageId,omitempty"`
	Price        *Price  `json:"price,omitempty"`
	ReceivedAt   *string `json:"receivedAt,omitempty"`
	SmsCount     *int32  `json:"smsCount,omitempty"`
	Text         *string `json:"text,omitempty"`
	To           *string `json:"to,omitempty"`
}

// GetInboundReportsResponseBody carries the unread inbound messages
// together with the count still pending on the server.
type GetInboundReportsResponseBody struct {
	MessageCount        *int32           `json:"messageCount,omitempty"`
	PendingMessageCount *int32           `json:"pendingMessageCount,omitempty"`
	Results             []InboundMessage `json:"results,omitempty"`
}
