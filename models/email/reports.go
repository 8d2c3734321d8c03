package email

import (
	"github.com/aradsms/golang_sdk/models"
)

// GetDeliveryReportsQueryParameters filters delivery reports by bulk,
// message or count. Each report is returned only once.
type GetDeliveryReportsQueryParameters struct {
	BulkID    *string `url:"bulkId,omitempty"`
	MessageID *string `url:"messageId,omitempty"`
	Limit     *int32  `url:"limit,omitempty"`
}

// NewGetDeliveryReportsQueryParameters builds an empty filter matching
// all unread reports.
func NewGetDeliveryReportsQueryParameters() *GetDeliveryReportsQueryParameters {
	return &GetDeliveryReportsQueryParameters{}
}

// Validate checks the field constraints on the query parameters.
func (q *GetDeliveryReportsQueryParameters) Validate() error { return models.Validate(q) }

// Price is the cost charged for one message.
type Price struct {
	PricePerMessage *float32 `json:"pricePerMessage,omitempty"`
	Currency        *string  `json:"currency,omitempty"`
}

// Report is the delivery report for a single message.
type Report struct {
	BulkID       *string      `json:"bulkId,omitempty"`
	MessageID    *string      `json:"messageId,omitempty"`
	To           *string      `json:"to,omitempty"`
	SentAt       *string      `json:"sentAt,omitempty"`
	DoneAt       *string      `json:"doneAt,omitempty"`
	MessageCount *int32       `json:"messageCount,omitempty"`
	Price        *Price       `json:"price,omitempty"`
	Status       *Status      `json:"status,omitempty"`
	Error        *ReportError `json:"error,omitempty"`
}

// GetDeliveryReportsResponseBody carries the reports matching a filter.
type GetDeliveryReportsResponseBody struct {
	Results []Report `json:"results,omitempty"`
}
