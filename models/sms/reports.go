package sms

import (
	"github.com/aradsms/golang_sdk/models"
)

// GetDeliveryReportsQueryParameters filters delivery reports by bulk,
// message or count. Each report is returned only once.
type GetDeliveryReportsQueryParameters struct {
	BulkID    *string `url:"bulkId,omitempty"`
	MessageID *string `url:"messageId,omitempty"`
	Limit     *int32  `url:"limit,omitempty" validate:"omitempty,min=1,max=1000"`
}

// NewGetDeliveryReportsQueryParameters builds an empty filter matching
// all unread reports.
func NewGetDeliveryReportsQueryParameters() *GetDeliveryReportsQueryParameters {
	return &GetDeliveryReportsQueryParameters{}
}

// Validate checks the field constraints on the query parameters.
func (q *GetDeliveryReportsQueryParameters) Validate() error { return models.Validate(q) }

// Report is the delivery report for a single message.
type Report struct {
	BulkID       *string `json:"bulkId,omitempty"`
	MessageID    *string `json:"messageId,omitempty"`
	To           *string `json:"to,omitempty"`
	From         *string `json:"from,omitempty"`
	SentAt       *string `json:"sentAt,omitempty"`
	DoneAt       *string `json:"doneAt,omitempty"`
	SmsCount     *int32  `json:"smsCount,omitempty"`
	MccMnc       *string `json:"mccMnc,omitempty"`
	CallbackData *string `json:"callbackData,omitempty"`
	Price        *Price  `json:"price,omitempty"`
	Status       *Status `json:"status,omitempty"`
	Error        *Error  `json:"error,omitempty"`
}

// GetDeliveryReportsResponseBody carries the reports matching a filter.
type GetDeliveryReportsResponseBody struct {
	Results []Report `json:"results,omitempty"`
}
