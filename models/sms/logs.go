package sms

import (
	"github.com/aradsms/golang_sdk/models"
)

// GetLogsQueryParameters filters message logs. Logs cover the previous
// 48 hours; bulk and message IDs may be repeated to match several
// sendings at once.
type GetLogsQueryParameters struct {
	From          *string  `url:"from,omitempty"`
	To            *string  `url:"to,omitempty"`
	BulkID        []string `url:"bulkId,omitempty"`
	MessageID     []string `url:"messageId,omitempty"`
	GeneralStatus *string  `url:"generalStatus,omitempty"`
	SentSince     *string  `url:"sentSince,omitempty"`
	SentUntil     *string  `url:"sentUntil,omitempty"`
	Limit         *int32   `url:"limit,omitempty" validate:"omitempty,min=1,max=1000"`
	Mcc           *string  `url:"mcc,omitempty"`
	Mnc           *string  `url:"mnc,omitempty"`
}

// NewGetLogsQueryParameters builds an empty filter matching recent logs.
func NewGetLogsQueryParameters() *GetLogsQueryParameters {
	return &GetLogsQueryParameters{}
}

// Validate checks the field constraints on the query parameters.
func (q *GetLogsQueryParameters) Validate() error { return models.Validate(q) }

// Log is one entry from the message log.
type Log struct {
	BulkID    *string `json:"bulkId,omitempty"`
	MessageID *string `json:"messageId,omitempty"`
	To        *string `json:"to,omitempty"`
	From      *string `json:"from,omitempty"`
	Text      *string `json:"text,omitempty"`
	SentAt    *string `json:"sentAt,omitempty"`
	DoneAt    *string `json:"doneAt,omitempty"`
	SmsCount  *int32  `json:"smsCount,omitempty"`
	MccMnc    *string `json:"mccMnc,omitempty"`
	Price     *Price  `json:"price,omitempty"`
	Status    *Status `json:"status,omitempty"`
	Error     *Error  `json:"error,omitempty"`
}

// GetLogsResponseBody carries the log entries matching a filter.
type GetLogsResponseBody struct {
	Results []Log `json:"results,omitempty"`
}
