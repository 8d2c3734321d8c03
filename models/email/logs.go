package email

import (
	"github.com/aradsms/golang_sdk/models"
)

// GetLogsQueryParameters filters message logs. Logs cover the previous
// 48 hours and are available through this filter for two days after
// sending.
type GetLogsQueryParameters struct {
	MessageID     *string `url:"messageId,omitempty"`
	From          *string `url:"from,omitempty"`
	To            *string `url:"to,omitempty"`
	BulkID        *string `url:"bulkId,omitempty"`
	GeneralStatus *string `url:"generalStatus,omitempty"`
	SentSince     *string `url:"sentSince,omitempty"`
	SentUntil     *string `url:"sentUntil,omitempty"`
	Limit         *int32  `url:"limit,omitempty"`
}

// NewGetLogsQueryParameters builds an empty filter matching recent logs.
func NewGetLogsQueryParameters() *GetLogsQueryParameters {
	return &GetLogsQueryParameters{}
}

// Validate checks the field constraints on the query parameters.
func (q *GetLogsQueryParameters) Validate() error { return models.Validate(q) }

// Log is one entry from the message log.
type Log struct {
	BulkID       *string `json:"bulkId,omitempty"`
	MessageID    *string `json:"messageId,omitempty"`
	To           *string `json:"to,omitempty"`
	From         *string `json:"from,omitempty"`
	Text         *string `json:"text,omitempty"`
	SentAt       *string `json:"sentAt,omitempty"`
	DoneAt       *string `json:"doneAt,omitempty"`
	MessageCount *int32  `json:"messageCount,omitempty"`
	Price        *Price  `json:"price,omitempty"`
	Status       *Status `json:"status,omitempty"`
}

// GetLogsResponseBody carries the log entries matching a filter.
type GetLogsResponseBody struct {
	Results []Log `json:"results,omitempty"`
}
