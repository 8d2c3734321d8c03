package email

import (
	"github.com/aradsms/golang_sdk/models"
)

// BulkStatus is the lifecycle state of a scheduled bulk of messages.
type BulkStatus string

const (
	BulkStatusPending    BulkStatus = "PENDING"
	BulkStatusPaused     BulkStatus = "PAUSED"
	BulkStatusProcessing BulkStatus = "PROCESSING"
	BulkStatusCanceled   BulkStatus = "CANCELED"
	BulkStatusFinished   BulkStatus = "FINISHED"
	BulkStatusFailed     BulkStatus = "FAILED"
)

var bulkStatusTokens = []string{
	string(BulkStatusPending),
	string(BulkStatusPaused),
	string(BulkStatusProcessing),
	string(BulkStatusCanceled),
	string(BulkStatusFinished),
	string(BulkStatusFailed),
}

// UnmarshalJSON rejects tokens outside the known status set instead of
// letting them leak into caller code.
func (s *BulkStatus) UnmarshalJSON(data []byte) error {
	tok, err := models.DecodeToken(data, "status", bulkStatusTokens)
	if err != nil {
		return err
	}
	*s = BulkStatus(tok)
	return nil
}

// GetBulksQueryParameters selects the scheduled bulk to inspect.
type GetBulksQueryParameters struct {
	BulkID string `url:"bulkId" validate:"required,min=1"`
}

// NewGetBulksQueryParameters builds the query for one bulk ID.
func NewGetBulksQueryParameters(bulkID string) *GetBulksQueryParameters {
	return &GetBulksQueryParameters{BulkID: bulkID}
}

// Validate checks the field constraints on the query parameters.
func (q *GetBulksQueryParameters) Validate() error { return models.Validate(q) }

// The reschedule and scheduled status endpoints take the same single
// bulkId query parameter.
type (
	RescheduleQueryParameters            = GetBulksQueryParameters
	GetScheduledStatusQueryParameters    = GetBulksQueryParameters
	UpdateScheduledStatusQueryParameters = GetBulksQueryParameters
)

// BulkInfo pairs a bulk with its scheduled send time in epoch
// milliseconds.
type BulkInfo struct {
	BulkID *string `json:"bulkId,omitempty"`
	SendAt *int64  `json:"sendAt,omitempty"`
}

// GetBulksResponseBody lists the bulks scheduled under one external
// bulk ID.
type GetBulksResponseBody struct {
	ExternalBulkID *string    `json:"externalBulkId,omitempty"`
	Bulks          []BulkInfo `json:"bulks,omitempty"`
}

// RescheduleRequestBody moves a scheduled bulk to a new send time, given
// as an ISO 8601 timestamp.
type RescheduleRequestBody struct {
	SendAt string `json:"sendAt" validate:"required,min=1"`
}

// NewRescheduleRequestBody builds a reschedule request for the given
// send time.
func NewRescheduleRequestBody(sendAt string) *RescheduleRequestBody {
	return &RescheduleRequestBody{SendAt: sendAt}
}

// Validate checks the field constraints on the request.
func (r *RescheduleRequestBody) Validate() error { return models.Validate(r) }

// RescheduleResponseBody echoes the bulk with its updated send time.
type RescheduleResponseBody = BulkInfo

// BulkStatusInfo pairs a bulk with its current lifecycle state.
type BulkStatusInfo struct {
	BulkID *string     `json:"bulkId,omitempty"`
	Status *BulkStatus `json:"status,omitempty"`
}

// GetScheduledStatusResponseBody lists the lifecycle state of every bulk
// scheduled under one external bulk ID.
type GetScheduledStatusResponseBody struct {
	ExternalBulkID *string          `json:"externalBulkId,omitempty"`
	Bulks          []BulkStatusInfo `json:"bulks,omitempty"`
}

// UpdateScheduledStatusRequestBody moves a scheduled bulk into a new
// lifecycle state, typically PAUSED or CANCELED.
type UpdateScheduledStatusRequestBody struct {
	Status BulkStatus `json:"status" validate:"required"`
}

// NewUpdateScheduledStatusRequestBody builds a status change request.
func NewUpdateScheduledStatusRequestBody(status BulkStatus) *UpdateScheduledStatusRequestBody {
	return &UpdateScheduledStatusRequestBody{Status: status}
}

// Validate checks the field constraints on the request.
func (r *UpdateScheduledStatusRequestBody) Validate() error { return models.Validate(r) }

// UpdateScheduledStatusResponseBody echoes the bulk with its new state.
type UpdateScheduledStatusResponseBody = BulkStatusInfo
