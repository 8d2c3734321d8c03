package sms

import (
	"github.com/aradsms/golang_sdk/models"
)

// ScheduledStatus is the lifecycle state of a scheduled bulk of
// messages.
type ScheduledStatus string

const (
	ScheduledStatusPending    ScheduledStatus = "PENDING"
	ScheduledStatusPaused     ScheduledStatus = "PAUSED"
	ScheduledStatusProcessing ScheduledStatus = "PROCESSING"
	ScheduledStatusCanceled   ScheduledStatus = "CANCELED"
	ScheduledStatusFinished   ScheduledStatus = "FINISHED"
	ScheduledStatusFailed     ScheduledStatus = "FAILED"
)

var scheduledStatusTokens = []string{
	string(ScheduledStatusPending),
	string(ScheduledStatusPaused),
	string(ScheduledStatusProcessing),
	string(ScheduledStatusCanceled),
	string(ScheduledStatusFinished),
	string(ScheduledStatusFailed),
}

// UnmarshalJSON rejects tokens outside the known status set.
func (s *ScheduledStatus) UnmarshalJSON(data []byte) error {
	tok, err := models.DecodeToken(data, "status", scheduledStatusTokens)
	if err != nil {
		return err
	}
	*s = ScheduledStatus(tok)
	return nil
}

// GetScheduledQueryParameters selects the scheduled bulk to inspect.
type GetScheduledQueryParameters struct {
	BulkID string `url:"bulkId" validate:"required,min=1"`
}

// NewGetScheduledQueryParameters builds the query for one bulk ID.
func NewGetScheduledQueryParameters(bulkID string) *GetScheduledQueryParameters {
	return &GetScheduledQueryParameters{BulkID: bulkID}
}

// Validate checks the field constraints on the query parameters.
func (q *GetScheduledQueryParameters) Validate() error { return models.Validate(q) }

// The reschedule and scheduled status endpoints take the same single
// bulkId query parameter.
type (
	RescheduleQueryParameters            = GetScheduledQueryParameters
	GetScheduledStatusQueryParameters    = GetScheduledQueryParameters
	UpdateScheduledStatusQueryParameters = GetScheduledQueryParameters
)

// GetScheduledResponseBody is the scheduled send time of a bulk, as an
// ISO 8601 timestamp.
type GetScheduledResponseBody struct {
	BulkID *string `json:"bulkId,omitempty"`
	SendAt *string `json:"sendAt,omitempty"`
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
type RescheduleResponseBody = GetScheduledResponseBody

// GetScheduledStatusResponseBody is the lifecycle state of a scheduled
// bulk.
type GetScheduledStatusResponseBody struct {
	BulkID *string          `json:"bulkId,omitempty"`
	Status *ScheduledStatus `json:"status,omitempty"`
}

// UpdateScheduledStatusRequestBody moves a scheduled bulk into a new
// lifecycle state, typically PAUSED or CANCELED.
type UpdateScheduledStatusRequestBody struct {
	Status ScheduledStatus `json:"status" validate:"required"`
}

// NewUpdateScheduledStatusRequestBody builds a status change request.
func NewUpdateScheduledStatusRequestBody(status ScheduledStatus) *UpdateScheduledStatusRequestBody {
	return &UpdateScheduledStatusRequestBody{Status: status}
}

// Validate checks the field constraints on the request.
func (r *UpdateScheduledStatusRequestBody) Validate() error { return models.Validate(r) }

// UpdateScheduledStatusResponseBody echoes the bulk with its new state.
type UpdateScheduledStatusResponseBody = GetScheduledStatusResponseBody
