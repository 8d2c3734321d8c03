package email

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aradsms/golang_sdk/models"
)

func TestGetBulksQueryParametersRequireBulkID(t *testing.T) {
	params := NewGetBulksQueryParameters("")

	err := params.Validate()
	require.Error(t, err)
	set := violationSet(t, err)
	assert.Equal(t, "required", set["GetBulksQueryParameters.BulkID"].Constraint)
}

func TestGetBulksQueryParametersFlatten(t *testing.T) {
	bulkID := uuid.New().String()
	params := NewGetBulksQueryParameters(bulkID)
	require.NoError(t, params.Validate())

	vals, err := models.QueryValues(params)
	require.NoError(t, err)
	assert.Equal(t, bulkID, vals.Get("bulkId"))
	assert.Len(t, vals, 1)
}

func TestRescheduleQueryParametersShareBulkIDShape(t *testing.T) {
	bulkID := uuid.New().String()

	var params *RescheduleQueryParameters = NewGetBulksQueryParameters(bulkID)
	assert.NoError(t, params.Validate())

	var statusParams *GetScheduledStatusQueryParameters = params
	assert.Equal(t, bulkID, statusParams.BulkID)
}

func TestGetBulksResponseBodyDecodesEpochMillis(t *testing.T) {
	payload := `{
		"externalBulkId": "external-bulk-4",
		"bulks": [
			{"bulkId": "bulk-4-1", "sendAt": 1728315600000}
		]
	}`

	var body GetBulksResponseBody
	require.NoError(t, models.Unmarshal([]byte(payload), &body))
	require.NotNil(t, body.ExternalBulkID)
	assert.Equal(t, "external-bulk-4", *body.ExternalBulkID)
	require.Len(t, body.Bulks, 1)
	require.NotNil(t, body.Bulks[0].SendAt)
	assert.Equal(t, int64(1728315600000), *body.Bulks[0].SendAt)
}

func TestRescheduleRequestBodyRequiresSendAt(t *testing.T) {
	err := NewRescheduleRequestBody("").Validate()
	require.Error(t, err)
	set := violationSet(t, err)
	assert.Equal(t, "required", set["RescheduleRequestBody.SendAt"].Constraint)

	assert.NoError(t, NewRescheduleRequestBody("2026-09-01T10:00:00Z").Validate())
}

func TestRescheduleRequestBodySerialization(t *testing.T) {
	data, err := models.Marshal(NewRescheduleRequestBody("2026-09-01T10:00:00Z"))

	require.NoError(t, err)
	assert.Equal(t, `{"sendAt":"2026-09-01T10:00:00Z"}`, string(data))
}

func TestBulkStatusRoundTrip(t *testing.T) {
	for _, status := range []BulkStatus{
		BulkStatusPending,
		BulkStatusPaused,
		BulkStatusProcessing,
		BulkStatusCanceled,
		BulkStatusFinished,
		BulkStatusFailed,
	} {
		data, err := models.Marshal(BulkStatusInfo{Status: &status})
		require.NoError(t, err)

		var decoded BulkStatusInfo
		require.NoError(t, models.Unmarshal(data, &decoded))
		require.NotNil(t, decoded.Status)
		assert.Equal(t, status, *decoded.Status)
	}
}

func TestBulkStatusRejectsUnknownToken(t *testing.T) {
	var info BulkStatusInfo
	err := models.Unmarshal([]byte(`{"bulkId":"bulk-1","status":"SOMEDAY"}`), &info)

	require.Error(t, err)
	var derr *models.DecodingError
	require.True(t, errors.As(err, &derr))
	assert.Contains(t, err.Error(), "SOMEDAY")
}

func TestBulkStatusRejectsNonStringToken(t *testing.T) {
	var info BulkStatusInfo
	err := models.Unmarshal([]byte(`{"status":4}`), &info)

	require.Error(t, err)
	var derr *models.DecodingError
	assert.True(t, errors.As(err, &derr))
}

func TestUpdateScheduledStatusRequestBody(t *testing.T) {
	body := NewUpdateScheduledStatusRequestBody(BulkStatusPaused)
	require.NoError(t, body.Validate())

	data, err := models.Marshal(body)
	require.NoError(t, err)
	assert.Equal(t, `{"status":"PAUSED"}`, string(data))
}

func TestUpdateScheduledStatusRequestBodyRequiresStatus(t *testing.T) {
	var body UpdateScheduledStatusRequestBody

	err := body.Validate()
	require.Error(t, err)
	set := violationSet(t, err)
	assert.Equal(t, "required", set["UpdateScheduledStatusRequestBody.Status"].Constraint)
}

func TestGetScheduledStatusResponseBodyDecodes(t *testing.T) {
	payload := `{
		"externalBulkId": "external-bulk-4",
		"bulks": [
			{"bulkId": "bulk-4-1", "status": "PROCESSING"}
		]
	}`

	var body GetScheduledStatusResponseBody
	require.NoError(t, models.Unmarshal([]byte(payload), &body))
	require.Len(t, body.Bulks, 1)
	require.NotNil(t, body.Bulks[0].Status)
	assert.Equal(t, BulkStatusProcessing, *body.Bulks[0].Status)
}
