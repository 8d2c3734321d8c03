package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aradsms/golang_sdk/models"
)

func TestGetLogsQueryParametersFlatten(t *testing.T) {
	params := NewGetLogsQueryParameters()
	params.From = models.StringPtr("jane.doe@example.com")
	params.GeneralStatus = models.StringPtr("DELIVERED")
	params.SentSince = models.StringPtr("2026-08-20T00:00:00Z")
	require.NoError(t, params.Validate())

	vals, err := models.QueryValues(params)
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", vals.Get("from"))
	assert.Equal(t, "DELIVERED", vals.Get("generalStatus"))
	assert.Equal(t, "2026-08-20T00:00:00Z", vals.Get("sentSince"))
	assert.Len(t, vals, 3)
}

func TestGetLogsResponseBodyDecodes(t *testing.T) {
	payload := `{
		"results": [
			{
				"messageId": "message-12-1",
				"to": "john.smith@example.com",
				"from": "jane.doe@example.com",
				"text": "Delivery on Monday",
				"sentAt": "2026-08-20T10:00:00.000+0000",
				"doneAt": "2026-08-20T10:00:02.000+0000",
				"messageCount": 1,
				"price": {"pricePerMessage": 0.0, "currency": "EUR"},
				"status": {"groupId": 3, "groupName": "DELIVERED"}
			}
		]
	}`

	var body GetLogsResponseBody
	require.NoError(t, models.Unmarshal([]byte(payload), &body))
	require.Len(t, body.Results, 1)
	entry := body.Results[0]
	require.NotNil(t, entry.Text)
	assert.Equal(t, "Delivery on Monday", *entry.Text)
	assert.Nil(t, entry.BulkID)
}
