package sms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aradsms/golang_sdk/models"
)

func requestWithRegional(regional *RegionalOptions) *SendRequestBody {
	msg := sampleMessage()
	msg.Regional = regional
	return NewSendRequestBody([]Message{msg})
}

func TestRegionalAbsentSubObjectsAreNotValidated(t *testing.T) {
	assert.NoError(t, requestWithRegional(NewRegionalOptions()).Validate())
	assert.NoError(t, requestWithRegional(nil).Validate())
}

func TestIndiaDltRequiresPrincipalEntity(t *testing.T) {
	regional := NewRegionalOptions()
	regional.IndiaDlt = NewIndiaDlt("")

	err := requestWithRegional(regional).Validate()
	require.Error(t, err)
	set := violationSet(t, err)
	assert.Equal(t, "required", set["SendRequestBody.Messages[0].Regional.IndiaDlt.PrincipalEntityID"].Constraint)
}

func TestIndiaDltValidWithPrincipalEntity(t *testing.T) {
	regional := NewRegionalOptions()
	regional.IndiaDlt = NewIndiaDlt("1234567890123456789")
	regional.IndiaDlt.ContentTemplateID = models.StringPtr("1107162259540000001")

	assert.NoError(t, requestWithRegional(regional).Validate())
}

func TestTurkeyIysRecipientTypeVocabulary(t *testing.T) {
	regional := NewRegionalOptions()
	regional.TurkeyIys = NewTurkeyIys("TACIR")
	assert.NoError(t, requestWithRegional(regional).Validate())

	regional.TurkeyIys = NewTurkeyIys("BIREYSEL")
	assert.NoError(t, requestWithRegional(regional).Validate())

	regional.TurkeyIys = NewTurkeyIys("BAD")
	err := requestWithRegional(regional).Validate()
	require.Error(t, err)
	set := violationSet(t, err)
	assert.Equal(t, "oneof", set["SendRequestBody.Messages[0].Regional.TurkeyIys.RecipientType"].Constraint)
}

func TestTurkeyIysRequiresRecipientType(t *testing.T) {
	regional := NewRegionalOptions()
	regional.TurkeyIys = NewTurkeyIys("")
	regional.TurkeyIys.BrandCode = models.Int32Ptr(1)

	err := requestWithRegional(regional).Validate()
	require.Error(t, err)
	set := violationSet(t, err)
	assert.Equal(t, "required", set["SendRequestBody.Messages[0].Regional.TurkeyIys.RecipientType"].Constraint)
}

func TestRegionalSerialization(t *testing.T) {
	regional := NewRegionalOptions()
	regional.IndiaDlt = NewIndiaDlt("1234567890123456789")
	regional.SouthKorea = NewSouthKorea()
	regional.SouthKorea.ResellerCode = models.Int32Ptr(102)

	data, err := models.Marshal(regional)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"indiaDlt": {"principalEntityId": "1234567890123456789"},
		"southKorea": {"resellerCode": 102}
	}`, string(data))
}

func TestRegionalDecoding(t *testing.T) {
	payload := `{"turkeyIys":{"brandCode":1,"recipientType":"TACIR"}}`

	var regional RegionalOptions
	require.NoError(t, models.Unmarshal([]byte(payload), &regional))
	require.NotNil(t, regional.TurkeyIys)
	assert.Equal(t, "TACIR", regional.TurkeyIys.RecipientType)
	require.NotNil(t, regional.TurkeyIys.BrandCode)
	assert.Equal(t, int32(1), *regional.TurkeyIys.BrandCode)
	assert.Nil(t, regional.IndiaDlt)
	assert.Nil(t, regional.SouthKorea)
}
