package email

import (
	"encoding/json"
	"fmt"

	"github.com/aradsms/golang_sdk/models"
)

// DkimKeyLength is the RSA key size used for DKIM signing. It travels
// as a bare integer on the wire.
type DkimKeyLength int32

const (
	DkimKeyLength1024 DkimKeyLength = 1024
	DkimKeyLength2048 DkimKeyLength = 2048
)

// UnmarshalJSON rejects key lengths outside the supported set.
func (l *DkimKeyLength) UnmarshalJSON(data []byte) error {
	var n int32
	if err := json.Unmarshal(data, &n); err != nil {
		return &models.DecodingError{Field: "dkimKeyLength", Err: err}
	}
	switch DkimKeyLength(n) {
	case DkimKeyLength1024, DkimKeyLength2048:
		*l = DkimKeyLength(n)
		return nil
	}
	return &models.DecodingError{Field: "dkimKeyLength", Err: fmt.Errorf("unsupported key length %d", n)}
}

// GetDomainsQueryParameters pages through the registered sender domains.
type GetDomainsQueryParameters struct {
	Size *int32 `url:"size,omitempty" validate:"omitempty,min=1,max=20"`
	Page *int32 `url:"page,omitempty" validate:"omitempty,min=1"`
}

// NewGetDomainsQueryParameters builds an empty query for the first page
// at the default size.
func NewGetDomainsQueryParameters() *GetDomainsQueryParameters {
	return &GetDomainsQueryParameters{}
}

// Validate checks the field constraints on the query parameters.
func (q *GetDomainsQueryParameters) Validate() error { return models.Validate(q) }

// Tracking reports which engagement events are recorded for a domain.
type Tracking struct {
	Clicks      *bool `json:"clicks,omitempty"`
	Opens       *bool `json:"opens,omitempty"`
	Unsubscribe *bool `json:"unsubscribe,omitempty"`
}

// DnsRecord is one DNS record the domain owner must publish, together
// with its verification state.
type DnsRecord struct {
	RecordType    *string `json:"recordType,omitempty"`
	Name          *string `json:"name,omitempty"`
	ExpectedValue *string `json:"expectedValue,omitempty"`
	Verified      *bool   `json:"verified,omitempty"`
}

// Domain describes one registered sender domain.
type Domain struct {
	DomainID   *int64      `json:"domainId,omitempty"`
	DomainName *string     `json:"domainName,omitempty"`
	Active     *bool       `json:"active,omitempty"`
	Tracking   *Tracking   `json:"tracking,omitempty"`
	DNSRecords []DnsRecord `json:"dnsRecords,omitempty"`
	Blocked    *bool       `json:"blocked,omitempty"`
	CreatedAt  *string     `json:"createdAt,omitempty"`
}

// Paging describes the position of one page within the full result set.
type Paging struct {
	Page         *int32 `json:"page,omitempty"`
	Size         *int32 `json:"size,omitempty"`
	TotalPages   *int32 `json:"totalPages,omitempty"`
	TotalResults *int64 `json:"totalResults,omitempty"`
}

// GetDomainsResponseBody is one page of registered sender domains.
type GetDomainsResponseBody struct {
	Paging  *Paging  `json:"paging,omitempty"`
	Results []Domain `json:"results,omitempty"`
}

// AddDomainRequestBody registers a new sender domain.
type AddDomainRequestBody struct {
	DomainName    string         `json:"domainName" validate:"required,min=1"`
	DkimKeyLength *DkimKeyLength `json:"dkimKeyLength,omitempty"`
}

// NewAddDomainRequestBody builds a registration request for the given
// domain name.
func NewAddDomainRequestBody(domainName string) *AddDomainRequestBody {
	return &AddDomainRequestBody{DomainName: domainName}
}

// Validate checks the field constraints on the request.
func (r *AddDomainRequestBody) Validate() error { return models.Validate(r) }

// The domain endpoints all answer with the full domain description.
type (
	AddDomainResponseBody      = Domain
	GetDomainResponseBody      = Domain
	UpdateTrackingResponseBody = Domain
)

// UpdateTrackingRequestBody switches engagement tracking events on or
// off for a domain. The opens toggle travels as "open" on the wire.
type UpdateTrackingRequestBody struct {
	Opens       *bool `json:"open,omitempty"`
	Clicks      *bool `json:"clicks,omitempty"`
	Unsubscribe *bool `json:"unsubscribe,omitempty"`
}

// NewUpdateTrackingRequestBody builds an empty tracking update; toggles
// left unset keep their current state.
func NewUpdateTrackingRequestBody() *UpdateTrackingRequestBody {
	return &UpdateTrackingRequestBody{}
}

// Validate checks the field constraints on the request.
func (r *UpdateTrackingRequestBody) Validate() error { return models.Validate(r) }
