package email

import (
	"github.com/aradsms/golang_sdk/models"
)

// Reasons reported when mailbox validity cannot be settled one way or
// the other.
const (
	ReasonInboxFull       = "INBOX_FULL"
	ReasonUnexpectedFail  = "UNEXPECTED_FAILURE"
	ReasonThrottled       = "THROTTLED"
	ReasonTimedOut        = "TIMED_OUT"
	ReasonTempRejection   = "TEMP_REJECTION"
	ReasonUnableToConnect = "UNABLE_TO_CONNECT"
)

// ValidateAddressRequestBody asks for a deliverability check of one
// address.
type ValidateAddressRequestBody struct {
	To string `json:"to" validate:"required,min=1"`
}

// NewValidateAddressRequestBody builds a validation request for the
// given address.
func NewValidateAddressRequestBody(to string) *ValidateAddressRequestBody {
	return &ValidateAddressRequestBody{To: to}
}

// Validate checks the field constraints on the request.
func (r *ValidateAddressRequestBody) Validate() error { return models.Validate(r) }

// ValidateAddressResponseBody is the deliverability verdict for one
// address. ValidMailbox is "true", "false" or "unknown"; when it is
// unknown, Reason holds one of the Reason constants.
type ValidateAddressResponseBody struct {
	To           *string `json:"to,omitempty"`
	ValidMailbox *string `json:"validMailbox,omitempty"`
	ValidSyntax  *bool   `json:"validSyntax,omitempty"`
	CatchAll     *bool   `json:"catchAll,omitempty"`
	DidYouMean   *string `json:"didYouMean,omitempty"`
	Disposable   *bool   `json:"disposable,omitempty"`
	RoleBased    *bool   `json:"roleBased,omitempty"`
	Reason       *string `json:"reason,omitempty"`
}
