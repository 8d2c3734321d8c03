package sms

// RegionalOptions groups country specific compliance settings attached
// to a message. Only the sub-objects that are present are validated.
type RegionalOptions struct {
	IndiaDlt   *IndiaDlt   `json:"indiaDlt,omitempty"`
	TurkeyIys  *TurkeyIys  `json:"turkeyIys,omitempty"`
	SouthKorea *SouthKorea `json:"southKorea,omitempty"`
}

// NewRegionalOptions builds an empty regional settings container.
func NewRegionalOptions() *RegionalOptions {
	return &RegionalOptions{}
}

// IndiaDlt carries the DLT registration data required for traffic to
// India.
type IndiaDlt struct {
	ContentTemplateID *string `json:"contentTemplateId,omitempty"`
	PrincipalEntityID string  `json:"principalEntityId" validate:"required,min=1"`
}

// NewIndiaDlt builds DLT settings for the given principal entity.
func NewIndiaDlt(principalEntityID string) *IndiaDlt {
	return &IndiaDlt{PrincipalEntityID: principalEntityID}
}

// TurkeyIys carries the IYS routing data required for traffic to
// Turkey. RecipientType is TACIR for businesses or BIREYSEL for
// individuals.
type TurkeyIys struct {
	BrandCode     *int32 `json:"brandCode,omitempty"`
	RecipientType string `json:"recipientType" validate:"required,oneof=TACIR BIREYSEL"`
}

// NewTurkeyIys builds IYS settings for the given recipient type.
func NewTurkeyIys(recipientType string) *TurkeyIys {
	return &TurkeyIys{RecipientType: recipientType}
}

// SouthKorea carries the reseller registration data required for
// traffic to South Korea.
type SouthKorea struct {
	ResellerCode *int32 `json:"resellerCode,omitempty"`
}

// NewSouthKorea builds empty South Korea settings.
func NewSouthKorea() *SouthKorea {
	return &SouthKorea{}
}
