package sms

// Status describes where a message stands in its delivery lifecycle,
// as a status group plus a specific status within it.
type Status struct {
	GroupID     *int32  `json:"groupId,omitempty"`
	GroupName   *string `json:"groupName,omitempty"`
	ID          *int32  `json:"id,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Action      *string `json:"action,omitempty"`
}

// Error describes the failure attached to an undelivered message.
// Permanent distinguishes hard failures from ones worth retrying.
type Error struct {
	GroupID     *int32  `json:"groupId,omitempty"`
	GroupName   *string `json:"groupName,omitempty"`
	ID          *int32  `json:"id,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Permanent   *bool   `json:"permanent,omitempty"`
}

// Price is the cost charged for one message.
type Price struct {
	PricePerMessage *float32 `json:"pricePerMessage,omitempty"`
	Currency        *string  `json:"currency,omitempty"`
}
