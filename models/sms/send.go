// Package sms defines the request bodies, response bodies and query
// parameter sets for the SMS endpoints: sending, previews, delivery
// reports, logs, scheduling and inbound messages. Types carry their
// field constraints as validate tags and their wire names as json tags;
// the transport layer is out of scope here.
package sms

import (
	"github.com/aradsms/golang_sdk/models"
)

// TimeUnit scales a sending speed limit amount.
type TimeUnit string

const (
	TimeUnitMinute TimeUnit = "MINUTE"
	TimeUnitHour   TimeUnit = "HOUR"
	TimeUnitDay    TimeUnit = "DAY"
)

var timeUnitTokens = []string{
	string(TimeUnitMinute),
	string(TimeUnitHour),
	string(TimeUnitDay),
}

// UnmarshalJSON rejects tokens outside the known unit set.
func (u *TimeUnit) UnmarshalJSON(data []byte) error {
	tok, err := models.DecodeToken(data, "timeUnit", timeUnitTokens)
	if err != nil {
		return err
	}
	*u = TimeUnit(tok)
	return nil
}

// DeliveryDay names a day of the week inside a delivery time window.
type DeliveryDay string

const (
	DeliveryDayMonday    DeliveryDay = "MONDAY"
	DeliveryDayTuesday   DeliveryDay = "TUESDAY"
	DeliveryDayWednesday DeliveryDay = "WEDNESDAY"
	DeliveryDayThursday  DeliveryDay = "THURSDAY"
	DeliveryDayFriday    DeliveryDay = "FRIDAY"
	DeliveryDaySaturday  DeliveryDay = "SATURDAY"
	DeliveryDaySunday    DeliveryDay = "SUNDAY"
)

var deliveryDayTokens = []string{
	string(DeliveryDayMonday),
	string(DeliveryDayTuesday),
	string(DeliveryDayWednesday),
	string(DeliveryDayThursday),
	string(DeliveryDayFriday),
	string(DeliveryDaySaturday),
	string(DeliveryDaySunday),
}

// UnmarshalJSON rejects tokens outside the known day set.
func (d *DeliveryDay) UnmarshalJSON(data []byte) error {
	tok, err := models.DecodeToken(data, "days", deliveryDayTokens)
	if err != nil {
		return err
	}
	*d = DeliveryDay(tok)
	return nil
}

// DeliveryTime is a wall clock boundary of a delivery time window.
type DeliveryTime struct {
	Hour   int32 `json:"hour" validate:"min=0,max=23"`
	Minute int32 `json:"minute" validate:"min=0,max=59"`
}

// NewDeliveryTime builds a window boundary at the given hour and minute.
func NewDeliveryTime(hour, minute int32) *DeliveryTime {
	return &DeliveryTime{Hour: hour, Minute: minute}
}

// DeliveryTimeWindow restricts delivery to chosen days and, optionally,
// a daily time span between From and To.
type DeliveryTimeWindow struct {
	Days []DeliveryDay `json:"days" validate:"required,min=1"`
	From *DeliveryTime `json:"from,omitempty"`
	To   *DeliveryTime `json:"to,omitempty"`
}

// NewDeliveryTimeWindow builds a window covering whole days.
func NewDeliveryTimeWindow(days []DeliveryDay) *DeliveryTimeWindow {
	return &DeliveryTimeWindow{Days: days}
}

// SpeedLimit throttles sending to Amount messages per time unit. An
// amount of zero disables sending without discarding the request.
type SpeedLimit struct {
	Amount   int32     `json:"amount" validate:"min=0"`
	TimeUnit *TimeUnit `json:"timeUnit,omitempty"`
}

// NewSpeedLimit builds a limit of amount messages per minute; set
// TimeUnit to change the scale.
func NewSpeedLimit(amount int32) *SpeedLimit {
	return &SpeedLimit{Amount: amount}
}

// Language picks the character handling applied to message text.
type Language struct {
	LanguageCode *string `json:"languageCode,omitempty" validate:"omitempty,oneof=TR ES PT AUTODETECT"`
}

// Tracking configures URL tracking for links inside message text. The
// tracking type travels as "type" on the wire.
type Tracking struct {
	BaseURL      *string `json:"baseUrl,omitempty"`
	ProcessKey   *string `json:"processKey,omitempty"`
	Track        *string `json:"track,omitempty"`
	TrackingType *string `json:"type,omitempty"`
}

// Destination is one recipient number, optionally pinned to a caller
// chosen message ID.
type Destination struct {
	MessageID *string `json:"messageId,omitempty"`
	To        string  `json:"to" validate:"required,min=1"`
}

// NewDestination builds a destination for the given number.
func NewDestination(to string) *Destination {
	return &Destination{To: to}
}

// Message is one message of a send request, fanned out to one or more
// destinations.
type Message struct {
	CallbackData       *string             `json:"callbackData,omitempty" validate:"omitempty,max=4000"`
	DeliveryTimeWindow *DeliveryTimeWindow `json:"deliveryTimeWindow,omitempty"`
	Destinations       []Destination       `json:"destinations" validate:"required,min=1,dive"`
	Flash              *bool               `json:"flash,omitempty"`
	From               *string             `json:"from,omitempty"`
	IntermediateReport *bool               `json:"intermediateReport,omitempty"`
	Language           *Language           `json:"language,omitempty"`
	NotifyContentType  *string             `json:"notifyContentType,omitempty"`
	NotifyURL          *string             `json:"notifyUrl,omitempty" validate:"omitempty,url"`
	// Regional carries country specific compliance settings; each
	// sub-object is validated only when present.
	Regional        *RegionalOptions `json:"regional,omitempty"`
	SendAt          *string          `json:"sendAt,omitempty"`
	Text            *string          `json:"text,omitempty"`
	Transliteration *string          `json:"transliteration,omitempty" validate:"omitempty,oneof=TURKISH GREEK CYRILLIC SERBIAN_CYRILLIC CENTRAL_EUROPEAN BALTIC NON_UNICODE"`
	// ValidityPeriod is how long delivery is attempted, in minutes,
	// capped at 48 hours.
	ValidityPeriod *int32 `json:"validityPeriod,omitempty" validate:"omitempty,min=0,max=2880"`
}

// NewMessage builds a message for the given destinations. Content and
// sender are optional and set directly.
func NewMessage(destinations []Destination) *Message {
	return &Message{Destinations: destinations}
}

// SendRequestBody is the request body for sending SMS messages.
type SendRequestBody struct {
	BulkID            *string     `json:"bulkId,omitempty"`
	Messages          []Message   `json:"messages" validate:"required,min=1,dive"`
	SendingSpeedLimit *SpeedLimit `json:"sendingSpeedLimit,omitempty"`
	Tracking          *Tracking   `json:"tracking,omitempty"`
}

// NewSendRequestBody builds a send request for the given messages.
func NewSendRequestBody(messages []Message) *SendRequestBody {
	return &SendRequestBody{Messages: messages}
}

// Validate checks every field constraint on the request, including the
// nested messages, destinations, windows and regional settings, and
// reports all violations through a *models.ValidationError.
func (r *SendRequestBody) Validate() error { return models.Validate(r) }

// SentMessageDetails describes one accepted message in a send response.
type SentMessageDetails struct {
	To        *string `json:"to,omitempty"`
	MessageID *string `json:"messageId,omitempty"`
	Status    *Status `json:"status,omitempty"`
}

// SendResponseBody is the response body returned when messages are
// accepted for sending.
type SendResponseBody struct {
	BulkID   *string              `json:"bulkId,omitempty"`
	Messages []SentMessageDetails `json:"messages,omitempty"`
}
