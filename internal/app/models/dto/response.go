package dto

import (
	"net/http"
	"strings"
	"time"
)

// EmptyBody is the payload of responses that carry no record
const EmptyBody = ""

// warningSeparator joins advisory notes to the response message
const warningSeparator = " WARNING: "

// Envelope is the body of every API response
type Envelope struct {
	Message      string      `json:"message" example:"Entity added successfully"`
	TimeStamp    int64       `json:"timeStamp" example:"1924992000000"`
	ResponseBody interface{} `json:"responseBody"`
}

// NewEnvelope creates an envelope stamped with the current time
func NewEnvelope(message string, body interface{}) Envelope {
	return Envelope{
		Message:      message,
		TimeStamp:    time.Now().UnixMilli(),
		ResponseBody: body,
	}
}

// Result is the outcome of a service operation before it is rendered
type Result struct {
	Status   int
	Message  string
	Body     interface{}
	Warnings []string
}

// NewResult creates a result without warnings
func NewResult(status int, message string, body interface{}) Result {
	return Result{Status: status, Message: message, Body: body}
}

// WithWarnings appends advisory notes to the result
func (r Result) WithWarnings(notes ...string) Result {
	r.Warnings = append(append([]string(nil), r.Warnings...), notes...)
	return r
}

// FullMessage returns the message with every warning appended
func (r Result) FullMessage() string {
	if len(r.Warnings) == 0 {
		return r.Message
	}

	var sb strings.Builder
	sb.WriteString(r.Message)
	for _, w := range r.Warnings {
		sb.WriteString(warningSeparator)
		sb.WriteString(w)
	}
	return sb.String()
}

// Envelope renders the result for the wire
func (r Result) Envelope() Envelope {
	body := r.Body
	if body == nil {
		body = EmptyBody
	}
	return NewEnvelope(r.FullMessage(), body)
}

// IsSuccess reports whether the status is 2xx
func (r Result) IsSuccess() bool {
	return r.Status >= http.StatusOK && r.Status < http.StatusMultipleChoices
}
