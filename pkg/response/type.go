package response

import (
	"encoding/json"
	"time"
)

// Resp is the standard JSON body for successful responses.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// ErrorResponse is the uniform JSON body returned for every failed request.
// Created fresh per failure and never mutated after being written.
type ErrorResponse struct {
	Timestamp DateTime `json:"timestamp"`
	Status    int      `json:"status"`
	Path      string   `json:"path"`
	Error     string   `json:"error"`
	Message   string   `json:"message"`
}

// Date is a date that marshals as DateFormat.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateFormat))
}

// DateTime is a datetime that marshals as DateTimeFormat.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateTimeFormat))
}

// UnmarshalJSON implements json.Unmarshaler for DateTime.
func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse(DateTimeFormat, s)
	if err != nil {
		return err
	}
	*d = DateTime(t)
	return nil
}
