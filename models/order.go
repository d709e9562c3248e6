package models

import (
	"encoding/json"
	"time"
)

// OrderPayload is the snapshot the submission client posts to the relay.
type OrderPayload struct {
	Items      []CartLineItem `json:"items"`
	TotalItems int            `json:"totalItems"`
	Timestamp  string         `json:"timestamp"`
}

const orderTimestampLayout = "2006-01-02T15:04:05.000Z07:00"

func NewOrderPayload(cart *Cart, now time.Time) *OrderPayload {
	snapshot := cart.Clone()
	return &OrderPayload{
		Items:      snapshot.Items,
		TotalItems: snapshot.TotalItems(),
		Timestamp:  now.UTC().Format(orderTimestampLayout),
	}
}

// RelayRequest keeps the inbound fields raw so the relay only checks their
// shape and forwards them untouched.
type RelayRequest struct {
	Items      json.RawMessage `json:"items"`
	TotalItems json.RawMessage `json:"totalItems"`
	Timestamp  json.RawMessage `json:"timestamp"`
}

type WebhookPayload struct {
	Items          json.RawMessage `json:"items"`
	TotalItems     json.RawMessage `json:"total_items"`
	OrderTimestamp json.RawMessage `json:"order_timestamp,omitempty"`
	Restaurant     string          `json:"restaurant"`
}

type SubmissionState string

const (
	SubmissionIdle       SubmissionState = "idle"
	SubmissionSubmitting SubmissionState = "submitting"
	SubmissionConfirmed  SubmissionState = "confirmed"
	SubmissionFailed     SubmissionState = "failed"
)

type SubmissionStatus struct {
	State       SubmissionState `json:"state"`
	Submitted   bool            `json:"submitted"`
	Message     string          `json:"message,omitempty"`
	TotalItems  int             `json:"totalItems,omitempty"`
	SubmittedAt *time.Time      `json:"submittedAt,omitempty"`
}
