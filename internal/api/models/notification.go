package models

import "encoding/json"

// NotificationSendRequest is the body for POST /api/notifications/send.
type NotificationSendRequest struct {
	UserID string         `json:"userId"`
	Title  string         `json:"title"`
	Body   string         `json:"body"`
	Data   map[string]any `json:"data"`
}

// BroadcastRequest is the body for POST /api/notifications/broadcast.
type BroadcastRequest struct {
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data"`
}

// NotificationSendResponse wraps the push gateway's raw result for a
// targeted send.
type NotificationSendResponse struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
}

// BroadcastResponse wraps the per-batch gateway results of a broadcast.
type BroadcastResponse struct {
	Success bool              `json:"success"`
	Results []json.RawMessage `json:"results"`
}
