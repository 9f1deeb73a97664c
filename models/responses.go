package models

import "time"

// ActionResponse is the body returned by a successful update.
type ActionResponse struct {
	Action string `json:"action"`
}

// ActionDone is the only action the relay reports.
const ActionDone = "done"

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// HealthTimestampLayout renders UTC timestamps with millisecond precision
// and a "Z" suffix, e.g. 2026-01-02T15:04:05.000Z.
const HealthTimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// NewHealthResponse builds an "OK" health response stamped with now.
func NewHealthResponse(now time.Time) HealthResponse {
	return HealthResponse{
		Status:    "OK",
		Timestamp: now.UTC().Format(HealthTimestampLayout),
	}
}
