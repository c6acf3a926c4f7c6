package entity

import "time"

// Session is a game screen served to a local web client.
type Session struct {
	ID        string    `json:"id"`
	Game      Game      `json:"game"`
	StartedAt time.Time `json:"started_at"`
}
