package domain

import "time"

const (
	ActionSignedUp = "signed up"
	ActionLoggedIn = "logged in"
)

// Activity is an append-only audit record of an account event.
type Activity struct {
	ID        string    `json:"id"`
	SubjectID string    `json:"userId"`
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
