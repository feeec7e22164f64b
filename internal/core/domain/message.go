package domain

import "time"

// MaxMessageLength bounds the content of a single message, in characters.
const MaxMessageLength = 500

// Message is a note sent by a client to the back office. Immutable once
// created; username is a denormalized snapshot taken at send time.
type Message struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
