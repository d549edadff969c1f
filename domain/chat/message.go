// Package chat contains the core concepts of the chat room.
// Messages are immutable once written by the ordered log.
package chat

import "time"

// WindowSize is the number of newest messages a client is allowed to see.
const WindowSize = 25

// DefaultAvatarURL is displayed when an author has no avatar.
const DefaultAvatarURL = "https://api.adorable.io/avatars/23/abott@adorable.png"

// OrderKey names the field the ordered log sorts on.
type OrderKey string

const OrderByCreatedAt OrderKey = "createdAt"

// Message is an entry of the ordered log.
// CreatedAt is nil while the server timestamp is not resolved yet.
type Message struct {
	ID              string
	Text            string
	AuthorID        string
	AuthorAvatarURL string
	CreatedAt       *time.Time
	Seq             uint64 // log-assigned, breaks CreatedAt ties
}

// Avatar returns the author avatar or the default one.
func (m Message) Avatar() string {
	if m.AuthorAvatarURL == "" {
		return DefaultAvatarURL
	}
	return m.AuthorAvatarURL
}

// NewerThan reports whether m sorts after the acknowledged write in log order.
func (m Message) NewerThan(ack Ack) bool {
	if m.CreatedAt == nil {
		return false
	}
	if m.CreatedAt.Equal(ack.CreatedAt) {
		return m.Seq > ack.Seq
	}
	return m.CreatedAt.After(ack.CreatedAt)
}

// DisplayMessage is a message classified for the current viewer.
type DisplayMessage struct {
	Message
	IsOwn bool
}
