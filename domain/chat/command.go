package chat

import "time"

// Record is a message to write. The log assigns ID, CreatedAt and Seq.
type Record struct {
	Text            string `validate:"required"`
	AuthorID        string `validate:"required,max=128"`
	AuthorAvatarURL string `validate:"omitempty,url"`
}

// Ack is returned once the ordered log accepted a write.
type Ack struct {
	ID        string
	CreatedAt time.Time
	Seq       uint64
}

// AppendCommand asks the ordered log to append a record.
type AppendCommand struct {
	LogID  string `validate:"required,max=64,excludes=:"`
	Record Record
	// Caller is the authenticated user issuing the command.
	Caller string `validate:"required"`
}

// SubscribeCommand asks for the top N entries of a log.
type SubscribeCommand struct {
	LogID    string   `validate:"required,max=64,excludes=:"`
	OrderKey OrderKey `validate:"required"`
	Limit    int      `validate:"gte=1"`
}

// SignInCommand asks for a session token.
type SignInCommand struct {
	UserID    string `validate:"required,max=128"`
	AvatarURL string `validate:"omitempty,url"`
}
