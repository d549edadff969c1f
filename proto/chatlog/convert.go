package chatlog

import (
	"time"

	"talker/domain/chat"

	"github.com/samber/lo"
)

func FromMessage(logID string, message chat.Message) *MessageRecord {
	record := &MessageRecord{
		Id:              message.ID,
		LogId:           logID,
		Text:            message.Text,
		AuthorId:        message.AuthorID,
		AuthorAvatarUrl: message.AuthorAvatarURL,
		Seq:             message.Seq,
	}
	if message.CreatedAt != nil {
		record.CreatedAt = message.CreatedAt.UnixNano()
	}
	return record
}

// ToMessage converts a stored or transported record. A zero CreatedAt means
// the timestamp is not resolved yet.
func (m *MessageRecord) ToMessage() chat.Message {
	message := chat.Message{
		ID:              m.Id,
		Text:            m.Text,
		AuthorID:        m.AuthorId,
		AuthorAvatarURL: m.AuthorAvatarUrl,
		Seq:             m.Seq,
	}
	if m.CreatedAt != 0 {
		message.CreatedAt = lo.ToPtr(time.Unix(0, m.CreatedAt).UTC())
	}
	return message
}

func (w *WindowEvent) ToMessages() []chat.Message {
	return lo.Map(w.Messages, func(m *MessageRecord, _ int) chat.Message {
		return m.ToMessage()
	})
}

func NewWindowEvent(logID string, window []chat.Message) *WindowEvent {
	return &WindowEvent{Messages: lo.Map(window, func(m chat.Message, _ int) *MessageRecord {
		return FromMessage(logID, m)
	})}
}

func (r *AppendResponse) ToAck() chat.Ack {
	return chat.Ack{ID: r.Id, CreatedAt: time.Unix(0, r.CreatedAt).UTC(), Seq: r.Seq}
}
