// Package chatlog holds the wire messages of the ordered log service.
// Messages are encoded in the protobuf wire format with protowire; the same
// MessageRecord encoding is used for storage and transport.
package chatlog

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Message is implemented by every wire message.
type Message interface {
	MarshalWire() []byte
	UnmarshalWire(b []byte) error
}

type MessageRecord struct {
	Id              string // 1
	LogId           string // 2
	Text            string // 3
	AuthorId        string // 4
	AuthorAvatarUrl string // 5
	CreatedAt       int64  // 6, unix nanos, 0 when unresolved
	Seq             uint64 // 7
}

func (m *MessageRecord) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.LogId)
	b = appendString(b, 3, m.Text)
	b = appendString(b, 4, m.AuthorId)
	b = appendString(b, 5, m.AuthorAvatarUrl)
	b = appendVarint(b, 6, uint64(m.CreatedAt))
	b = appendVarint(b, 7, m.Seq)
	return b
}

func (m *MessageRecord) UnmarshalWire(b []byte) error {
	*m = MessageRecord{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			return consumeString(b, &m.Id)
		case num == 2 && typ == protowire.BytesType:
			return consumeString(b, &m.LogId)
		case num == 3 && typ == protowire.BytesType:
			return consumeString(b, &m.Text)
		case num == 4 && typ == protowire.BytesType:
			return consumeString(b, &m.AuthorId)
		case num == 5 && typ == protowire.BytesType:
			return consumeString(b, &m.AuthorAvatarUrl)
		case num == 6 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.CreatedAt = int64(v)
			return n, protowire.ParseError(n)
		case num == 7 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.Seq = v
			return n, protowire.ParseError(n)
		}
		return skip(num, typ, b)
	})
}

type AppendRequest struct {
	LogId           string // 1
	Text            string // 2
	AuthorId        string // 3
	AuthorAvatarUrl string // 4
}

func (m *AppendRequest) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.LogId)
	b = appendString(b, 2, m.Text)
	b = appendString(b, 3, m.AuthorId)
	b = appendString(b, 4, m.AuthorAvatarUrl)
	return b
}

func (m *AppendRequest) UnmarshalWire(b []byte) error {
	*m = AppendRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ == protowire.BytesType {
			switch num {
			case 1:
				return consumeString(b, &m.LogId)
			case 2:
				return consumeString(b, &m.Text)
			case 3:
				return consumeString(b, &m.AuthorId)
			case 4:
				return consumeString(b, &m.AuthorAvatarUrl)
			}
		}
		return skip(num, typ, b)
	})
}

type AppendResponse struct {
	Id        string // 1
	CreatedAt int64  // 2
	Seq       uint64 // 3
}

func (m *AppendResponse) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.Id)
	b = appendVarint(b, 2, uint64(m.CreatedAt))
	b = appendVarint(b, 3, m.Seq)
	return b
}

func (m *AppendResponse) UnmarshalWire(b []byte) error {
	*m = AppendResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			return consumeString(b, &m.Id)
		case num == 2 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.CreatedAt = int64(v)
			return n, protowire.ParseError(n)
		case num == 3 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.Seq = v
			return n, protowire.ParseError(n)
		}
		return skip(num, typ, b)
	})
}

type SubscribeRequest struct {
	LogId    string // 1
	OrderKey string // 2
	Limit    uint32 // 3
}

func (m *SubscribeRequest) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.LogId)
	b = appendString(b, 2, m.OrderKey)
	b = appendVarint(b, 3, uint64(m.Limit))
	return b
}

func (m *SubscribeRequest) UnmarshalWire(b []byte) error {
	*m = SubscribeRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			return consumeString(b, &m.LogId)
		case num == 2 && typ == protowire.BytesType:
			return consumeString(b, &m.OrderKey)
		case num == 3 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.Limit = uint32(v)
			return n, protowire.ParseError(n)
		}
		return skip(num, typ, b)
	})
}

// WindowEvent carries a complete newest-first window.
type WindowEvent struct {
	Messages []*MessageRecord // 1
}

func (m *WindowEvent) MarshalWire() []byte {
	var b []byte
	for _, msg := range m.Messages {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, msg.MarshalWire())
	}
	return b
}

func (m *WindowEvent) UnmarshalWire(b []byte) error {
	*m = WindowEvent{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, protowire.ParseError(n)
			}
			msg := new(MessageRecord)
			if err := msg.UnmarshalWire(v); err != nil {
				return n, err
			}
			m.Messages = append(m.Messages, msg)
			return n, nil
		}
		return skip(num, typ, b)
	})
}

type SignInRequest struct {
	UserId    string // 1
	AvatarUrl string // 2
}

func (m *SignInRequest) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.UserId)
	b = appendString(b, 2, m.AvatarUrl)
	return b
}

func (m *SignInRequest) UnmarshalWire(b []byte) error {
	*m = SignInRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ == protowire.BytesType {
			switch num {
			case 1:
				return consumeString(b, &m.UserId)
			case 2:
				return consumeString(b, &m.AvatarUrl)
			}
		}
		return skip(num, typ, b)
	})
}

type SignInResponse struct {
	Token string // 1
}

func (m *SignInResponse) MarshalWire() []byte {
	return appendString(nil, 1, m.Token)
}

func (m *SignInResponse) UnmarshalWire(b []byte) error {
	*m = SignInResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			return consumeString(b, &m.Token)
		}
		return skip(num, typ, b)
	})
}

// Zero values are not written, as in proto3.
func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func consumeString(b []byte, dst *string) (int, error) {
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return n, protowire.ParseError(n)
	}
	*dst = v
	return n, nil
}

func skip(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	return n, protowire.ParseError(n)
}

// consumeFields walks b and hands every field value to fn, which returns the
// number of bytes it consumed.
func consumeFields(b []byte, fn func(num protowire.Number, typ protowire.Type, b []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("bad tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		m, err := fn(num, typ, b)
		if err != nil {
			return fmt.Errorf("field %d: %w", num, err)
		}
		b = b[m:]
	}
	return nil
}

// UserProfile is the stored identity of a signed-in user.
type UserProfile struct {
	UserId    string // 1
	AvatarUrl string // 2
	LastSeen  int64  // 3, unix nanos
}

func (m *UserProfile) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.UserId)
	b = appendString(b, 2, m.AvatarUrl)
	b = appendVarint(b, 3, uint64(m.LastSeen))
	return b
}

func (m *UserProfile) UnmarshalWire(b []byte) error {
	*m = UserProfile{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			return consumeString(b, &m.UserId)
		case num == 2 && typ == protowire.BytesType:
			return consumeString(b, &m.AvatarUrl)
		case num == 3 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.LastSeen = int64(v)
			return n, protowire.ParseError(n)
		}
		return skip(num, typ, b)
	})
}
