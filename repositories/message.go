//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"talker/domain/chat"
	pb "talker/proto/chatlog"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const sequenceBandwidth = 100

type IMessageRepository interface {
	Append(logID string, record chat.Record, at time.Time) (chat.Message, error)
	TopN(logID string, n int) ([]chat.Message, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger

	mu        sync.Mutex
	sequences map[string]*badger.Sequence
	latest    map[string]time.Time // newest createdAt handed out per log
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) *MessageRepository {
	return &MessageRepository{
		db:        db,
		log:       log,
		sequences: make(map[string]*badger.Sequence),
		latest:    make(map[string]time.Time),
	}
}

// Append persists a record in BadgerDB.
// The key is formatted as "msg:{log_id}:{timestamp_padded}:{seq_padded}" so that
// a lexicographical scan follows createdAt then insertion order. Two messages
// stamped with the same nanosecond are told apart by the per-log sequence.
// A clock stepping backwards never stamps a message before the newest one.
func (m *MessageRepository) Append(logID string, record chat.Record, at time.Time) (chat.Message, error) {
	seq, at, err := m.next(logID, at.UTC())
	if err != nil {
		return chat.Message{}, err
	}
	message := chat.Message{
		ID:              uuid.New().String(),
		Text:            record.Text,
		AuthorID:        record.AuthorID,
		AuthorAvatarURL: record.AuthorAvatarURL,
		CreatedAt:       lo.ToPtr(at),
		Seq:             seq,
	}
	key := messageKey(logID, at, seq)
	value := pb.FromMessage(logID, message).MarshalWire()
	if err = m.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	}); err != nil {
		return chat.Message{}, err
	}
	return message, nil
}

// TopN returns at most n messages of logID, newest first, using a reverse
// prefix scan.
func (m *MessageRepository) TopN(logID string, n int) ([]chat.Message, error) {
	if n <= 0 {
		return []chat.Message{}, nil
	}
	var values [][]byte
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("msg:%s:", logID))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		// Every padded key of the log sorts before prefix+0xff
		for it.Seek(append(prefix, 0xff)); it.ValidForPrefix(prefix); it.Next() {
			if len(values) == n {
				break
			}
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	messages := make([]chat.Message, 0, len(values))
	for _, b := range values {
		var record pb.MessageRecord
		if err = record.UnmarshalWire(b); err != nil {
			return nil, err
		}
		messages = append(messages, record.ToMessage())
	}
	return messages, nil
}

// Close releases the leased sequence ranges.
func (m *MessageRepository) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for logID, seq := range m.sequences {
		if err := seq.Release(); err != nil {
			m.log.Warn("Unable to release sequence", "log_id", logID, "error", err)
		}
		delete(m.sequences, logID)
	}
}

// next hands out the sequence and the createdAt of a new message of logID.
func (m *MessageRepository) next(logID string, at time.Time) (uint64, time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seq, ok := m.sequences[logID]
	if !ok {
		latest, err := m.newestStamp(logID)
		if err != nil {
			return 0, at, err
		}
		seq, err = m.db.GetSequence([]byte("seq:"+logID), sequenceBandwidth)
		if err != nil {
			return 0, at, err
		}
		m.sequences[logID] = seq
		m.latest[logID] = latest
	}
	n, err := seq.Next()
	if err != nil {
		return 0, at, err
	}
	if latest := m.latest[logID]; at.Before(latest) {
		m.log.Warn("Clock went backwards, keeping the log order", "log_id", logID, "at", at, "latest", latest)
		at = latest
	}
	m.latest[logID] = at
	// Sequences start at zero, which the wire format does not carry
	return n + 1, at, nil
}

// newestStamp reads the createdAt of the newest stored message of logID,
// zero when the log is empty.
func (m *MessageRepository) newestStamp(logID string) (time.Time, error) {
	var latest time.Time
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("msg:%s:", logID))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.Prefix = prefix
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		it.Seek(append(prefix, 0xff))
		if !it.ValidForPrefix(prefix) {
			return nil
		}
		key := it.Item().Key()[len(prefix):]
		nanos, err := strconv.ParseInt(string(key[:19]), 10, 64)
		if err != nil {
			return fmt.Errorf("malformed message key %q: %w", it.Item().Key(), err)
		}
		latest = time.Unix(0, nanos).UTC()
		return nil
	})
	return latest, err
}

func messageKey(logID string, at time.Time, seq uint64) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d:%020d", logID, at.UnixNano(), seq))
}
