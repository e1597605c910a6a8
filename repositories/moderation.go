//go:generate go run go.uber.org/mock/mockgen -source=moderation.go -destination=../mocks/mock_moderation_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const moderationPrefix = "moderation:"

type IModerationRepository interface {
	StoreRecord(record ModerationRecord) error
	ListRecords(limit int) ([]ModerationRecord, error)
}

// ModerationRecord is one line of the moderation audit log.
type ModerationRecord struct {
	ID       uuid.UUID
	Action   string
	Target   string
	Issuer   string
	Reason   string
	Duration time.Duration
	At       time.Time
}

type ModerationRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewModerationRepository(db *badger.DB, log *slog.Logger) ModerationRepository {
	return ModerationRepository{db: db, log: log}
}

// StoreRecord persists a record in BadgerDB.
// The key is formatted as "moderation:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Keep two records of the same nanosecond apart.
func (m ModerationRepository) StoreRecord(record ModerationRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	// Keys only sort for non-negative nanoseconds
	if record.At.IsZero() || record.At.UnixNano() < 0 {
		record.At = time.Now().UTC()
	}
	key := fmt.Sprintf("%s%019d:%s", moderationPrefix, record.At.UnixNano(), record.ID)
	bytes, err := encodeRecord(record)
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// ListRecords returns at most limit records, newest first. A limit <= 0 returns everything.
func (m ModerationRepository) ListRecords(limit int) ([]ModerationRecord, error) {
	var records []ModerationRecord
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(moderationPrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Reverse iteration starts from the greatest key below the seek key
		seekKey := append([]byte(moderationPrefix), 0xFF)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(records) == limit {
				m.log.Debug(fmt.Sprintf("Maximum of %d records reached", limit))
				break
			}
			err := it.Item().Value(func(value []byte) error {
				record, err := decodeRecord(value)
				if err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func encodeRecord(r ModerationRecord) ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		"id":       r.ID.String(),
		"action":   r.Action,
		"target":   r.Target,
		"issuer":   r.Issuer,
		"reason":   r.Reason,
		"duration": r.Duration.String(),
		"at":       r.At.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

func decodeRecord(b []byte) (ModerationRecord, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(b, &s); err != nil {
		return ModerationRecord{}, err
	}
	fields := s.GetFields()
	id, err := uuid.Parse(fields["id"].GetStringValue())
	if err != nil {
		return ModerationRecord{}, err
	}
	duration, err := time.ParseDuration(fields["duration"].GetStringValue())
	if err != nil {
		return ModerationRecord{}, err
	}
	at, err := time.Parse(time.RFC3339Nano, fields["at"].GetStringValue())
	if err != nil {
		return ModerationRecord{}, err
	}
	return ModerationRecord{
		ID:       id,
		Action:   fields["action"].GetStringValue(),
		Target:   fields["target"].GetStringValue(),
		Issuer:   fields["issuer"].GetStringValue(),
		Reason:   fields["reason"].GetStringValue(),
		Duration: duration,
		At:       at.UTC(),
	}, nil
}
