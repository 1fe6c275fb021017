package repository

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/georgeerol/business-search-service/internal/domain"
)

const (
	// recordKeyPrefix namespaces business record keys.
	recordKeyPrefix = "biz:"

	// recordIDSequence is the key of the ID allocation sequence.
	recordIDSequence = "biz_id_seq"

	// sequenceBandwidth is how many IDs a sequence lease reserves at once.
	sequenceBandwidth = 128
)

// BadgerRepository is a record store backed by an embedded Badger database.
// Records are stored as JSON under fixed-width keys; Find scans the record
// prefix and applies the query predicates record by record.
type BadgerRepository struct {
	db  *badger.DB
	seq *badger.Sequence
	log zerolog.Logger
}

// OpenBadger opens (creating if needed) a Badger database at path.
// An empty path opens an in-memory database, which tests use.
func OpenBadger(path string, log zerolog.Logger) (*BadgerRepository, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(path)
	}
	// Badger's own chatter goes through zerolog at debug level.
	opts.Logger = badgerLogger{log: log}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", path, err)
	}

	seq, err := db.GetSequence([]byte(recordIDSequence), sequenceBandwidth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open id sequence: %w", err)
	}

	return &BadgerRepository{db: db, seq: seq, log: log}, nil
}

// Close releases the ID sequence lease and closes the database.
func (r *BadgerRepository) Close() error {
	if err := r.seq.Release(); err != nil {
		r.log.Warn().Err(err).Msg("Failed to release ID sequence")
	}
	return r.db.Close()
}

// Find implements domain.BusinessRepository.
func (r *BadgerRepository) Find(ctx context.Context, query domain.RecordQuery) ([]domain.BusinessRecord, error) {
	matched := make([]domain.BusinessRecord, 0)
	err := r.scan(ctx, func(record domain.BusinessRecord) {
		if matchesQuery(record, query) {
			matched = append(matched, record)
		}
	})
	if err != nil {
		return nil, err
	}
	return matched, nil
}

// All implements domain.BusinessRepository.
func (r *BadgerRepository) All(ctx context.Context) ([]domain.BusinessRecord, error) {
	records := make([]domain.BusinessRecord, 0)
	err := r.scan(ctx, func(record domain.BusinessRecord) {
		records = append(records, record)
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Count implements domain.BusinessRepository.
func (r *BadgerRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.scan(ctx, func(domain.BusinessRecord) {
		count++
	})
	return count, err
}

// Put implements domain.BusinessWriter. Records without an ID get the next
// sequence value.
func (r *BadgerRepository) Put(_ context.Context, records []domain.BusinessRecord) error {
	wb := r.db.NewWriteBatch()
	defer wb.Cancel()

	for _, record := range records {
		if record.ID == 0 {
			next, err := r.seq.Next()
			if err != nil {
				return fmt.Errorf("allocate record id: %w", err)
			}
			// Sequence values start at 0; record IDs start at 1.
			record.ID = int64(next) + 1
		}

		value, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("encode record %d: %w", record.ID, err)
		}
		if err := wb.Set(recordKey(record.ID), value); err != nil {
			return fmt.Errorf("write record %d: %w", record.ID, err)
		}
	}
	return wb.Flush()
}

// scan iterates every record in the store, honoring context cancellation
// between items.
func (r *BadgerRepository) scan(ctx context.Context, visit func(domain.BusinessRecord)) error {
	return r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(recordKeyPrefix)

		iter := txn.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var record domain.BusinessRecord
			err := iter.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			})
			if err != nil {
				return fmt.Errorf("decode record %q: %w", iter.Item().Key(), err)
			}
			visit(record)
		}
		return nil
	})
}

// recordKey builds the fixed-width key for a record ID so keys sort in ID
// order.
func recordKey(id int64) []byte {
	key := make([]byte, len(recordKeyPrefix)+8)
	copy(key, recordKeyPrefix)
	binary.BigEndian.PutUint64(key[len(recordKeyPrefix):], uint64(id))
	return key
}

// badgerLogger adapts Badger's logger interface onto zerolog.
type badgerLogger struct {
	log zerolog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn().Msgf(format, args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}

// Ensure interfaces are implemented at compile time.
var (
	_ domain.BusinessRepository = (*BadgerRepository)(nil)
	_ domain.BusinessWriter     = (*BadgerRepository)(nil)
)
