package store

import (
	"encoding/binary"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	. "src.graphcalc.dev/pkg/store/storedefs"
)

const bucketRecord = "functions"

var initDB = map[string](func(*bolt.Tx) error){
	"initialize function record table": func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketRecord))
		return err
	},
}

// DBStore is a Store backed by a bbolt database. Records are keyed by their
// sequence number, so they are read back in the order they were added.
type DBStore struct {
	db   *bolt.DB
	path string
}

// NewDBStore opens or creates the database at path.
func NewDBStore(path string) (*DBStore, error) {
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for name, initFn := range initDB {
			if err := initFn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	logger.Printf("opened database %s", path)
	return &DBStore{db, path}, nil
}

// Name returns the path of the database.
func (s *DBStore) Name() string { return s.path }

// Close closes the database.
func (s *DBStore) Close() error { return s.db.Close() }

// AddRecord saves a record under the next sequence number.
func (s *DBStore) AddRecord(r Record) error {
	_, err := s.AddRecordSeq(r)
	return err
}

// AddRecordSeq is like AddRecord, but also returns the sequence number the
// record was saved under.
func (s *DBStore) AddRecordSeq(r Record) (int, error) {
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketRecord))
		var err error
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), []byte(r.String()))
	})
	return int(seq), err
}

// Records returns all records in sequence order.
func (s *DBStore) Records() ([]Record, error) {
	var records []Record
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketRecord))
		return b.ForEach(func(k, v []byte) error {
			r, err := ParseRecord(string(v))
			if err != nil {
				return fmt.Errorf("record %d: %w", unmarshalSeq(k), err)
			}
			records = append(records, r)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
