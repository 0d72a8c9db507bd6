// Package bbolt persists like counters in a bbolt database. Each like is a
// single read-modify-write inside one Update transaction, so concurrent
// likes do not lose updates.
package bbolt

import (
	"context"
	"fmt"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/heartmarshall/wordlens/internal/domain"
)

var bucketLikes = []byte("likes")

// Store is a bbolt-backed feedback store.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) a bbolt database at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt: open %s: %w", path, err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketLikes)
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("bolt: create bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordLike increments the counter for (word, candidate) by one.
func (s *Store) RecordLike(_ context.Context, word, candidate string) error {
	key := []byte(domain.FeedbackKey(word, candidate))

	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketLikes)
		n, err := decodeCount(b.Get(key))
		if err != nil {
			return err
		}
		return b.Put(key, []byte(strconv.Itoa(n+1)))
	})
	if err != nil {
		return fmt.Errorf("bolt: record like: %w", err)
	}
	return nil
}

// GetLikes returns the counter for (word, candidate), 0 if absent.
func (s *Store) GetLikes(_ context.Context, word, candidate string) (int, error) {
	key := []byte(domain.FeedbackKey(word, candidate))

	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		n, err = decodeCount(tx.Bucket(bucketLikes).Get(key))
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("bolt: get likes: %w", err)
	}
	return n, nil
}

// Ping runs an empty read transaction.
func (s *Store) Ping(_ context.Context) error {
	return s.db.View(func(*bolt.Tx) error { return nil })
}

func decodeCount(v []byte) (int, error) {
	if v == nil {
		return 0, nil
	}
	n, err := strconv.Atoi(string(v))
	if err != nil {
		return 0, fmt.Errorf("decode count %q: %w", v, err)
	}
	return n, nil
}
