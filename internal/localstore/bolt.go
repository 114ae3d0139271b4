package localstore

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("pehchaan")

// Bolt is the file-backed Store. A single bucket holds every key, so one
// file on disk survives restarts the way localStorage survives reloads.
type Bolt struct {
	db *bolt.DB
}

func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("localstore: failed to open %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("localstore: failed to create bucket: %w", err)
	}

	return &Bolt{db: db}, nil
}

func (s *Bolt) Get(key string, v any) (bool, error) {
	var raw []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		if data := tx.Bucket(bucketName).Get([]byte(key)); data != nil {
			raw = append(raw, data...)
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("localstore: failed to read key '%s': %w", key, err)
	}

	if raw == nil {
		return false, nil
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("localstore: malformed value under key '%s': %w", key, err)
	}

	return true, nil
}

func (s *Bolt) Put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("localstore: failed to marshal value for key '%s': %w", key, err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("localstore: failed to write key '%s': %w", key, err)
	}

	return nil
}

func (s *Bolt) Delete(key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("localstore: failed to delete key '%s': %w", key, err)
	}

	return nil
}

func (s *Bolt) Close() error {
	return s.db.Close()
}
