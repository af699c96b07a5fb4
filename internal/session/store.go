package session

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/vats147/Inventory-mobile-app/internal/model"
)

var bucketSession = []byte("session")

const (
	keyToken    = "authToken"
	keyUserInfo = "userInfo"
	keyDemoMode = "demoMode"
)

// Store is the persisted local session state: the auth token, the signed-in
// user profile and the demo-mode flag. It is a plain key-value store with a
// single reader/writer assumption; there is no transactional coupling
// between keys.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the session database at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)
		return err
	}); err != nil {
		return nil, fmt.Errorf("create session bucket: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value for key, reporting absence explicitly.
func (s *Store) Get(key string) (string, bool, error) {
	var value []byte
	if err := s.db.View(func(tx *bolt.Tx) error {
		value = tx.Bucket(bucketSession).Get([]byte(key))
		return nil
	}); err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}

	if value == nil {
		return "", false, nil
	}
	return string(value), true, nil
}

func (s *Store) Set(key, value string) error {
	if err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Put([]byte(key), []byte(value))
	}); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(key string) error {
	if err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Delete([]byte(key))
	}); err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

// Token returns the stored bearer token, or "" when absent. A missing token
// is not an error: requests simply go out without an Authorization header.
func (s *Store) Token() (string, error) {
	token, _, err := s.Get(keyToken)
	return token, err
}

func (s *Store) SetToken(token string) error {
	return s.Set(keyToken, token)
}

// User returns the stored profile, reporting absence explicitly.
func (s *Store) User() (model.UserProfile, bool, error) {
	raw, ok, err := s.Get(keyUserInfo)
	if err != nil || !ok {
		return model.UserProfile{}, false, err
	}

	var user model.UserProfile
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return model.UserProfile{}, false, fmt.Errorf("decode user info: %w", err)
	}
	return user, true, nil
}

func (s *Store) SetUser(user model.UserProfile) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user info: %w", err)
	}
	return s.Set(keyUserInfo, string(raw))
}

// DemoMode reports whether all data operations should be served from the
// local fixture instead of the network.
func (s *Store) DemoMode() (bool, error) {
	value, ok, err := s.Get(keyDemoMode)
	if err != nil {
		return false, err
	}
	return ok && value == "true", nil
}

// SetDemoMode turns the demo flag on or off. The flag is sticky: logout
// does not touch it.
func (s *Store) SetDemoMode(on bool) error {
	if !on {
		return s.Remove(keyDemoMode)
	}
	return s.Set(keyDemoMode, "true")
}

// Clear removes the token and user profile. The demo flag survives until
// explicitly reset.
func (s *Store) Clear() error {
	if err := s.Remove(keyToken); err != nil {
		return err
	}
	return s.Remove(keyUserInfo)
}
