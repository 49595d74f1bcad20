package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/taskdeck/tui-go/internal/model"
)

const (
	// TokenFileName holds the opaque bearer token
	TokenFileName = "token"

	// UserFileName holds the serialized user record
	UserFileName = "user.json"
)

// Store persists the auth token and user identity across runs. Token and
// user are always written and cleared together; the two entries never
// legitimately exist without each other.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save persists the user and token. Subsequent Token/CurrentUser calls
// reflect them immediately and across restarts.
func (s *Store) Save(user *model.User, token string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.tokenPath(), []byte(token), 0600); err != nil {
		return err
	}
	return os.WriteFile(s.userPath(), data, 0600)
}

// Token returns the persisted token, or "" if absent
func (s *Store) Token() string {
	data, err := os.ReadFile(s.tokenPath())
	if err != nil {
		return ""
	}
	return string(data)
}

// CurrentUser returns the persisted user. Missing or corrupt data reads as
// nil, never an error.
func (s *Store) CurrentUser() *model.User {
	data, err := os.ReadFile(s.userPath())
	if err != nil {
		return nil
	}
	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil
	}
	return &user
}

// IsAuthenticated reports whether a token is present. No expiry or signature
// check is performed client side; the server is the authority.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// Logout removes both persisted entries. Idempotent.
func (s *Store) Logout() {
	os.Remove(s.tokenPath())
	os.Remove(s.userPath())
}

func (s *Store) tokenPath() string {
	return filepath.Join(s.dir, TokenFileName)
}

func (s *Store) userPath() string {
	return filepath.Join(s.dir, UserFileName)
}
