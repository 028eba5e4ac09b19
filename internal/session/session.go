// Package session persists the logged-in user between runs, the way the web
// client kept its token in localStorage. The token is only inspected for
// expiry here — it is validated for real by the backend on every request.
package session

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNoSession is returned by Get when nobody is logged in (or the stored
// token has expired and the session was discarded).
var ErrNoSession = errors.New("no valid session")

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	UserName string `json:"userName"`
}

type Session struct {
	User  User   `json:"user"`
	Token string `json:"access_token"`
}

// FileStore keeps the session as a JSON file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

// Get loads the persisted session. An expired or malformed session is
// cleared and reported as ErrNoSession, not surfaced as a parse error.
func (s *FileStore) Get() (*Session, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("read session: %w", err)
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		_ = s.Clear()
		return nil, ErrNoSession
	}
	if !TokenValid(sess.Token, time.Now()) {
		_ = s.Clear()
		return nil, ErrNoSession
	}
	return &sess, nil
}

func (s *FileStore) Save(sess *Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

type tokenClaims struct {
	Exp int64 `json:"exp"`
}

// TokenValid is a shallow expiry check on the JWT exp claim, not a security
// boundary: no signature verification happens client-side. A token without
// an exp claim is treated as still valid.
func TokenValid(token string, now time.Time) bool {
	if token == "" {
		return false
	}
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return false
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}
	var claims tokenClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return false
	}
	if claims.Exp != 0 && claims.Exp < now.Unix() {
		return false
	}
	return true
}
