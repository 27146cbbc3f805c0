package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
)

// Document is the serialized form of a persisted credential. An empty
// document (no token) means no session.
type Document struct {
	UserID    string    `json:"user_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Token     string    `json:"token,omitempty"`
	IssuedAt  time.Time `json:"issued_at,omitzero"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// FileStore persists the last active credential as a single JSON document,
// overwritten on every session transition and read once at startup.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at path.
// If path is empty, uses ~/.recipehub/session.json
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, ".recipehub", "session.json")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	log.Debug().Str("path", path).Msg("session store initialized")

	return &FileStore{path: path}, nil
}

// Save writes the credential, or clears the store when cred is nil.
// Overwrite semantics: the document is replaced atomically via a temp file
// and rename.
func (s *FileStore) Save(cred *Credential) error {
	doc := Document{}
	if cred != nil {
		doc = Document{
			UserID:    cred.UserID,
			Email:     cred.Email,
			Token:     cred.Token,
			IssuedAt:  cred.IssuedAt,
			ExpiresAt: cred.ExpiresAt,
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	if err := os.Rename(tempPath, s.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// Load reads the persisted credential. Missing, malformed, or incomplete
// data yields nil — a logged-out state — never an error: validity is the
// caller's concern and is re-checked against the wall clock, not trusted
// from storage.
func (s *FileStore) Load() *Credential {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", s.path).Msg("failed to read session file")
		}
		return nil
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("corrupt session file, discarding")
		return nil
	}

	if doc.Token == "" {
		return nil
	}

	if !doc.ExpiresAt.After(doc.IssuedAt) {
		log.Warn().Str("path", s.path).Msg("session file has invalid expiry, discarding")
		return nil
	}

	return &Credential{
		UserID:    doc.UserID,
		Email:     doc.Email,
		Token:     doc.Token,
		IssuedAt:  doc.IssuedAt,
		ExpiresAt: doc.ExpiresAt,
	}
}
