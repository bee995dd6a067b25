package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"homehive/pkg/logger"
	"homehive/pkg/model"
)

// Fixed storage keys, mirrored in the persisted JSON document.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyProfile      = "profile"
)

// Store owns credential persistence. Every read degrades to the zero value
// and every write failure is logged, never returned: a corrupt or
// inaccessible store means "logged out", not a crash.
type Store interface {
	SetTokens(access, refresh string)
	AccessToken() string
	RefreshToken() string
	SetProfile(user *model.User)
	Profile() *model.User
	Clear()
}

type fileDocument struct {
	AccessToken  string      `json:"access_token,omitempty"`
	RefreshToken string      `json:"refresh_token,omitempty"`
	Profile      *model.User `json:"profile,omitempty"`
}

// FileStore persists the token pair and cached profile as a JSON document
// with owner-only permissions.
type FileStore struct {
	path string
	log  *logger.Logger
}

func NewFileStore(path string, log *logger.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

func (s *FileStore) SetTokens(access, refresh string) {
	doc := s.read()
	doc.AccessToken = access
	// The backend only rotates the refresh token sometimes; keep the old one
	// when none is supplied.
	if refresh != "" {
		doc.RefreshToken = refresh
	}
	s.write(doc)
}

func (s *FileStore) AccessToken() string {
	return s.read().AccessToken
}

func (s *FileStore) RefreshToken() string {
	return s.read().RefreshToken
}

func (s *FileStore) SetProfile(user *model.User) {
	doc := s.read()
	doc.Profile = user
	s.write(doc)
}

func (s *FileStore) Profile() *model.User {
	return s.read().Profile
}

// Clear removes all persisted credential state. Idempotent.
func (s *FileStore) Clear() {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.log.Warn("Failed to clear session store", "path", s.path, "error", err)
	}
}

func (s *FileStore) read() fileDocument {
	var doc fileDocument

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("Failed to read session store", "path", s.path, "error", err)
		}
		return doc
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Warn("Session store is corrupt, treating as logged out", "path", s.path, "error", err)
		return fileDocument{}
	}

	return doc
}

func (s *FileStore) write(doc fileDocument) {
	data, err := json.Marshal(doc)
	if err != nil {
		s.log.Warn("Failed to encode session store", "error", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		s.log.Warn("Failed to create session store directory", "path", s.path, "error", err)
		return
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		s.log.Warn("Failed to write session store", "path", s.path, "error", err)
	}
}

// MemoryStore is an in-process Store for tests and short-lived commands.
type MemoryStore struct {
	access  string
	refresh string
	profile *model.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) SetTokens(access, refresh string) {
	s.access = access
	if refresh != "" {
		s.refresh = refresh
	}
}

func (s *MemoryStore) AccessToken() string  { return s.access }
func (s *MemoryStore) RefreshToken() string { return s.refresh }

func (s *MemoryStore) SetProfile(user *model.User) { s.profile = user }
func (s *MemoryStore) Profile() *model.User        { return s.profile }

func (s *MemoryStore) Clear() {
	s.access = ""
	s.refresh = ""
	s.profile = nil
}
