package memory

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Marshal encodes the session as its JSON document.
func (s *Session) Marshal() ([]byte, error) {
	s.normalize()
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgMarshalSession, err)
	}
	return data, nil
}

// Unmarshal decodes a session document.
func Unmarshal(data []byte) (*Session, error) {
	s := NewSession()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgUnmarshalSession, err)
	}
	s.normalize()
	return s, nil
}

// SaveFile writes the session document to path, creating parent
// directories as needed.
func (s *Session) SaveFile(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadFile replaces the session with the document at path. A missing file
// leaves the session untouched and is not an error.
func (s *Session) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	loaded, err := Unmarshal(data)
	if err != nil {
		return err
	}
	s.History = loaded.History
	s.Context = loaded.Context
	return nil
}
