package models

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
)

// UploadAttempt is one user-initiated selection-through-classification
// cycle. It lives in memory only: it is discarded on reset or when a new
// file is selected. The preview handle keeps the selected file open so the
// UI can re-read it; Close releases it.
type UploadAttempt struct {
	Path      string
	MediaType string
	Data      []byte

	preview *os.File
}

// NewUploadAttempt opens the file at path, reads its contents and derives
// the declared media type from the file extension. The caller owns the
// returned attempt and must Close it.
func NewUploadAttempt(path string) (*UploadAttempt, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return &UploadAttempt{
		Path:      path,
		MediaType: mime.TypeByExtension(filepath.Ext(path)),
		Data:      data,
		preview:   f,
	}, nil
}

// Close releases the preview handle. Safe to call more than once.
func (a *UploadAttempt) Close() error {
	if a == nil || a.preview == nil {
		return nil
	}
	err := a.preview.Close()
	a.preview = nil
	return err
}
