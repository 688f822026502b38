// Package storage holds the file-backed preview store used by the job
// posting wizard's image attachments.
package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalPreviewStore implements wizard.Previewer on the local filesystem.
// Acquire creates the preview file and returns its public ref; Release
// removes it. A preview left unreleased is a leak, so the wizard releases
// on image removal and on draft teardown.
type LocalPreviewStore struct {
	BasePath string
	BaseURL  string
}

func NewLocalPreviewStore(basePath, baseURL string) *LocalPreviewStore {
	return &LocalPreviewStore{BasePath: basePath, BaseURL: baseURL}
}

func (s *LocalPreviewStore) AcquirePreview(ctx context.Context, draftID, name string) (string, error) {
	rel := filepath.Join("previews", draftID, uuid.NewString()+"_"+filepath.Base(name))
	path := filepath.Join(s.BasePath, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return s.BaseURL + "/" + filepath.ToSlash(rel), nil
}

func (s *LocalPreviewStore) ReleasePreview(ctx context.Context, ref string) error {
	rel := strings.TrimPrefix(ref, s.BaseURL+"/")
	path := filepath.Join(s.BasePath, filepath.FromSlash(rel))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
