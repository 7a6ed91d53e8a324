package persistence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/osse101/QuestTown_Go/internal/domain"
)

// FileProvider stores each blob as one file under a directory.
// Writes go to a temp file that is renamed over the target.
type FileProvider struct {
	dir string
}

// NewFileProvider creates dir if needed and returns a provider rooted there
func NewFileProvider(dir string) (*FileProvider, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New(ErrMsgPathRequired)
	}
	dir = filepath.Clean(dir)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &FileProvider{dir: dir}, nil
}

// Path returns the file a key is stored in
func (p *FileProvider) Path(key string) string {
	return filepath.Join(p.dir, url.QueryEscape(key)+blobFileExt)
}

func (p *FileProvider) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	blob, err := os.ReadFile(p.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ErrMsgFailedToReadBlob, key, err)
	}
	return blob, nil
}

func (p *FileProvider) Save(ctx context.Context, key string, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(p.dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("%s %q: %w", ErrMsgFailedToWriteBlob, key, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		return fmt.Errorf("%s %q: %w", ErrMsgFailedToWriteBlob, key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%s %q: %w", ErrMsgFailedToWriteBlob, key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s %q: %w", ErrMsgFailedToWriteBlob, key, err)
	}
	if err := os.Chmod(tmpName, filePermissions); err != nil {
		return fmt.Errorf("%s %q: %w", ErrMsgFailedToWriteBlob, key, err)
	}
	if err := os.Rename(tmpName, p.Path(key)); err != nil {
		return fmt.Errorf("%s %q: %w", ErrMsgFailedToWriteBlob, key, err)
	}
	return nil
}

// Ping verifies the data directory is still there
func (p *FileProvider) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(p.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", p.dir)
	}
	return nil
}

func (p *FileProvider) Close() error {
	return nil
}
