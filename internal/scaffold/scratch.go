package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Scratch is a request-scoped working directory. Every request gets its own
// uniquely named directory under the scratch root; Release removes it.
type Scratch struct {
	Dir string
}

// AcquireScratch creates a fresh scratch directory under root (os.TempDir when empty).
func AcquireScratch(root string) (*Scratch, error) {
	if root == "" {
		root = os.TempDir()
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("scratch root: %w", err)
	}
	dir := filepath.Join(root, "vca-"+uuid.NewString())
	if err := os.Mkdir(dir, 0o700); err != nil {
		return nil, fmt.Errorf("scratch dir: %w", err)
	}
	return &Scratch{Dir: dir}, nil
}

// Release recursively deletes the scratch directory. Safe to call more than once.
func (s *Scratch) Release() error {
	if s == nil || s.Dir == "" {
		return nil
	}
	return os.RemoveAll(s.Dir)
}
