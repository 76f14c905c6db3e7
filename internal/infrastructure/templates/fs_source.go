package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"billing_saas/internal/usecase/interfaces"
)

const defaultTemplatesDir = "templates"

// FSTemplateSource loads template documents from a directory on disk.
//
// TEMPLATES_DIR overrides the default ./templates lookup.
type FSTemplateSource struct {
	dir string
}

var _ interfaces.ITemplateSource = (*FSTemplateSource)(nil)

func NewFSTemplateSource() *FSTemplateSource {
	dir := os.Getenv("TEMPLATES_DIR")
	if dir == "" {
		dir = defaultTemplatesDir
	}
	return &FSTemplateSource{dir: dir}
}

func (s *FSTemplateSource) Load(name string) (string, error) {
	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", interfaces.ErrTemplateNotFound, name)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}
