package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// FolderKeeper ensures one working folder per project under a root directory.
// A zero value (empty root) is a no-op.
type FolderKeeper struct {
	root string
}

func NewFolderKeeper(root string) FolderKeeper {
	return FolderKeeper{root: root}
}

// Ensure creates the folder for name if missing and returns its path.
func (f FolderKeeper) Ensure(name string) (string, error) {
	if f.root == "" {
		return "", nil
	}
	dir := filepath.Join(f.root, SafeFolderName(name))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure project folder %q: %w", name, err)
	}
	return dir, nil
}

// SafeFolderName drops characters that are invalid in file names.
func SafeFolderName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case strings.ContainsRune(`<>:"/\|?*`, r), unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, name)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "_"
	}
	return cleaned
}
