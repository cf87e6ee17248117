package vault

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

const (
	DefaultExtension = ".md"

	// TempPrefix marks in-flight atomic writes; watchers ignore these files.
	TempPrefix = ".tmp-"
)

// FS is a Store backed by a directory on disk.
type FS struct {
	root string
	ext  string
}

var _ Store = (*FS)(nil)

// NewFS opens the vault at root. An empty ext means DefaultExtension.
func NewFS(root, ext string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("vault.NewFS: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("vault.NewFS: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault.NewFS: %s is not a directory", abs)
	}
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &FS{root: abs, ext: ext}, nil
}

func (s *FS) Root() string { return s.root }

func (s *FS) IsDocument(p string) bool {
	base := path.Base(filepath.ToSlash(p))
	return strings.HasSuffix(base, s.ext) && !strings.HasPrefix(base, TempPrefix)
}

func (s *FS) Read(ctx context.Context, p string) (string, error) {
	abs, err := s.resolve(p)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("vault.Read %s: %w", p, err)
	}
	return string(b), nil
}

func (s *FS) Write(ctx context.Context, p, content string) error {
	abs, err := s.resolve(p)
	if err != nil {
		return err
	}
	perm := fs.FileMode(0o644)
	if info, err := os.Stat(abs); err == nil {
		perm = info.Mode().Perm()
	}
	if err := atomicWriteFile(abs, []byte(content), perm); err != nil {
		return fmt.Errorf("vault.Write %s: %w", p, err)
	}
	return nil
}

func (s *FS) List(ctx context.Context) ([]string, error) {
	var docs []string
	err := filepath.WalkDir(s.root, func(abs string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if abs != s.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !s.IsDocument(d.Name()) {
			return nil
		}
		rel, err := s.Rel(abs)
		if err != nil {
			return err
		}
		docs = append(docs, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("vault.List: %w", err)
	}
	sort.Strings(docs)
	return docs, nil
}

func (s *FS) Rel(abs string) (string, error) {
	rel, err := filepath.Rel(s.root, abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrOutsideVault, abs)
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("%w: %s", ErrOutsideVault, abs)
	}
	return rel, nil
}

// Clean normalises a document path. It rejects empty paths, the root itself and
// anything escaping the vault.
func Clean(p string) (string, error) {
	p = strings.TrimSpace(filepath.ToSlash(p))
	if p == "" {
		return "", ErrInvalidPath
	}
	if c := path.Clean(p); c == ".." || strings.HasPrefix(c, "../") {
		return "", fmt.Errorf("%w: %s", ErrOutsideVault, p)
	}
	c := strings.TrimPrefix(path.Clean("/"+p), "/")
	if c == "" {
		return "", ErrInvalidPath
	}
	return c, nil
}

func (s *FS) resolve(p string) (string, error) {
	c, err := Clean(p)
	if err != nil {
		return "", err
	}
	if !s.IsDocument(c) {
		return "", fmt.Errorf("%w: %s", ErrNotADocument, c)
	}
	return filepath.Join(s.root, filepath.FromSlash(c)), nil
}

func atomicWriteFile(p string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(p)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, TempPrefix+"*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmp, perm)
	}
	if err != nil {
		_ = os.Remove(tmp)
		return err
	}
	// Rename is atomic on same filesystem.
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
