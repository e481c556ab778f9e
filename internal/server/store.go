package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

// ErrNotFound indicates the requested upload does not exist.
var ErrNotFound = errors.New("file not found")

// unsafeName matches characters replaced in uploaded file names.
var unsafeName = regexp.MustCompile(`[^\w\-. ()\[\]]`)

// spreadsheetExt lists the upload extensions offered for conversion.
var spreadsheetExt = map[string]bool{
	".xlsx": true,
	".xls":  true,
	".csv":  true,
}

// FileInfo describes a stored upload.
type FileInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// Store keeps uploaded spreadsheets in a single directory.
type Store struct {
	dir string
	now func() time.Time
}

// NewStore creates the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, now: time.Now}, nil
}

// List returns the stored spreadsheets sorted by name.
func (s *Store) List() ([]FileInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	files := []FileInfo{}
	for _, e := range entries {
		if e.IsDir() || !spreadsheetExt[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{Name: e.Name(), Size: info.Size()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// Save stores r under a unique, sanitized name and returns that name.
func (s *Store) Save(original string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d_%s", s.now().UnixMilli(), sanitizeName(original))

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	return name, f.Close()
}

// Path returns the on-disk path of a stored file.
func (s *Store) Path(name string) (string, error) {
	base := filepath.Base(name)
	if name == "" || base != name || base == "." || base == ".." {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	path := filepath.Join(s.dir, base)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return path, nil
}

// Delete removes a stored file.
func (s *Store) Delete(name string) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

func sanitizeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" {
		name = "upload"
	}
	return unsafeName.ReplaceAllString(name, "_")
}
