// Package media stores uploaded files beneath a configured media root.
package media

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	admissionPhotoPrefix = "admissions/photos"
	galleryPrefix        = "gallery"
)

var unsafeNamePattern = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Store writes uploads to the local filesystem.
type Store struct {
	root string
}

// NewStore opens a media store rooted at root, creating it when missing.
func NewStore(root string) (*Store, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, fmt.Errorf("media root is required")
	}
	cleanRoot := filepath.Clean(root)
	if err := os.MkdirAll(cleanRoot, 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	return &Store{root: cleanRoot}, nil
}

// Root returns the filesystem directory backing the store.
func (s *Store) Root() string {
	if s == nil {
		return ""
	}
	return s.root
}

// SaveAdmissionPhoto stores an applicant photo under a date-partitioned
// directory and returns its media-relative path.
func (s *Store) SaveAdmissionPhoto(filename string, content io.Reader, now time.Time) (string, error) {
	dir := path.Join(admissionPhotoPrefix, now.UTC().Format("2006/01/02"))
	return s.save(dir, filename, content)
}

// SaveGalleryImage stores a gallery upload and returns its media-relative path.
func (s *Store) SaveGalleryImage(filename string, content io.Reader) (string, error) {
	return s.save(galleryPrefix, filename, content)
}

// Remove deletes one stored file by its media-relative path. Missing files
// are not an error.
func (s *Store) Remove(relPath string) error {
	if s == nil || s.root == "" {
		return fmt.Errorf("media store is not configured")
	}
	relPath = strings.TrimSpace(relPath)
	if relPath == "" {
		return nil
	}
	full, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove media file: %w", err)
	}
	return nil
}

// Open opens one stored file by its media-relative path.
func (s *Store) Open(relPath string) (*os.File, error) {
	if s == nil || s.root == "" {
		return nil, fmt.Errorf("media store is not configured")
	}
	full, err := s.resolve(relPath)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("open media file: %w", err)
	}
	return file, nil
}

func (s *Store) save(dir, filename string, content io.Reader) (string, error) {
	if s == nil || s.root == "" {
		return "", fmt.Errorf("media store is not configured")
	}
	if content == nil {
		return "", fmt.Errorf("content is required")
	}
	name := SanitizeFilename(filename)
	targetDir := filepath.Join(s.root, filepath.FromSlash(dir))
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	// Collisions get a numeric suffix before the extension.
	candidate := name
	ext := path.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(filepath.Join(targetDir, candidate)); os.IsNotExist(err) {
			break
		}
		candidate = stem + "-" + strconv.Itoa(counter) + ext
	}

	full := filepath.Join(targetDir, candidate)
	file, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	if _, err := io.Copy(file, content); err != nil {
		_ = file.Close()
		_ = os.Remove(full)
		return "", fmt.Errorf("write media file: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close media file: %w", err)
	}
	return path.Join(dir, candidate), nil
}

func (s *Store) resolve(relPath string) (string, error) {
	clean := path.Clean("/" + strings.TrimSpace(relPath))
	if clean == "/" {
		return "", fmt.Errorf("media path is required")
	}
	return filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}

// SanitizeFilename strips any directory component and replaces unsafe
// characters, falling back to "upload" for unusable names.
func SanitizeFilename(filename string) string {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/"))
	name = unsafeNamePattern.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-.")
	if name == "" {
		return "upload"
	}
	if len(name) > 120 {
		ext := path.Ext(name)
		// An oversized extension is no extension worth keeping.
		if len(ext) >= 120 {
			ext = ""
		}
		name = name[:120-len(ext)] + ext
	}
	return name
}
