package ioutils

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// AudioExtensions lists the file extensions picked up by FindAudioFiles.
var AudioExtensions = []string{".mp3", ".flac", ".ogg", ".m4a"}

// DefaultBackupSuffix is appended to backup copies of original files.
const DefaultBackupSuffix = ".orig"

// CopyFile copies a file from source to destination.
//
// The destination file is created with mode 0644 if it doesn't exist,
// or truncated if it does. The source file must exist and be readable.
//
// Example:
//
//	err := CopyFile(ctx, "/music/song.mp3", "/music/song.mp3.orig")
func CopyFile(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		destFile.Close()
		return err
	}
	return destFile.Close()
}

// BackupFile copies path next to itself with suffix appended and returns
// the backup path. An empty suffix means DefaultBackupSuffix.
//
// An existing backup is never overwritten, so the first backup keeps the
// untouched original across repeated runs.
func BackupFile(ctx context.Context, path, suffix string) (string, error) {
	if suffix == "" {
		suffix = DefaultBackupSuffix
	}
	dst := path + suffix

	if _, err := os.Stat(dst); err == nil {
		return dst, nil
	}
	if err := CopyFile(ctx, path, dst); err != nil {
		return "", fmt.Errorf("failed to back up %s: %w", path, err)
	}
	return dst, nil
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing. Parent directories are created.
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := EnsureDir(dir); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// IsAudioFile reports whether path has one of AudioExtensions.
func IsAudioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range AudioExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// FindAudioFiles expands inputs into a sorted, de-duplicated list of
// audio files.
//
// Files are taken as given, whatever their extension. Directories are
// walked recursively and only audio files are kept.
//
// Example:
//
//	files, err := FindAudioFiles(ctx, []string{"/music/Album", "/music/single.mp3"})
func FindAudioFiles(ctx context.Context, inputs []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", input, err)
		}

		if !info.IsDir() {
			add(filepath.Clean(input))
			continue
		}

		err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if !d.IsDir() && IsAudioFile(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", input, err)
		}
	}

	sort.Strings(files)
	return files, nil
}
