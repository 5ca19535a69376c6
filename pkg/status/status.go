// Copyright 2025 the Web-Test authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents the outcome of a remediation run for a file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusFixed                // Content was repaired and written back
	StatusUnchanged            // Content was already clean, nothing written
	StatusMissing              // Target file does not exist
	StatusFailed               // Load or save failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusFixed:
		return "fixed"
	case StatusUnchanged:
		return "unchanged"
	case StatusMissing:
		return "missing"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains metadata about a remediated file
type FileInfo struct {
	Path     string      // Path to the file
	Status   FileStatus  // Outcome of the run
	Fixes    int         // Number of fixes applied
	Size     int64       // File size in bytes after the run
	Mode     fs.FileMode // File permissions
	Checksum string      // Content hash of the result
	Error    error       // Any error associated with this file
}

// DecodeError reports a target whose bytes are not valid UTF-8. The pass
// only operates on text it can decode losslessly, so this aborts the run
// before anything is written.
type DecodeError struct {
	Path   string // file that failed to decode
	Offset int    // byte offset of the first invalid sequence
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("file %s is not valid UTF-8 (first invalid byte at offset %d)", e.Path, e.Offset)
}

// 🔍 firstInvalidOffset returns the byte offset of the first invalid UTF-8
// sequence, or -1 when the content is clean
func firstInvalidOffset(content []byte) int {
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRune(content[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// 📖 ReadTextFile reads the whole target as UTF-8 text, returning the
// original file mode so a rewrite can preserve it. A leading BOM is kept
// as content; the tool neither adds nor strips one.
func ReadTextFile(ctx context.Context, path string) (string, fs.FileMode, error) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("reading target file")

	info, err := os.Stat(path)
	if err != nil {
		return "", 0, errors.Errorf("reading target file: %w", err)
	}
	if info.IsDir() {
		return "", 0, errors.Errorf("reading target file: %s is a directory", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", 0, errors.Errorf("reading target file: %w", err)
	}

	if offset := firstInvalidOffset(content); offset >= 0 {
		return "", 0, errors.WithStack(&DecodeError{Path: path, Offset: offset})
	}

	return string(content), info.Mode(), nil
}

// 💾 WriteFileAtomic writes content to path via a temp file and rename, so
// the target is either fully rewritten or untouched. The original mode is
// reapplied to the replacement file.
func WriteFileAtomic(ctx context.Context, path string, content string, mode fs.FileMode) error {
	zerolog.Ctx(ctx).Debug().Str("path", path).Int("bytes", len(content)).Msg("writing target file")

	tempPath := path + ".tmp"

	// Write to temp file
	if err := os.WriteFile(tempPath, []byte(content), 0o644); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	if mode != 0 {
		if err := os.Chmod(tempPath, mode.Perm()); err != nil {
			os.Remove(tempPath)
			return errors.Errorf("setting file mode: %w", err)
		}
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// 🗄️ BackupFile copies path to a .bak sibling and returns the backup path.
// A missing source is not an error; the returned path is empty.
func BackupFile(ctx context.Context, path string) (string, error) {
	backupPath := path + ".bak"

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", nil
	} else if err != nil {
		return "", errors.Errorf("checking file existence: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Str("backup", backupPath).Msg("backing up target file")

	if err := copyFile(path, backupPath); err != nil {
		return "", errors.Errorf("creating backup: %w", err)
	}

	return backupPath, nil
}

// ♻️ RestoreFile puts the .bak sibling back in place of path and removes
// the backup.
func RestoreFile(ctx context.Context, path string) error {
	backupPath := path + ".bak"

	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return errors.Errorf("backup file does not exist")
	} else if err != nil {
		return errors.Errorf("checking backup existence: %w", err)
	}

	if err := copyFile(backupPath, path); err != nil {
		return errors.Errorf("restoring from backup: %w", err)
	}

	if err := os.Remove(backupPath); err != nil {
		return errors.Errorf("removing backup: %w", err)
	}

	return nil
}

// 🔍 Checksum generates a SHA-256 hash of the content
func Checksum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// Helper functions

func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer source.Close()

	destination, err := os.Create(dst)
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}
	defer destination.Close()

	if _, err := io.Copy(destination, source); err != nil {
		return errors.Errorf("copying file: %w", err)
	}

	return nil
}
