package errors

import (
	"os"
	"strings"
	"unicode"
)

// ValidatePipReqName validates a --pip-req file name. Names feed directly
// into classification, so they must be simple basenames.
//
// The rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 256 characters
func ValidatePipReqName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "requirements file name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "requirements file name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "requirements file name contains control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidInput, "requirements file name cannot contain path separators")
	}
	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidInput, "requirements file name cannot contain traversal sequences")
	}

	return nil
}

// ValidateScanRoot validates the directory a scan starts from.
func ValidateScanRoot(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "scan root cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		return Wrap(ErrCodeInvalidPath, err, "scan root %s", path)
	}
	if !info.IsDir() {
		return New(ErrCodeInvalidPath, "scan root %s is not a directory", path)
	}

	return nil
}
