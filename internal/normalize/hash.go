package normalize

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// FileHash computes the hex-encoded SHA-256 of the file at path. Used by the
// plan subcommand to identify input files across re-runs.
func FileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for hash: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
