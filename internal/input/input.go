package input

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"adventofcode2021/internal/logging"
)

// ErrMissing is returned when the input file does not exist.
var ErrMissing = errors.New("input file not found")

// Load reads and normalises the input file at path.
func Load(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrMissing, path)
	}
	if err != nil {
		return "", err
	}
	defer f.Close()

	b, err := Decode(f)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	logging.FromContext(ctx).Debug("Loaded input",
		zap.String("path", path),
		zap.Int("bytes", len(b)),
		zap.String("fingerprint", Fingerprint(b)))
	return string(b), nil
}

// Decode reads r to completion, dropping any byte order mark, converting
// UTF-16 to UTF-8 and CRLF to LF.
func Decode(r io.Reader) ([]byte, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	b, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return nil, err
	}
	return bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n")), nil
}

// Fingerprint returns a short hex fingerprint of b.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:10])
}
