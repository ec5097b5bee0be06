package utils

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeToUTF8 normalizes dataset bytes to UTF-8.
// It supports:
// - UTF-8 (with or without BOM)
// - UTF-16 LE/BE with BOM
func decodeToUTF8(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return data, nil
	}

	// Handle UTF-8 BOM
	if bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		return data[3:], nil
	}

	var endian unicode.Endianness
	switch {
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		endian = unicode.BigEndian
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		endian = unicode.LittleEndian
	default:
		return data, nil
	}

	r := transform.NewReader(bytes.NewReader(data), unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder())
	return io.ReadAll(r)
}

// ReadText reads a file and returns its content as UTF-8.
func ReadText(path string) ([]byte, error) {
	data, err := os.ReadFile(ExpandPath(path))
	if err != nil {
		return nil, err
	}
	return decodeToUTF8(data)
}

// ExpandPath replaces leading "~" with user home dir
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// WriteFileAtomic writes through a temp file in the same directory so a
// crash never leaves a half-written file behind.
func WriteFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
