package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// partialHashBytes is how much of a file's head the cheap pre-filter digests.
const partialHashBytes = 4096

// fullHashChunk is the streaming buffer size for whole-file hashing.
const fullHashChunk = 64 * 1024

// PartialHash computes a SHA256 digest of at most the first 4096 bytes of a
// file. Files smaller than that are hashed in full. Returns ok=false on any
// open or read failure; callers treat the file as not a duplicate candidate.
func PartialHash(path string) (string, bool) {
	file, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer file.Close()

	buf := make([]byte, partialHashBytes)
	n, err := io.ReadFull(file, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", false
	}

	sum := sha256.Sum256(buf[:n])
	return hex.EncodeToString(sum[:]), true
}

// FullHash streams an entire file through SHA256 in 64KB chunks.
// Same failure contract as PartialHash.
func FullHash(path string) (string, bool) {
	file, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer file.Close()

	hash := sha256.New()
	buf := make([]byte, fullHashChunk)
	if _, err := io.CopyBuffer(hash, file, buf); err != nil {
		return "", false
	}

	return hex.EncodeToString(hash.Sum(nil)), true
}
