package utils

import (
	"encoding/hex"
	"hash"
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// checksumPool is a package-level pool of reusable BLAKE2b-256 hashers.
var checksumPool = sync.Pool{
	New: func() any {
		// New256 only fails for keys longer than 64 bytes.
		h, _ := blake2b.New256(nil)
		return h
	},
}

// Checksum computes the hex-encoded BLAKE2b-256 digest of data using a
// hasher pulled from the package pool.
//
// Example usage:
//
//	sum := utils.Checksum(attachmentBytes)
func Checksum(data []byte) string {
	h := checksumPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	checksumPool.Put(h)

	return hex.EncodeToString(sum)
}

// ChecksumReader streams r through a BLAKE2b-256 hasher and returns the
// hex-encoded digest together with the number of bytes read.
func ChecksumReader(r io.Reader) (string, int64, error) {
	h := checksumPool.Get().(hash.Hash)
	h.Reset()
	defer func() {
		h.Reset()
		checksumPool.Put(h)
	}()

	n, err := io.Copy(h, r)
	if err != nil {
		return "", n, err
	}

	return hex.EncodeToString(h.Sum(nil)), n, nil
}
