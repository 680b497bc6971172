package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"mime"
	"path/filepath"
)

// Common utilities used across the service

// SHA1Hex returns the hex digest used for stored passwords. The digest
// format is a compatibility contract with existing credentials.
func SHA1Hex(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// ContentTypeFor returns the MIME type implied by a file name.
func ContentTypeFor(name string) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}
