package core

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash returns the hex SHA-256 of data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// Short returns the first 12 hex characters, enough to tell loads apart in logs.
func (h Hash) Short() string {
	if len(h) <= 12 {
		return string(h)
	}
	return string(h[:12])
}

// HashRows fingerprints tabular content. Row order matters, column order inside
// a row does not because each row is written as sorted key=value pairs.
func HashRows(rows []map[string]string) Hash {
	var b strings.Builder
	for _, row := range rows {
		keys := make([]string, 0, len(row))
		for k := range row {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(row[k])
			b.WriteByte(0x1f)
		}
		b.WriteByte('\n')
	}
	return NewHash([]byte(b.String()))
}
