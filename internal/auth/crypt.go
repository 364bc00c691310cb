package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// EncryptSHA256 returns the hex SHA-256 digest of str. The member password
// column is never used for login; it stores the digest of a fixed constant.
func EncryptSHA256(str string) string {
	sum := sha256.Sum256([]byte(str))
	return hex.EncodeToString(sum[:])
}
