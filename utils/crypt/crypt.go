package crypt

import (
	"crypto/aes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"unicode/utf8"
)

// Mercantil requires AES/ECB/PKCS5Padding keyed by the first 16 bytes of
// SHA-256(secret). ECB without IV is a fixed interop contract of the bank
// API, the server only understands this exact scheme.

var (
	ErrEmptySecret = errors.New("encrypt: empty secret key")
	ErrBadPadding  = errors.New("decrypt: invalid PKCS#7 padding")
)

func deriveKey(secretKey string) []byte {
	sum := sha256.Sum256([]byte(secretKey))
	return sum[:16]
}

// AESEncryptECB - encrypt plaintext with AES-128-ECB/PKCS#7, base64 output
func AESEncryptECB(plaintext, secretKey string) (res string, err error) {
	if !ValidateSecret(secretKey) {
		return "", ErrEmptySecret
	}

	block, err := aes.NewCipher(deriveKey(secretKey))
	if err != nil {
		return "", fmt.Errorf("encrypt: %v", err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)

	ciphertext := make([]byte, len(padded))
	for i := 0; i < len(padded); i += aes.BlockSize {
		block.Encrypt(ciphertext[i:i+aes.BlockSize], padded[i:i+aes.BlockSize])
	}

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// AESDecryptECB - inverse of AESEncryptECB
func AESDecryptECB(encryptedText, secretKey string) (res string, err error) {
	if !ValidateSecret(secretKey) {
		return "", ErrEmptySecret
	}

	ciphertext, err := base64.StdEncoding.DecodeString(encryptedText)
	if err != nil {
		return "", fmt.Errorf("decrypt: invalid base64: %v", err)
	}

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("decrypt: ciphertext length %v is not a multiple of the block size", len(ciphertext))
	}

	block, err := aes.NewCipher(deriveKey(secretKey))
	if err != nil {
		return "", fmt.Errorf("decrypt: %v", err)
	}

	plaintext := make([]byte, len(ciphertext))
	for i := 0; i < len(ciphertext); i += aes.BlockSize {
		block.Decrypt(plaintext[i:i+aes.BlockSize], ciphertext[i:i+aes.BlockSize])
	}

	plaintext, err = pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(plaintext) {
		return "", errors.New("decrypt: plaintext is not valid UTF-8")
	}

	return string(plaintext), nil
}

// Sha256Hex - hex encoded SHA-256 digest, used for diagnostics only
func Sha256Hex(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// ValidateSecret - precondition check, not a strength check
func ValidateSecret(secretKey string) bool {
	return len(secretKey) > 0
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padding)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padding)
	}
	return padded
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrBadPadding
	}

	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize || padding > len(data) {
		return nil, ErrBadPadding
	}

	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, ErrBadPadding
		}
	}

	return data[:len(data)-padding], nil
}
