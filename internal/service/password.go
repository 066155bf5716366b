// File: internal/service/password.go
package service

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

var errPasswordMismatch = errors.New("password mismatch")

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串
func HashPassword(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與哈希，成功回傳 nil，失敗則回傳錯誤
// Besides bcrypt it accepts the "method$salt$hex" hashes (pbkdf2, scrypt)
// written by earlier deployments into the same Users table.
func ComparePassword(hash, password string) error {
	if strings.HasPrefix(hash, "pbkdf2:") || strings.HasPrefix(hash, "scrypt:") {
		return compareSaltedHex(hash, password)
	}
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password))
}

func compareSaltedHex(stored, password string) error {
	method, rest, ok := strings.Cut(stored, "$")
	if !ok {
		return fmt.Errorf("malformed password hash")
	}
	salt, wantHex, ok := strings.Cut(rest, "$")
	if !ok {
		return fmt.Errorf("malformed password hash")
	}
	want, err := hex.DecodeString(wantHex)
	if err != nil {
		return fmt.Errorf("malformed password hash: %w", err)
	}

	params := strings.Split(method, ":")
	var got []byte
	switch params[0] {
	case "pbkdf2":
		newHash, err := hashByName(paramAt(params, 1, "sha256"))
		if err != nil {
			return err
		}
		iterations, err := strconv.Atoi(paramAt(params, 2, "600000"))
		if err != nil {
			return fmt.Errorf("malformed pbkdf2 iterations: %w", err)
		}
		got = pbkdf2.Key([]byte(password), []byte(salt), iterations, len(want), newHash)
	case "scrypt":
		n, err1 := strconv.Atoi(paramAt(params, 1, "32768"))
		r, err2 := strconv.Atoi(paramAt(params, 2, "8"))
		p, err3 := strconv.Atoi(paramAt(params, 3, "1"))
		if err := errors.Join(err1, err2, err3); err != nil {
			return fmt.Errorf("malformed scrypt parameters: %w", err)
		}
		got, err = scrypt.Key([]byte(password), []byte(salt), n, r, p, len(want))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported password hash method %q", params[0])
	}

	if subtle.ConstantTimeCompare(got, want) != 1 {
		return errPasswordMismatch
	}
	return nil
}

func paramAt(params []string, i int, def string) string {
	if i < len(params) && params[i] != "" {
		return params[i]
	}
	return def
}

func hashByName(name string) (func() hash.Hash, error) {
	switch name {
	case "sha256":
		return sha256.New, nil
	case "sha512":
		return sha512.New, nil
	case "sha1":
		return sha1.New, nil
	}
	return nil, fmt.Errorf("unsupported pbkdf2 hash %q", name)
}
