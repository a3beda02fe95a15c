// Package auth keeps the bearer token the browser extension presents to the local bridge.
//
// The token lives in the system keyring. Where no keyring is reachable it falls back to a
// file only the current user can read.
package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/kaltdl/kaltdl/constant"
	"github.com/kaltdl/kaltdl/filesystem"
	"github.com/kaltdl/kaltdl/log"
	"github.com/kaltdl/kaltdl/where"
	"github.com/zalando/go-keyring"
)

const user = "bridge-token"

// SetToken persists token, preferring the system keyring.
func SetToken(token string) error {
	if err := keyring.Set(constant.Kaltdl, user, token); err != nil {
		log.Warnf("keyring unavailable, storing token in %s: %s", where.TokenFile(), err)
		return writeTokenFile(token)
	}
	return nil
}

// GetToken returns the stored token. It reports keyring.ErrNotFound when none exists.
func GetToken() (string, error) {
	token, err := keyring.Get(constant.Kaltdl, user)
	if err == nil {
		return token, nil
	}

	data, fileErr := filesystem.API().ReadFile(where.TokenFile())
	if fileErr == nil {
		if token := strings.TrimSpace(string(data)); token != "" {
			return token, nil
		}
	}

	if errors.Is(err, keyring.ErrNotFound) || os.IsNotExist(fileErr) {
		return "", keyring.ErrNotFound
	}
	return "", err
}

// DeleteToken removes the token from both stores.
func DeleteToken() error {
	err := keyring.Delete(constant.Kaltdl, user)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		log.Warnf("could not delete token from keyring: %s", err)
	}

	if fileErr := filesystem.API().Remove(where.TokenFile()); fileErr != nil && !os.IsNotExist(fileErr) {
		return fileErr
	}
	return nil
}

// EnsureToken returns the stored token, generating and storing a new one on first use.
func EnsureToken() (string, error) {
	token, err := GetToken()
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, keyring.ErrNotFound) {
		log.Warnf("could not read token: %s", err)
	}

	token = uuid.New().String()
	if err := SetToken(token); err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}

	log.Info("generated new bridge token")
	return token, nil
}

func writeTokenFile(token string) error {
	path := where.TokenFile()
	if err := filesystem.API().MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	return filesystem.WriteAtomic(path, []byte(token), 0o600)
}
