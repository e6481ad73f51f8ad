// Package credential keeps the Redis backend password in the system keyring.
package credential

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/99designs/keyring"
)

const serviceName = "devdesign-studio"

// RedisPasswordEnv overrides the stored password when set.
const RedisPasswordEnv = "REDIS_PASSWORD"

const redisPasswordKey = "redis-password"

// openRing is swapped out in tests.
var openRing = openKeyring

// openKeyring returns a configured keyring instance.
func openKeyring() (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  "~/.config/devdesign-studio/credentials",
		FilePasswordFunc:         keyring.FixedStringPrompt("devdesign-studio-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

// RedisPassword returns the password for the Redis backend. The
// environment wins over the keyring; an empty result means the server
// needs no auth.
func RedisPassword() (string, error) {
	if pw := os.Getenv(RedisPasswordEnv); pw != "" {
		return pw, nil
	}

	ring, err := openRing()
	if err != nil {
		return "", err
	}
	item, err := ring.Get(redisPasswordKey)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading redis password: %w", err)
	}
	return string(item.Data), nil
}

// SetRedisPassword stores the Redis backend password.
func SetRedisPassword(password string) error {
	password = strings.TrimRight(password, "\r\n")
	if password == "" {
		return errors.New("password must not be empty")
	}

	ring, err := openRing()
	if err != nil {
		return err
	}
	err = ring.Set(keyring.Item{
		Key:         redisPasswordKey,
		Data:        []byte(password),
		Label:       "DevDesign Studio Redis password",
		Description: "Password for the clients-data Redis backend",
	})
	if err != nil {
		return fmt.Errorf("storing redis password: %w", err)
	}
	return nil
}

// ClearRedisPassword removes the stored password. Clearing a password that
// was never stored is not an error.
func ClearRedisPassword() error {
	ring, err := openRing()
	if err != nil {
		return err
	}
	if err := ring.Remove(redisPasswordKey); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("removing redis password: %w", err)
	}
	return nil
}
