package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mistakeknot/significado/internal/auth"
)

type keysFile struct {
	DefaultPolicy struct {
		AllowLocalhostWithoutAuth *bool `yaml:"allow_localhost_without_auth"`
	} `yaml:"default_policy"`
	Clients map[string]clientKeys `yaml:"clients"`
}

type clientKeys struct {
	Keys []string `yaml:"keys"`
}

// InitKeysFile appends a new key for client to the keys file at path,
// creating the file when needed, and returns the key.
func InitKeysFile(path, client string) (string, error) {
	path = strings.TrimSpace(path)
	client = strings.TrimSpace(client)
	if path == "" {
		return "", errors.New("keys file path required")
	}
	if client == "" {
		return "", errors.New("client required")
	}

	cfg, err := readKeysFile(path)
	if err != nil {
		return "", err
	}
	key, err := auth.GenerateKey()
	if err != nil {
		return "", err
	}
	if cfg.Clients == nil {
		cfg.Clients = make(map[string]clientKeys)
	}
	entry := cfg.Clients[client]
	entry.Keys = append(entry.Keys, key)
	cfg.Clients[client] = entry
	if cfg.DefaultPolicy.AllowLocalhostWithoutAuth == nil {
		allow := true
		cfg.DefaultPolicy.AllowLocalhostWithoutAuth = &allow
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return "", fmt.Errorf("marshal keys file: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("write keys file: %w", err)
	}
	return key, nil
}

func readKeysFile(path string) (keysFile, error) {
	var cfg keysFile
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read keys file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse keys file: %w", err)
	}
	return cfg, nil
}
