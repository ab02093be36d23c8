package auth

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultKeysFile = "significado.keys.yaml"
	keysFileEnv     = "SIGNIFICADO_KEYS_FILE"
)

type keysFile struct {
	DefaultPolicy policy                `yaml:"default_policy"`
	Clients       map[string]clientKeys `yaml:"clients"`
}

type policy struct {
	AllowLocalhostWithoutAuth *bool `yaml:"allow_localhost_without_auth"`
}

type clientKeys struct {
	Keys []string `yaml:"keys"`
}

// Keyring maps bearer keys to the client that owns them.
type Keyring struct {
	AllowLocalhostWithoutAuth bool
	clients                   map[string]string
}

// ResolveKeysPath prefers SIGNIFICADO_KEYS_FILE, then ./significado.keys.yaml.
func ResolveKeysPath() string {
	if v := strings.TrimSpace(os.Getenv(keysFileEnv)); v != "" {
		return v
	}
	return filepath.Join(".", defaultKeysFile)
}

// LoadKeyring reads a keys file. A missing file is created with a dev key so
// a fresh checkout can serve right away.
func LoadKeyring(path string) (*Keyring, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return NewKeyring(true, nil), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if _, err := BootstrapDevKey(path, "dev"); err != nil {
			return nil, fmt.Errorf("bootstrap dev key: %w", err)
		}
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read keys file: %w", err)
	}
	return parseKeyring(data)
}

func parseKeyring(data []byte) (*Keyring, error) {
	var cfg keysFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse keys file: %w", err)
	}
	ring := NewKeyring(true, nil)
	if cfg.DefaultPolicy.AllowLocalhostWithoutAuth != nil {
		ring.AllowLocalhostWithoutAuth = *cfg.DefaultPolicy.AllowLocalhostWithoutAuth
	}
	for client, entry := range cfg.Clients {
		for _, key := range entry.Keys {
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			if owner, ok := ring.clients[key]; ok && owner != client {
				return nil, fmt.Errorf("key shared by clients %q and %q", owner, client)
			}
			ring.clients[key] = client
		}
	}
	return ring, nil
}

func NewKeyring(allowLocalhost bool, keyToClient map[string]string) *Keyring {
	clients := make(map[string]string, len(keyToClient))
	maps.Copy(clients, keyToClient)
	return &Keyring{AllowLocalhostWithoutAuth: allowLocalhost, clients: clients}
}

// ClientForKey reports which client owns key.
func (k *Keyring) ClientForKey(key string) (string, bool) {
	if k == nil {
		return "", false
	}
	client, ok := k.clients[key]
	return client, ok
}
