package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// BootstrapResult reports what BootstrapDevKey did.
type BootstrapResult struct {
	KeysFile string
	Client   string
	Key      string
	Created  bool
}

// BootstrapDevKey writes a keys file holding one fresh key for client,
// unless the file already exists.
func BootstrapDevKey(keysPath, client string) (*BootstrapResult, error) {
	if keysPath == "" {
		keysPath = ResolveKeysPath()
	}
	if client == "" {
		client = "dev"
	}

	_, err := os.Stat(keysPath)
	if err == nil {
		return &BootstrapResult{KeysFile: keysPath}, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("check keys file: %w", err)
	}

	key, err := GenerateKey()
	if err != nil {
		return nil, err
	}
	allow := true
	cfg := keysFile{
		DefaultPolicy: policy{AllowLocalhostWithoutAuth: &allow},
		Clients:       map[string]clientKeys{client: {Keys: []string{key}}},
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal keys file: %w", err)
	}
	if err := os.WriteFile(keysPath, data, 0600); err != nil {
		return nil, fmt.Errorf("write keys file: %w", err)
	}
	return &BootstrapResult{KeysFile: keysPath, Client: client, Key: key, Created: true}, nil
}

// GenerateKey returns 32 random bytes, base64url encoded.
func GenerateKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
