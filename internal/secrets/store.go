package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/crypto/hkdf"
)

// per-user access key store (file, 0600) with AES-GCM obfuscation.
// Not a replacement for OS keychains but keeps keys out of config.toml.

const fileName = "keys.json"

// ErrNotFound means no key is stored for the provider.
var ErrNotFound = errors.New("secrets: key not found")

type secretFile struct {
	Keys map[string]string `json:"keys"` // provider -> base64(ciphertext)
}

// Store keeps API access keys in dir/keys.json.
type Store struct {
	dir string
}

// NewStore uses dir; an empty dir means <user config dir>/jaskfx.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "jaskfx")
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Put(provider, key string) error {
	if provider = norm(provider); provider == "" {
		return fmt.Errorf("secrets: provider required")
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("secrets: empty key")
	}
	path, err := s.path()
	if err != nil {
		return err
	}
	sf, err := load(path)
	if err != nil {
		return err
	}
	if sf.Keys == nil {
		sf.Keys = map[string]string{}
	}
	ct, err := encrypt([]byte(strings.TrimSpace(key)))
	if err != nil {
		return err
	}
	sf.Keys[provider] = base64.StdEncoding.EncodeToString(ct)
	return save(path, sf)
}

func (s *Store) Get(provider string) (string, error) {
	if provider = norm(provider); provider == "" {
		return "", fmt.Errorf("secrets: provider required")
	}
	path, err := s.path()
	if err != nil {
		return "", err
	}
	sf, err := load(path)
	if err != nil {
		return "", err
	}
	enc, ok := sf.Keys[provider]
	if !ok {
		return "", ErrNotFound
	}
	raw, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		return "", err
	}
	pt, err := decrypt(raw)
	if err != nil {
		return "", fmt.Errorf("secrets: decrypt %s: %w", provider, err)
	}
	return string(pt), nil
}

func (s *Store) Delete(provider string) error {
	if provider = norm(provider); provider == "" {
		return fmt.Errorf("secrets: provider required")
	}
	path, err := s.path()
	if err != nil {
		return err
	}
	sf, err := load(path)
	if err != nil {
		return err
	}
	if _, ok := sf.Keys[provider]; !ok {
		return ErrNotFound
	}
	delete(sf.Keys, provider)
	return save(path, sf)
}

func (s *Store) path() (string, error) {
	if err := os.MkdirAll(s.dir, 0o700); err != nil { // restrict directory
		return "", err
	}
	return filepath.Join(s.dir, fileName), nil
}

func load(path string) (secretFile, error) {
	var sf secretFile
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return secretFile{}, nil
		}
		return sf, err
	}
	if err := json.Unmarshal(data, &sf); err != nil {
		return sf, err
	}
	return sf, nil
}

func save(path string, sf secretFile) error {
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func norm(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}

func masterKey() ([]byte, error) {
	ikm := fmt.Sprintf("%s-%s", runtime.GOOS, os.Getenv("USER"))
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(ikm), []byte("jaskfx"), []byte("keys.json|v1")), key); err != nil {
		return nil, err
	}
	return key, nil
}

func aead() (cipher.AEAD, error) {
	key, err := masterKey()
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func encrypt(plain []byte) ([]byte, error) {
	gcm, err := aead()
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plain, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	gcm, err := aead()
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce := ciphertext[:gcm.NonceSize()]
	body := ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, body, nil)
}
