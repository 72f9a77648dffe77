package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"axscript/internal/token"
)

// Bump when tokenPayload or the token kind numbering changes.
const tokenCacheSchema uint16 = 1

// TokenCache хранит потоки токенов на диске, ключ: SHA-256 нормализованного текста.
// Safe for concurrent use.
type TokenCache struct {
	mu     sync.RWMutex
	dir    string
	hits   atomic.Int64
	misses atomic.Int64
}

type tokenPayload struct {
	Schema uint16        `msgpack:"schema"`
	Tokens []cachedToken `msgpack:"tokens"`
}

type cachedToken struct {
	Kind   uint8  `msgpack:"k"`
	Text   string `msgpack:"t"`
	Line   int    `msgpack:"l"`
	Column int    `msgpack:"c"`
}

// OpenTokenCache opens $XDG_CACHE_HOME/<app>/tokens, falling back to
// ~/.cache when XDG_CACHE_HOME is unset.
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewTokenCache(filepath.Join(base, app, "tokens"))
}

// NewTokenCache uses dir as is, creating it when missing.
func NewTokenCache(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("token cache: %w", err)
	}
	return &TokenCache{dir: dir}, nil
}

// Dir returns the directory holding cache entries.
func (c *TokenCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *TokenCache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(key[:])+".mp")
}

// Put serializes toks under key. The entry appears atomically.
func (c *TokenCache) Put(key [32]byte, toks []token.Token) error {
	if c == nil {
		return nil
	}
	payload := tokenPayload{
		Schema: tokenCacheSchema,
		Tokens: make([]cachedToken, len(toks)),
	}
	for i, tok := range toks {
		payload.Tokens[i] = cachedToken{
			Kind:   uint8(tok.Kind),
			Text:   tok.Text,
			Line:   tok.Line,
			Column: tok.Column,
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	f, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return err
	}
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return err
	}
	// атомарная замена
	if err := os.Rename(f.Name(), c.pathFor(key)); err != nil {
		_ = os.Remove(f.Name())
		return err
	}
	return nil
}

// Get returns the cached stream for key. A missing entry or one written
// with another schema is a miss, not an error.
func (c *TokenCache) Get(key [32]byte) ([]token.Token, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		c.misses.Add(1)
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer func() { _ = f.Close() }()

	var payload tokenPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		c.misses.Add(1)
		return nil, false, fmt.Errorf("decode %s: %w", filepath.Base(f.Name()), err)
	}
	if payload.Schema != tokenCacheSchema {
		c.misses.Add(1)
		return nil, false, nil
	}

	toks := make([]token.Token, len(payload.Tokens))
	for i, ct := range payload.Tokens {
		toks[i] = token.Token{
			Kind:   token.Kind(ct.Kind),
			Text:   ct.Text,
			Line:   ct.Line,
			Column: ct.Column,
		}
	}
	c.hits.Add(1)
	return toks, true, nil
}

// Stats reports lookups served and missed since the cache was opened.
func (c *TokenCache) Stats() (hits, misses int64) {
	if c == nil {
		return 0, 0
	}
	return c.hits.Load(), c.misses.Load()
}

// DropAll removes every entry and recreates an empty directory.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименуем каталог, затем удалим старый
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
