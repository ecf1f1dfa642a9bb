package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when renderPayload format changes
const renderCacheSchemaVersion uint16 = 1

// Digest - фиксированный 256 битный хеш содержимого манифеста
type Digest [32]byte

// DigestBytes hashes raw manifest bytes.
func DigestBytes(data []byte) Digest {
	return sha256.Sum256(data)
}

// CacheKey derives the cache lookup key for a manifest path under an output
// directory override. Разные --out-dir не делят записи: выходной путь
// зашит в payload.
func CacheKey(manifestPath, outDir string) Digest {
	abs, err := filepath.Abs(manifestPath)
	if err != nil {
		abs = manifestPath
	}
	return sha256.Sum256([]byte(abs + "\x00" + outDir))
}

// RenderCache хранит готовые рендеры по ключу манифеста на диске, чтобы
// повторные прогоны не разбирали неизменённые манифесты заново.
// Thread-safe for concurrent access.
type RenderCache struct {
	mu  sync.RWMutex
	dir string
}

// renderPayload stores a cached render plus enough metadata to detect
// staleness and corruption.
type renderPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	ManifestHash Digest
	Output       string
	Size         uint32
	Rendered     []byte
}

// CachedRender is a cache hit: the rendered source and its output path.
type CachedRender struct {
	Output   string
	Rendered []byte
}

// OpenRenderCache initializes and returns a render cache at the standard location.
func OpenRenderCache(app string) (*RenderCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &RenderCache{dir: dir}, nil
}

func (c *RenderCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Для удобства читаемости/очистки — подкаталог "render".
	return filepath.Join(c.dir, "render", hexKey+".mp")
}

// Put serializes and writes a render to the disk cache.
func (c *RenderCache) Put(key, manifestHash Digest, output string, rendered []byte) error {
	if c == nil {
		return nil
	}
	size, err := safecast.Conv[uint32](len(rendered))
	if err != nil {
		return fmt.Errorf("rendered size overflow: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	renamed := false
	defer func() {
		if renamed {
			return
		}
		if removeErr := os.Remove(f.Name()); removeErr != nil {
			fmt.Printf("failed to remove temp file: %v\n", removeErr)
		}
	}()

	payload := &renderPayload{
		Schema:       renderCacheSchemaVersion,
		ManifestHash: manifestHash,
		Output:       output,
		Size:         size,
		Rendered:     rendered,
	}
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	if err := os.Rename(f.Name(), p); err != nil {
		return err
	}
	renamed = true
	return nil
}

// Get reads a cached render. A schema, hash or size mismatch is a plain miss,
// as is a corrupt entry: генерация просто пойдёт полным путём и перезапишет.
func (c *RenderCache) Get(key, manifestHash Digest) (CachedRender, bool, error) {
	if c == nil {
		return CachedRender{}, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return CachedRender{}, false, nil
		}
		return CachedRender{}, false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()

	var payload renderPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return CachedRender{}, false, nil
	}
	if payload.Schema != renderCacheSchemaVersion || payload.ManifestHash != manifestHash {
		return CachedRender{}, false, nil
	}
	size, err := safecast.Conv[uint32](len(payload.Rendered))
	if err != nil || size != payload.Size {
		return CachedRender{}, false, nil
	}
	return CachedRender{Output: payload.Output, Rendered: payload.Rendered}, true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *RenderCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим целиком
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
