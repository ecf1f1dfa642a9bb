package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func openTestCache(t *testing.T) *RenderCache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenRenderCache("rustgen-test")
	if err != nil {
		t.Fatalf("failed to open cache: %v", err)
	}
	return cache
}

func TestRenderCachePutGet(t *testing.T) {
	cache := openTestCache(t)

	key := CacheKey("api.rsgen.toml", "")
	hash := DigestBytes([]byte("manifest body"))
	rendered := []byte("pub struct Api;\n")

	if err := cache.Put(key, hash, "api.rs", rendered); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	hit, ok, err := cache.Get(key, hash)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if hit.Output != "api.rs" || string(hit.Rendered) != string(rendered) {
		t.Fatalf("unexpected payload: %+v", hit)
	}
}

func TestRenderCacheMissOnDifferentHash(t *testing.T) {
	cache := openTestCache(t)

	key := CacheKey("api.rsgen.toml", "")
	if err := cache.Put(key, DigestBytes([]byte("v1")), "api.rs", []byte("a")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	// содержимое манифеста изменилось — запись устарела
	if _, ok, err := cache.Get(key, DigestBytes([]byte("v2"))); err != nil || ok {
		t.Fatalf("expected a miss, got ok=%v err=%v", ok, err)
	}
}

func TestRenderCacheSchemaMismatchIsMiss(t *testing.T) {
	cache := openTestCache(t)

	key := CacheKey("api.rsgen.toml", "")
	hash := DigestBytes([]byte("manifest body"))
	p := cache.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	data, err := msgpack.Marshal(&renderPayload{
		Schema:       renderCacheSchemaVersion + 1,
		ManifestHash: hash,
		Output:       "api.rs",
		Size:         1,
		Rendered:     []byte("x"),
	})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if err := os.WriteFile(p, data, 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if _, ok, err := cache.Get(key, hash); err != nil || ok {
		t.Fatalf("expected a schema miss, got ok=%v err=%v", ok, err)
	}
}

func TestRenderCacheCorruptEntryIsMiss(t *testing.T) {
	cache := openTestCache(t)

	key := CacheKey("api.rsgen.toml", "")
	hash := DigestBytes([]byte("manifest body"))
	p := cache.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(p, []byte("garbage"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if _, ok, err := cache.Get(key, hash); err != nil || ok {
		t.Fatalf("expected a corrupt-entry miss, got ok=%v err=%v", ok, err)
	}
}

func TestRenderCacheDropAll(t *testing.T) {
	cache := openTestCache(t)

	key := CacheKey("api.rsgen.toml", "")
	hash := DigestBytes([]byte("manifest body"))
	if err := cache.Put(key, hash, "api.rs", []byte("a")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll failed: %v", err)
	}
	if _, ok, err := cache.Get(key, hash); err != nil || ok {
		t.Fatalf("expected a miss after DropAll, got ok=%v err=%v", ok, err)
	}
	// кэш снова работоспособен
	if err := cache.Put(key, hash, "api.rs", []byte("b")); err != nil {
		t.Fatalf("Put after DropAll failed: %v", err)
	}
}

func TestRenderCacheNilReceiver(t *testing.T) {
	var cache *RenderCache

	if err := cache.Put(Digest{}, Digest{}, "x.rs", []byte("a")); err != nil {
		t.Fatalf("nil Put failed: %v", err)
	}
	if _, ok, err := cache.Get(Digest{}, Digest{}); err != nil || ok {
		t.Fatalf("nil Get: expected silent miss, got ok=%v err=%v", ok, err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("nil DropAll failed: %v", err)
	}
}

func TestCacheKeySeparatesOutDirs(t *testing.T) {
	base := CacheKey("api.rsgen.toml", "")
	redir := CacheKey("api.rsgen.toml", "build/out")
	if base == redir {
		t.Fatal("expected distinct keys for distinct out dirs")
	}
	if CacheKey("api.rsgen.toml", "") != base {
		t.Fatal("expected the key derivation to be deterministic")
	}
}

func TestDigestBytes(t *testing.T) {
	a := DigestBytes([]byte("manifest"))
	b := DigestBytes([]byte("manifest"))
	c := DigestBytes([]byte("other"))
	if a != b {
		t.Fatal("expected equal digests for equal input")
	}
	if a == c {
		t.Fatal("expected distinct digests for distinct input")
	}
}
