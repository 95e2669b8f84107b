package speech

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCacheKeyDeterministic(t *testing.T) {
	c, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	k1 := c.Key("你好。", "zh-cn")
	k2 := c.Key("你好。", "zh-cn")
	if k1 != k2 {
		t.Errorf("same input produced different keys: %s vs %s", k1, k2)
	}

	if c.Key("你好。", "zh-cn") == c.Key("你好！", "zh-cn") {
		t.Error("distinct text produced identical keys")
	}
	if c.Key("你好。", "zh-cn") == c.Key("你好。", "en") {
		t.Error("distinct language produced identical keys")
	}
}

func TestCacheLookupStore(t *testing.T) {
	dir := t.TempDir()
	c, err := NewCache(dir)
	if err != nil {
		t.Fatal(err)
	}

	key := c.Key("测试文本", "zh-cn")
	if _, ok := c.Lookup(key); ok {
		t.Fatal("Lookup() hit on empty cache")
	}

	src := filepath.Join(dir, "src.mp3")
	if err := os.WriteFile(src, []byte("audio-bytes"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := c.Store(key, src); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	path, ok := c.Lookup(key)
	if !ok {
		t.Fatal("Lookup() miss after Store()")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "audio-bytes" {
		t.Errorf("cached content = %q, want audio-bytes", data)
	}
}

func TestCacheStoreIdempotent(t *testing.T) {
	dir := t.TempDir()
	c, err := NewCache(dir)
	if err != nil {
		t.Fatal(err)
	}

	key := c.Key("固定文本", "zh-cn")

	first := filepath.Join(dir, "first.mp3")
	if err := os.WriteFile(first, []byte("first"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := c.Store(key, first); err != nil {
		t.Fatal(err)
	}

	// A second store for the same key must not overwrite the entry.
	second := filepath.Join(dir, "second.mp3")
	if err := os.WriteFile(second, []byte("second"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := c.Store(key, second); err != nil {
		t.Fatal(err)
	}

	path, ok := c.Lookup(key)
	if !ok {
		t.Fatal("Lookup() miss")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first" {
		t.Errorf("entry was overwritten: %q", data)
	}
}

func TestCacheIgnoresEmptyEntries(t *testing.T) {
	dir := t.TempDir()
	c, err := NewCache(dir)
	if err != nil {
		t.Fatal(err)
	}

	key := c.Key("空文件", "zh-cn")
	if err := os.WriteFile(filepath.Join(dir, key+".mp3"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	if _, ok := c.Lookup(key); ok {
		t.Error("Lookup() hit on zero-byte entry")
	}
}
