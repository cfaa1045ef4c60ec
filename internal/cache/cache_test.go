package cache

import (
	"strings"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	a := Key("openai|gpt-4o-mini|some document text")
	b := Key("openai|gpt-4o-mini|some document text")
	c := Key("openai|gpt-4o-mini|other document text")

	if a != b {
		t.Error("identical inputs must produce identical keys")
	}
	if a == c {
		t.Error("distinct inputs must produce distinct keys")
	}
	if !strings.HasPrefix(a, "docket:v1:") {
		t.Errorf("expected versioned key prefix, got %q", a)
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("expected miss for unknown key")
	}

	if err := c.Set("k", []byte("value"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, found := c.Get("k")
	if !found || string(val) != "value" {
		t.Errorf("expected hit with 'value', got %q found=%v", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected miss after delete")
	}
}

func TestDiskCache(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("persisted"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, found := c.Get("k")
	if !found || string(val) != "persisted" {
		t.Errorf("expected hit with 'persisted', got %q found=%v", val, found)
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected miss after clear")
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("gone"), -time.Second); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected expired entry to miss")
	}
}

func TestLayeredCache_DiskPromotion(t *testing.T) {
	dir := t.TempDir()

	first := NewLayeredCache(time.Minute, dir, time.Minute)
	if err := first.Set("k", []byte("shared"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	// A fresh layered cache over the same directory has a cold memory
	// layer but must find the entry on disk
	second := NewLayeredCache(time.Minute, dir, time.Minute)
	val, found := second.Get("k")
	if !found || string(val) != "shared" {
		t.Errorf("expected disk hit, got %q found=%v", val, found)
	}
}
