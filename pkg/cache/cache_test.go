package cache

import (
	"context"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "absent"); err != nil || ok {
		t.Fatalf("Get(absent) = ok=%v err=%v, want miss", ok, err)
	}

	if err := c.Set(ctx, "k", []byte("payload"), 0); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	data, ok, err := c.Get(ctx, "k")
	if err != nil || !ok || string(data) != "payload" {
		t.Fatalf("Get(k) = %q ok=%v err=%v", data, ok, err)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("Get(k) hit after Delete")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete(absent) error: %v", err)
	}
}

func TestFileCacheExpiration(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("Get(k) hit after ttl expired")
	}
}

func TestFileCacheClear(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "a", []byte("1"), 0); err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "b", []byte("2"), 0); err != nil {
		t.Fatal(err)
	}

	removed, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if removed != 2 {
		t.Errorf("Clear() removed %d entries, want 2", removed)
	}
	if _, ok, _ := c.Get(ctx, "a"); ok {
		t.Error("Get(a) hit after Clear")
	}

	removed, err = c.Clear()
	if err != nil || removed != 0 {
		t.Errorf("Clear() on empty cache = %d, %v, want 0, nil", removed, err)
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("NullCache stored a value")
	}
}

func TestReportKey(t *testing.T) {
	a := ReportKey("javascript", []byte(`{"name":"app"}`))
	b := ReportKey("javascript", []byte(`{"name":"app","version":"2"}`))
	if a == b {
		t.Error("different manifest content produced the same key")
	}
	if a != ReportKey("javascript", []byte(`{"name":"app"}`)) {
		t.Error("identical input produced different keys")
	}
	if a == ReportKey("python", []byte(`{"name":"app"}`)) {
		t.Error("different ecosystems produced the same key")
	}
}
