package cache

import (
	"testing"
	"time"
)

func TestRenderCache_SetGet(t *testing.T) {
	c := NewRenderCache(time.Minute, time.Minute)

	key := Key(1, "bibliography", "apa")
	if _, found := c.Get(key); found {
		t.Error("expected miss before set")
	}

	c.Set(key, "[1] A Study")
	got, found := c.Get(key)
	if !found {
		t.Fatal("expected hit after set")
	}
	if got != "[1] A Study" {
		t.Errorf("expected cached text, got %q", got)
	}
}

func TestRenderCache_Clear(t *testing.T) {
	c := NewRenderCache(time.Minute, time.Minute)
	key := Key(1, "export", "csv")
	c.Set(key, "rows")
	c.Clear()

	if _, found := c.Get(key); found {
		t.Error("expected miss after clear")
	}
}

func TestKey_DistinguishesInputs(t *testing.T) {
	base := Key(1, "bibliography", "apa")

	if Key(2, "bibliography", "apa") == base {
		t.Error("expected different key for different revision")
	}
	if Key(1, "export", "apa") == base {
		t.Error("expected different key for different operation")
	}
	if Key(1, "bibliography", "mla") == base {
		t.Error("expected different key for different format")
	}
	if Key(1, "bibliography", "apa") != base {
		t.Error("expected identical key for identical inputs")
	}
}
