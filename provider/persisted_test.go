package provider

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ZaguanLabs/lingo/persist"
)

func TestPersisted_SaveLoadRoundTrip(t *testing.T) {
	store := persist.NewFileStore(filepath.Join(t.TempDir(), "snapshot.json"))
	p := Persisted(NewMockProvider(), store)

	ctx := context.Background()

	blob, err := p.LoadCache(ctx)
	if err != nil {
		t.Fatalf("LoadCache before any save should not fail: %v", err)
	}
	if blob != "" {
		t.Errorf("LoadCache returned %q before any save, want empty", blob)
	}

	want := `{"es_ES":{"hello":"Hola"}}`
	if err := p.SaveCache(ctx, want); err != nil {
		t.Fatalf("SaveCache failed: %v", err)
	}

	blob, err = p.LoadCache(ctx)
	if err != nil {
		t.Fatalf("LoadCache failed: %v", err)
	}
	if blob != want {
		t.Errorf("LoadCache returned %q, want %q", blob, want)
	}
}

func TestPersisted_TranslateDelegates(t *testing.T) {
	mock := NewMockProvider()
	p := Persisted(mock, persist.NewFileStore(filepath.Join(t.TempDir(), "s.json")))

	out, err := p.Translate(context.Background(), "hello", "es_ES")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if out != "Hola" {
		t.Errorf("Translate returned %q, want %q", out, "Hola")
	}
	if mock.CallCount != 1 {
		t.Errorf("wrapped provider called %d times, want 1", mock.CallCount)
	}
}

func TestPersisted_NilProvider(t *testing.T) {
	p := Persisted(nil, persist.NewFileStore(filepath.Join(t.TempDir(), "s.json")))

	out, err := p.Translate(context.Background(), "hello", "es_ES")
	if err != nil {
		t.Fatalf("Translate with nil wrapped provider failed: %v", err)
	}
	if out != "" {
		t.Errorf("Translate with nil wrapped provider returned %q, want empty", out)
	}

	// Listener forwarding must also tolerate the missing provider.
	p.OnTranslated("hello", "Hola")
}

func TestPersisted_ForwardsOnTranslated(t *testing.T) {
	mock := NewMockProvider()
	p := Persisted(mock, persist.NewFileStore(filepath.Join(t.TempDir(), "s.json")))

	p.OnTranslated("hello", "Hola")

	if mock.Notified["hello"] != "Hola" {
		t.Error("OnTranslated should forward to the wrapped provider")
	}
}

func TestMockProvider_EchoesUnknownKeys(t *testing.T) {
	mock := NewMockProvider()

	out, err := mock.Translate(context.Background(), "no.such.key", "es_ES")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if out != "no.such.key" {
		t.Errorf("unknown key translated to %q, want the key itself", out)
	}
}
