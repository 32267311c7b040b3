package mem

import (
	"testing"
	"time"
)

func TestDocumentsPutGet(t *testing.T) {
	docs := NewDocuments()
	docs.Put("ref-1", "creator-1", time.Hour)

	owner, ok := docs.Get("ref-1")
	if !ok {
		t.Fatal("expected reference to be present")
	}
	if owner != "creator-1" {
		t.Errorf("owner = %q, want creator-1", owner)
	}

	if _, ok := docs.Get("missing"); ok {
		t.Error("unknown reference must not resolve")
	}
}

func TestDocumentsExpiry(t *testing.T) {
	docs := NewDocuments()
	docs.Put("short", "creator-1", -time.Second)
	docs.Put("long", "creator-2", time.Hour)

	if _, ok := docs.Get("short"); ok {
		t.Error("expired reference must not resolve")
	}
	if _, ok := docs.Get("long"); !ok {
		t.Error("live reference must resolve")
	}

	if purged := docs.PurgeExpired(); purged != 1 {
		t.Errorf("purged = %d, want 1", purged)
	}
	if purged := docs.PurgeExpired(); purged != 0 {
		t.Errorf("second purge = %d, want 0", purged)
	}

	if _, ok := docs.Get("long"); !ok {
		t.Error("purge must not drop live references")
	}
}
