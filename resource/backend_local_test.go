package resource

import (
	"errors"
	"sync"
	"testing"
)

func TestLocalBackend_Basic(t *testing.T) {
	b := NewLocalBackend()

	handle, err := b.Create(1, "test value")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if handle == 0 {
		t.Fatal("Expected non-zero handle")
	}

	val, ok := b.Get(handle)
	if !ok {
		t.Fatal("Get failed")
	}
	if val != "test value" {
		t.Fatalf("Expected 'test value', got %v", val)
	}

	val, ok = b.Drop(handle)
	if !ok {
		t.Fatal("Drop failed")
	}
	if val != "test value" {
		t.Fatalf("Expected 'test value', got %v", val)
	}

	if _, ok = b.Get(handle); ok {
		t.Fatal("Expected Get to fail after Drop")
	}
	if _, ok = b.Drop(handle); ok {
		t.Fatal("Expected second Drop to fail")
	}
}

func TestLocalBackend_StaleHandle(t *testing.T) {
	b := NewLocalBackend()

	h1, _ := b.Create(1, "first")
	b.Drop(h1)
	h2, _ := b.Create(1, "second")

	if h1.slot() != h2.slot() {
		t.Fatalf("expected slot reuse, got slots %d and %d", h1.slot(), h2.slot())
	}
	if h1 == h2 {
		t.Fatal("reused slot must produce a new handle")
	}
	if _, ok := b.Get(h1); ok {
		t.Fatal("stale handle resolved after slot reuse")
	}
	if v, ok := b.Get(h2); !ok || v != "second" {
		t.Fatalf("Get(h2) = %v, %v", v, ok)
	}
}

func TestLocalBackend_RetiresExhaustedSlot(t *testing.T) {
	b := NewLocalBackend()

	if _, err := b.Create(1, "x"); err != nil {
		t.Fatal(err)
	}
	b.entries[0].gen = maxGen
	h := makeHandle(0, maxGen)
	if _, ok := b.Drop(h); !ok {
		t.Fatal("Drop failed")
	}

	next, err := b.Create(1, "y")
	if err != nil {
		t.Fatal(err)
	}
	if next.slot() == 0 {
		t.Fatal("exhausted slot was reused")
	}
}

func TestLocalBackend_InvalidHandles(t *testing.T) {
	b := NewLocalBackend()
	b.Create(1, "x")

	for _, h := range []Handle{0, 99, makeHandle(0, 7), Handle(0xffffffff)} {
		if _, ok := b.Get(h); ok {
			t.Errorf("Get(%#x) should fail", uint32(h))
		}
		if _, ok := b.TypeID(h); ok {
			t.Errorf("TypeID(%#x) should fail", uint32(h))
		}
	}
}

func TestLocalBackend_Close(t *testing.T) {
	b := NewLocalBackend()
	d := &dropCounter{}
	b.Create(1, d)

	if err := b.Close(); err != nil {
		t.Fatal(err)
	}
	if d.count != 1 {
		t.Fatalf("Drop called %d times, want 1", d.count)
	}
	if _, err := b.Create(1, "late"); !errors.Is(err, ErrClosed) {
		t.Fatalf("Create after Close err = %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatal("second Close should be a no-op")
	}
}

func TestLocalBackend_Concurrent(t *testing.T) {
	b := NewLocalBackend()
	var wg sync.WaitGroup
	seen := sync.Map{}

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				h, err := b.Create(1, i)
				if err != nil {
					t.Error(err)
					return
				}
				if _, dup := seen.LoadOrStore(h, true); dup {
					t.Errorf("handle %#x issued twice", uint32(h))
				}
				if j%2 == 0 {
					b.Drop(h)
				}
			}
		}(i)
	}
	wg.Wait()

	if b.Len() != 16*50 {
		t.Fatalf("Len = %d, want %d", b.Len(), 16*50)
	}
}
