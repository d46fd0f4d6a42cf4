package errslot

import (
	"fmt"
	"sync"
	"testing"

	"github.com/wippyai/fission/errors"
)

func TestSlots(t *testing.T) {
	var s Slots

	if _, ok := s.Get(1); ok {
		t.Fatal("empty slot reported a message")
	}

	s.Set(1, errors.InvalidInput(errors.PhaseDecompile, "Invalid input bytes"))
	msg, ok := s.Get(1)
	if !ok || msg == "" {
		t.Fatal("message not recorded")
	}

	s.Set(1, nil)
	if again, _ := s.Get(1); again != msg {
		t.Errorf("nil error replaced message: %q", again)
	}

	s.Set(1, errors.NotInitialized(errors.PhaseDisassemble, "Decompiler"))
	if latest, _ := s.Get(1); latest == msg {
		t.Error("later failure should overwrite the slot")
	}

	s.Clear(1)
	if _, ok := s.Get(1); ok {
		t.Error("Clear left a message behind")
	}
}

func TestSlots_Isolation(t *testing.T) {
	var s Slots
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(ctx int) {
			defer wg.Done()
			want := fmt.Sprintf("failure in context %d", ctx)
			for j := 0; j < 100; j++ {
				s.Set(ctx, errors.InvalidInput(errors.PhaseABI, want))
				got, ok := s.Get(ctx)
				if !ok || got != errors.InvalidInput(errors.PhaseABI, want).Error() {
					t.Errorf("context %d read %q", ctx, got)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	if s.Len() != 32 {
		t.Fatalf("Len = %d, want 32", s.Len())
	}
}
