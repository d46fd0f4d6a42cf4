package resource

import (
	"testing"
)

type testObserver struct {
	events []Event
}

func (o *testObserver) OnResourceEvent(e Event) {
	o.events = append(o.events, e)
}

type dropCounter struct {
	count int
}

func (d *dropCounter) Drop() {
	d.count++
}

func TestTable_Lookup(t *testing.T) {
	table := NewTable()

	h := table.Insert(1, "engine")
	if h == 0 {
		t.Fatal("Insert returned the reserved handle")
	}

	tests := []struct {
		name   string
		handle Handle
		typeID uint32
		ok     bool
	}{
		{"matching type", h, 1, true},
		{"other type", h, 2, false},
		{"zero handle", 0, 1, false},
		{"never issued", h + 1, 1, false},
	}
	for _, tt := range tests {
		v, ok := table.Lookup(tt.handle, tt.typeID)
		if ok != tt.ok {
			t.Errorf("%s: ok = %v, want %v", tt.name, ok, tt.ok)
		}
		if ok && v != "engine" {
			t.Errorf("%s: value = %v", tt.name, v)
		}
	}

	if v, ok := table.Remove(h); !ok || v != "engine" {
		t.Fatalf("Remove = %v, %v", v, ok)
	}
	if table.Len() != 0 {
		t.Fatalf("Len = %d after Remove", table.Len())
	}
	if _, ok := table.Lookup(h, 1); ok {
		t.Fatal("removed handle still resolves")
	}
	if _, ok := table.Remove(h); ok {
		t.Fatal("second Remove succeeded")
	}
}

func TestTable_ReusedSlotRejectsOldHandle(t *testing.T) {
	table := NewTable()
	old := table.Insert(1, "a")
	table.Remove(old)

	h := table.Insert(1, "b")
	if h == old {
		t.Fatalf("reused slot returned the old handle %#x", h)
	}
	if _, ok := table.Lookup(old, 1); ok {
		t.Fatal("old handle resolves to the new value")
	}
}

func TestTable_Observer(t *testing.T) {
	table := NewTable()
	obs := &testObserver{}
	cancel := table.Subscribe(obs)

	h := table.Insert(1, "a")
	table.Remove(h)
	if len(obs.events) != 2 {
		t.Fatalf("got %d events, want 2", len(obs.events))
	}
	if obs.events[0].Type != EventCreated || obs.events[0].Handle != h {
		t.Fatalf("first event = %+v", obs.events[0])
	}
	if obs.events[1].Type != EventDropped || obs.events[1].Type.String() != "dropped" {
		t.Fatalf("second event = %+v", obs.events[1])
	}

	cancel()
	table.Insert(1, "b")
	if len(obs.events) != 2 {
		t.Fatal("event delivered after cancel")
	}
}

func TestTable_Close(t *testing.T) {
	table := NewTable()
	obs := &testObserver{}
	table.Subscribe(obs)

	d1, d2 := &dropCounter{}, &dropCounter{}
	table.Insert(1, d1)
	table.Insert(1, d2)

	if err := table.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if d1.count != 1 || d2.count != 1 {
		t.Fatalf("Drop counts = %d, %d", d1.count, d2.count)
	}
	if len(obs.events) != 4 || obs.events[3].Type != EventDropped {
		t.Fatalf("events = %+v", obs.events)
	}
	if h := table.Insert(1, "c"); h != 0 {
		t.Fatal("Insert after Close returned a handle")
	}
	if err := table.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
