package resource

import (
	"slices"
	"sync"
)

// Table hands out handles for host values and tags each value with a type
// so a handle of one kind can never be used as another. Observers see every
// insert and removal, including the removals done by Close.
type Table struct {
	backend   *LocalBackend
	observers []Observer
	mu        sync.RWMutex // guards observers and closed
	closed    bool
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{backend: NewLocalBackend()}
}

// Insert stores value under typeID. It returns 0 once the table is closed
// or when every slot is in use.
func (t *Table) Insert(typeID uint32, value any) Handle {
	t.mu.RLock()
	closed := t.closed
	t.mu.RUnlock()
	if closed {
		return 0
	}

	h, err := t.backend.Create(typeID, value)
	if err != nil {
		return 0
	}
	t.notify(Event{Type: EventCreated, Handle: h, TypeID: typeID, Value: value})
	return h
}

// Lookup returns the value behind h when it was inserted with typeID.
func (t *Table) Lookup(h Handle, typeID uint32) (any, bool) {
	if id, ok := t.backend.TypeID(h); !ok || id != typeID {
		return nil, false
	}
	return t.backend.Get(h)
}

// Remove releases h, calling Drop on values that implement Dropper.
func (t *Table) Remove(h Handle) (any, bool) {
	typeID, _ := t.backend.TypeID(h)
	value, ok := t.backend.Drop(h)
	if !ok {
		return nil, false
	}
	if d, ok := value.(Dropper); ok {
		d.Drop()
	}
	t.notify(Event{Type: EventDropped, Handle: h, TypeID: typeID, Value: value})
	return value, true
}

// Subscribe registers o and returns a function that unregisters it.
func (t *Table) Subscribe(o Observer) (cancel func()) {
	t.mu.Lock()
	t.observers = append(t.observers, o)
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if i := slices.Index(t.observers, o); i >= 0 {
			t.observers = slices.Delete(t.observers, i, i+1)
		}
	}
}

// Len returns the number of live handles.
func (t *Table) Len() int {
	return t.backend.Len()
}

// Close removes every live handle and rejects further inserts. It is safe
// to call more than once.
func (t *Table) Close() error {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()

	var live []Handle
	t.backend.Each(func(h Handle, _ uint32, _ any) bool {
		live = append(live, h)
		return true
	})
	for _, h := range live {
		t.Remove(h)
	}
	return t.backend.Close()
}

func (t *Table) notify(e Event) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, o := range t.observers {
		o.OnResourceEvent(e)
	}
}
