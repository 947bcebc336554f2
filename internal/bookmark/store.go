// Package bookmark holds named pose snapshots and the live tracking slot.
package bookmark

import "viewmark/internal/pose"

// NoSelection is the selected index of a store with nothing selected.
const NoSelection = -1

// Entry is a name paired with its snapshot, as handed to persistence.
type Entry struct {
	Name     string
	Snapshot pose.Snapshot
}

// Store is an ordered list of named snapshots. Insertion order is the cycling
// order. Every mutation validates first, so names and snapshots always stay
// the same length and names stay unique.
type Store struct {
	names     []string
	snapshots []pose.Snapshot
	selected  int
}

func NewStore() *Store {
	return &Store{selected: NoSelection}
}

// NewStoreFromEntries rebuilds a store, rejecting duplicate names. The
// selection is restored when it addresses an entry and cleared otherwise.
func NewStoreFromEntries(entries []Entry, selected int) (*Store, error) {
	s := NewStore()
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.Name]; dup {
			return nil, &DuplicateNameError{Name: e.Name}
		}
		seen[e.Name] = struct{}{}
	}
	for _, e := range entries {
		s.names = append(s.names, e.Name)
		s.snapshots = append(s.snapshots, e.Snapshot)
	}
	if selected >= 0 && selected < len(s.names) {
		s.selected = selected
	}
	return s, nil
}

func (s *Store) Len() int {
	return len(s.names)
}

// Selected returns the selected index or NoSelection.
func (s *Store) Selected() int {
	return s.selected
}

// Select moves the selection to index. NoSelection is always accepted.
func (s *Store) Select(index int) error {
	if index != NoSelection && !s.inRange(index) {
		return &IndexOutOfRangeError{Index: index, Len: len(s.names)}
	}
	s.selected = index
	return nil
}

// Current returns the selected entry, if any.
func (s *Store) Current() (Entry, bool) {
	if !s.inRange(s.selected) {
		return Entry{}, false
	}
	return Entry{Name: s.names[s.selected], Snapshot: s.snapshots[s.selected]}, true
}

func (s *Store) At(index int) (Entry, error) {
	if !s.inRange(index) {
		return Entry{}, &IndexOutOfRangeError{Index: index, Len: len(s.names)}
	}
	return Entry{Name: s.names[index], Snapshot: s.snapshots[index]}, nil
}

// IndexOf returns the index of name, or -1.
func (s *Store) IndexOf(name string) int {
	for i, n := range s.names {
		if n == name {
			return i
		}
	}
	return -1
}

// Names returns a copy of the names in cycling order.
func (s *Store) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.names))
	for i := range s.names {
		out[i] = Entry{Name: s.names[i], Snapshot: s.snapshots[i]}
	}
	return out
}

// Add appends a new bookmark. Names are matched exactly; use Override to
// replace an existing slot. The selection is left alone.
func (s *Store) Add(name string, snap pose.Snapshot) error {
	if s.IndexOf(name) >= 0 {
		return &DuplicateNameError{Name: name}
	}
	s.names = append(s.names, name)
	s.snapshots = append(s.snapshots, snap)
	return nil
}

// Override replaces the snapshot at index and keeps its name.
func (s *Store) Override(index int, snap pose.Snapshot) error {
	if !s.inRange(index) {
		return &IndexOutOfRangeError{Index: index, Len: len(s.names)}
	}
	s.snapshots[index] = snap
	return nil
}

// RemoveAt deletes the bookmark at index and repairs the selection: removing
// the selected last entry steps back one (to NoSelection when the store
// empties), and removing an entry before the selection shifts it down so it
// still names the same bookmark.
func (s *Store) RemoveAt(index int) error {
	if !s.inRange(index) {
		return &IndexOutOfRangeError{Index: index, Len: len(s.names)}
	}
	last := len(s.names) - 1
	s.names = append(s.names[:index], s.names[index+1:]...)
	s.snapshots = append(s.snapshots[:index], s.snapshots[index+1:]...)

	switch {
	case s.selected == index && index == last:
		s.selected--
	case s.selected > index:
		s.selected--
	}
	return nil
}

func (s *Store) Clear() {
	s.names = nil
	s.snapshots = nil
	s.selected = NoSelection
}

// CycleNext advances the selection with wraparound. From NoSelection it
// lands on the first entry. Empty stores are left untouched.
func (s *Store) CycleNext() int {
	n := len(s.names)
	if n == 0 {
		return s.selected
	}
	s.selected = (s.selected + 1) % n
	return s.selected
}

// CyclePrevious steps the selection back with wraparound. From NoSelection
// it lands on the last entry. Empty stores are left untouched.
func (s *Store) CyclePrevious() int {
	n := len(s.names)
	if n == 0 {
		return s.selected
	}
	if s.selected <= 0 {
		s.selected = n - 1
	} else {
		s.selected--
	}
	return s.selected
}

func (s *Store) inRange(index int) bool {
	return index >= 0 && index < len(s.names)
}
