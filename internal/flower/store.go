package flower

// Store owns the ordered list of flower records.
//
// Store is not safe for concurrent use. It is meant to be owned by a single
// Bubble Tea model and mutated only from Update.
type Store struct {
	records []Flower
}

// NewStore creates a store seeded with a copy of the given records.
func NewStore(seed []Flower) *Store {
	s := &Store{}
	s.ReplaceAll(seed)
	return s
}

// ReplaceAll swaps the whole sequence for a copy of records.
func (s *Store) ReplaceAll(records []Flower) {
	next := make([]Flower, len(records))
	copy(next, records)
	s.records = next
}

// DeleteAt removes the record at index. Later records shift left by one.
// An out-of-range index leaves the list unchanged.
func (s *Store) DeleteAt(index int) {
	next := make([]Flower, 0, len(s.records))
	for i, r := range s.records {
		if i != index {
			next = append(next, r)
		}
	}
	s.ReplaceAll(next)
}

// AppendOrUpdate appends record when target is NoTarget, otherwise it
// overwrites the record at target. A target past the end of the list
// matches no position and leaves the list unchanged.
func (s *Store) AppendOrUpdate(record Flower, target EditTarget) {
	if !target.IsSet() {
		next := make([]Flower, 0, len(s.records)+1)
		next = append(next, s.records...)
		next = append(next, record)
		s.ReplaceAll(next)
		return
	}

	next := make([]Flower, len(s.records))
	for i, r := range s.records {
		if i == target.Index() {
			next[i] = record
		} else {
			next[i] = r
		}
	}
	s.ReplaceAll(next)
}

// Records returns a copy of the current sequence.
func (s *Store) Records() []Flower {
	out := make([]Flower, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// At returns the record at index i, or false when i is out of range.
func (s *Store) At(i int) (Flower, bool) {
	if i < 0 || i >= len(s.records) {
		return Flower{}, false
	}
	return s.records[i], true
}
