package navigation

// BackStack is the ordered history of navigation entries. The most
// recently pushed entry is the top and is always the current view. A
// sheet marker records the depth at which the most recent modal
// presentation began, so everything pushed during that presentation can
// be discarded as a unit.
//
// A BackStack is owned exclusively by its Controller and is not safe
// for concurrent use; all mutations happen on the UI's execution
// context. Every pop either removes the intended range or removes
// nothing, so there is no partial-failure state.
type BackStack struct {
	entries   []Entry
	sheetMark int
}

// NewBackStack creates an empty back-stack with no sheet marker.
func NewBackStack() *BackStack {
	return &BackStack{sheetMark: -1}
}

// Push appends entry as the new top. It always succeeds.
func (s *BackStack) Push(entry Entry) {
	s.entries = append(s.entries, entry)
}

// Peek returns the top entry without removing it. The boolean is false
// when the stack is empty.
func (s *BackStack) Peek() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// PopToPrevious removes the top entry, then keeps removing until a
// retained entry becomes the new top. A non-empty stack always loses at
// least one entry. When nothing retained remains the stack empties and
// the caller decides the fallback, typically dismissing the enclosing
// modal.
func (s *BackStack) PopToPrevious() {
	if len(s.entries) == 0 {
		return
	}
	s.entries = s.entries[:len(s.entries)-1]
	for len(s.entries) > 0 && !s.entries[len(s.entries)-1].Retained {
		s.entries = s.entries[:len(s.entries)-1]
	}
}

// PopToRoot removes every entry except the bottom-most one. No-op on an
// empty stack.
func (s *BackStack) PopToRoot() {
	if len(s.entries) > 1 {
		s.entries = s.entries[:1]
	}
}

// PopToView truncates the stack so the top-most entry with the given id
// becomes the new top, removing everything above it. When no entry
// matches, the stack is unchanged and false is returned.
func (s *BackStack) PopToView(id string) bool {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].ID == id {
			s.entries = s.entries[:i+1]
			return true
		}
	}
	return false
}

// MarkSheet records the current depth as the start of a modal
// presentation. Entries pushed afterwards belong to the sheet region.
func (s *BackStack) MarkSheet() {
	s.sheetMark = len(s.entries)
}

// PopSheet removes every entry at or above the sheet marker and clears
// the marker. No-op when no marker is recorded.
func (s *BackStack) PopSheet() {
	if s.sheetMark < 0 {
		return
	}
	s.entries = s.entries[:s.sheetMark]
	s.sheetMark = -1
}

// IsEmpty reports whether the stack has no entries.
func (s *BackStack) IsEmpty() bool {
	return len(s.entries) == 0
}

// IsSheetEmpty reports whether no entries exist above the recorded
// sheet marker. With no marker it is equivalent to IsEmpty.
func (s *BackStack) IsSheetEmpty() bool {
	mark := s.sheetMark
	if mark < 0 {
		mark = 0
	}
	return len(s.entries) <= mark
}

// Len returns the number of entries on the stack.
func (s *BackStack) Len() int {
	return len(s.entries)
}

// Clear removes all entries and the sheet marker.
func (s *BackStack) Clear() {
	s.entries = s.entries[:0]
	s.sheetMark = -1
}
