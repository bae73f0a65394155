// Package selection turns the state of a set of toggle controls into the
// result a selection dialog hands back to its caller.
package selection

import "github.com/samber/lo"

// Toggle is a control with a label and a boolean active state.
type Toggle interface {
	Label() string
	Active() bool
}

// Checked returns the labels of every active toggle in creation order.
// Duplicate labels are kept. The result is never nil.
func Checked[T Toggle](toggles []T) []string {
	active := lo.Filter(toggles, func(t T, _ int) bool { return t.Active() })
	return lo.Map(active, func(t T, _ int) string { return t.Label() })
}

// LastActive returns the label of the last active toggle in creation order.
// A group that enforces exclusivity has at most one; if it fails to, the
// toggle created last wins. ok is false when nothing is active.
func LastActive[T Toggle](toggles []T) (label string, ok bool) {
	for _, t := range toggles {
		if t.Active() {
			label, ok = t.Label(), true
		}
	}
	return label, ok
}

// Slot holds a result that is written once by a callback and read after
// the event loop has returned. Both happen on the UI goroutine.
type Slot[T any] struct {
	value T
	set   bool
}

// Set stores v if the slot is still empty and reports whether it did.
func (s *Slot[T]) Set(v T) bool {
	if s.set {
		return false
	}
	s.value = v
	s.set = true
	return true
}

// Get returns the stored value and whether one was ever set.
func (s *Slot[T]) Get() (T, bool) {
	return s.value, s.set
}
