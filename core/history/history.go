// Package history provides the change-history (undo/redo) subsystem.
//
// A mutation is recorded as a pair of inverse closures plus an opaque
// target+property key used for merge detection. The stack itself knows
// nothing about the document model; the closures capture whatever state
// they need. One Stack belongs to one Song and is discarded with it.
package history

// Change is a single recorded mutation.
type Change struct {
	// Undo reverses the mutation. Replayed in reverse insertion order
	// when the containing batch is undone.
	Undo func()

	// Redo reapplies the mutation. Replayed in original insertion order.
	Redo func()

	// Target identifies the mutated object for merge detection.
	// Typically a pointer; compared with ==.
	Target any

	// Property names the mutated property for merge detection.
	Property string
}

// batch groups changes that undo/redo atomically as one user-visible step.
type batch struct {
	changes []Change
}

// Stack is an unbounded undo/redo stack. The zero value is not usable;
// call NewStack.
type Stack struct {
	batches   []*batch
	cursor    int // number of batches currently applied
	open      *batch
	depth     int
	replaying bool
}

// NewStack creates an empty history stack.
func NewStack() *Stack {
	return &Stack{}
}

// Record pushes a single change as its own batch, or appends it to the
// open batch if one is being recorded. Recording while undone discards
// the redo tail. Calls made while the stack is replaying an undo or redo
// are ignored.
func (s *Stack) Record(c Change) {
	if s == nil || s.replaying {
		return
	}
	if s.open != nil {
		s.open.changes = append(s.open.changes, c)
		return
	}
	s.push(&batch{changes: []Change{c}})
}

// RecordProperty records a single-property change that merges with the
// most recent history entry when that entry is a lone change to the same
// target and property. Merging keeps the oldest undo and the newest redo,
// so keystroke-granularity edits collapse into one coherent undo step.
func (s *Stack) RecordProperty(target any, property string, undo, redo func()) {
	if s == nil || s.replaying {
		return
	}
	c := Change{Undo: undo, Redo: redo, Target: target, Property: property}
	if s.open != nil {
		s.open.changes = append(s.open.changes, c)
		return
	}
	if s.cursor == len(s.batches) && s.cursor > 0 {
		top := s.batches[s.cursor-1]
		if len(top.changes) == 1 && top.changes[0].Target == target && top.changes[0].Property == property {
			top.changes[0].Redo = redo
			return
		}
	}
	s.push(&batch{changes: []Change{c}})
}

// Begin opens a batch. Changes recorded until the matching End form one
// undo step. Begin/End pairs nest; only the outermost pair delimits the
// batch.
func (s *Stack) Begin() {
	if s == nil || s.replaying {
		return
	}
	if s.depth == 0 {
		s.open = &batch{}
	}
	s.depth++
}

// End closes the batch opened by Begin and pushes it if it recorded
// anything.
func (s *Stack) End() {
	if s == nil || s.replaying || s.depth == 0 {
		return
	}
	s.depth--
	if s.depth > 0 {
		return
	}
	b := s.open
	s.open = nil
	if len(b.changes) > 0 {
		s.push(b)
	}
}

func (s *Stack) push(b *batch) {
	s.batches = append(s.batches[:s.cursor], b)
	s.cursor = len(s.batches)
}

// Undo pops the most recent batch and replays its undo actions in
// reverse insertion order. Returns false when there is nothing to undo.
func (s *Stack) Undo() bool {
	if s == nil || s.cursor == 0 {
		return false
	}
	b := s.batches[s.cursor-1]
	s.replaying = true
	for i := len(b.changes) - 1; i >= 0; i-- {
		b.changes[i].Undo()
	}
	s.replaying = false
	s.cursor--
	return true
}

// Redo replays the next batch's redo actions in original insertion
// order. Returns false when there is nothing to redo.
func (s *Stack) Redo() bool {
	if s == nil || s.cursor == len(s.batches) {
		return false
	}
	b := s.batches[s.cursor]
	s.replaying = true
	for i := range b.changes {
		b.changes[i].Redo()
	}
	s.replaying = false
	s.cursor++
	return true
}

// CanUndo reports whether Undo would do anything.
func (s *Stack) CanUndo() bool {
	return s != nil && s.cursor > 0
}

// CanRedo reports whether Redo would do anything.
func (s *Stack) CanRedo() bool {
	return s != nil && s.cursor < len(s.batches)
}

// Len returns the number of applied batches.
func (s *Stack) Len() int {
	if s == nil {
		return 0
	}
	return s.cursor
}

// Clear discards all history.
func (s *Stack) Clear() {
	if s == nil {
		return
	}
	s.batches = nil
	s.cursor = 0
	s.open = nil
	s.depth = 0
}
