package seqjoin

import (
	"errors"
	"iter"
)

// ErrNotRestartable is returned by [Joiner.Reset] when the root sequence
// does not implement [Restarter].
var ErrNotRestartable = errors.New("seqjoin: root sequence does not support restart")

// A Classifier decides what to do with a value freshly produced by
// a sequence: either it is a nested sequence the [Joiner] should drain
// transparently (inline reports true), or it is a value to hand back to
// the host unchanged (inline reports false, and nested is ignored).
//
// A Classifier must be a pure function. It runs once per produced value,
// inside [Joiner.Next].
type Classifier func(v any) (nested Seq, inline bool)

// Classify is the default [Classifier].
//
// It inlines v if and only if v implements [Seq] and does not implement
// [Marker]. Everything else passes through: nil, host-native suspension
// instructions, Marker-tagged sequences, and any other value.
func Classify(v any) (nested Seq, inline bool) {
	if _, ok := v.(Marker); ok {
		return nil, false
	}
	s, ok := v.(Seq)
	return s, ok
}

// A Joiner presents a root sequence's entire nested call tree to a host
// scheduler as one flat [Seq].
//
// A Joiner exclusively owns its root sequence and every nested sequence
// the root produces, directly or indirectly. It is not safe for concurrent
// use, and it never blocks or spawns concurrent work: a call of Next runs
// synchronously until a pass-through value is produced or the tree is
// exhausted, however many nesting boundaries it has to drain on the way.
type Joiner struct {
	root     Seq
	stack    []Seq
	classify Classifier
	valid    bool
}

// New returns a new [Joiner] over root.
//
// Construction is side-effect-free: root is not advanced until the first
// call of Next. New panics if root is nil.
func New(root Seq) *Joiner {
	if root == nil {
		panic("seqjoin: nil root sequence")
	}
	return &Joiner{
		root:     root,
		stack:    []Seq{root},
		classify: Classify,
	}
}

// SetClassifier replaces the classification policy of j, which defaults to
// [Classify].
//
// One must call SetClassifier before the first call of Next.
// SetClassifier panics if c is nil.
func (j *Joiner) SetClassifier(c Classifier) {
	if c == nil {
		panic("seqjoin: nil Classifier")
	}
	j.classify = c
}

// Next advances j and reports whether a value is available via Current.
//
// Next advances the innermost active sequence. If that sequence is
// exhausted, Next discards it and resumes its caller immediately, within
// the same call. If it produces a value classified as a nested sequence,
// Next pushes the nested sequence and takes its first step immediately,
// within the same call, too. Only a pass-through value, or exhaustion of
// the whole tree, makes Next return.
//
// The number of true returns over the life of j equals exactly the number
// of pass-through values its tree produces; draining nesting boundaries
// costs no additional calls.
//
// A panic raised by any sequence in the tree propagates out of Next
// unwrapped.
func (j *Joiner) Next() bool {
	j.valid = false
	for len(j.stack) != 0 {
		n := len(j.stack)
		active := j.stack[n-1]
		if !active.Next() {
			j.stack[n-1] = nil
			j.stack = j.stack[:n-1]
			stop(active)
			continue
		}
		if nested, inline := j.classify(active.Current()); inline {
			if nested == nil {
				panic("seqjoin: Classifier inlined a nil sequence")
			}
			j.stack = append(j.stack, nested)
			continue
		}
		j.valid = true
		return true
	}
	return false
}

// Current returns the value most recently produced by j.
//
// Current panics unless the last call of Next returned true.
func (j *Joiner) Current() any {
	if !j.valid {
		panic("seqjoin: Current called without a preceding Next")
	}
	return j.stack[len(j.stack)-1].Current()
}

// Reset returns j to its initial state: every nested sequence still being
// drained is discarded (and stopped, if it implements [Stopper], innermost
// first), and the root is restarted.
//
// Nested sequences are never restarted, only discarded; the next call of
// Next resumes as if from the untouched root.
//
// Reset returns [ErrNotRestartable], and discards nothing, if the root
// does not implement [Restarter].
func (j *Joiner) Reset() error {
	r, ok := j.root.(Restarter)
	if !ok {
		return ErrNotRestartable
	}
	for i := len(j.stack) - 1; i > 0; i-- {
		stop(j.stack[i])
		j.stack[i] = nil
	}
	j.stack = append(j.stack[:0], j.root)
	j.valid = false
	r.Restart()
	return nil
}

// All returns the remaining pass-through values of j as a one-shot
// range-func iterator. Ranging over it advances j.
func (j *Joiner) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for j.Next() {
			if !yield(j.Current()) {
				return
			}
		}
	}
}

func stop(s Seq) {
	if s, ok := s.(Stopper); ok {
		s.Stop()
	}
}
