package seqjoin

import "iter"

// A Seq is a stateful, single-pass producer of values, advanced one item at
// a time.
//
// Next advances the sequence and reports whether a value is available.
// Current returns the most recently produced value; it is only defined
// immediately after a call of Next that returned true.
// Once Next has returned false, further calls keep returning false.
//
// The following types implement Seq: the return values of [Of] and
// [FromSeq], and [Marked].
type Seq interface {
	Next() bool
	Current() any
}

// Restarter is the interface of any [Seq] that can return to its initial
// position.
//
// [Joiner.Reset] requires the root sequence to implement Restarter.
// Nested sequences are never restarted by a [Joiner], only discarded.
type Restarter interface {
	Restart()
}

// Stopper is the interface of any [Seq] that holds resources which must be
// released when the sequence is discarded before or after exhaustion.
//
// A [Joiner] calls Stop on every sequence it discards: on a sequence popped
// off its stack because Next returned false, and on every abandoned nested
// sequence when [Joiner.Reset] is called.
// Stop must be safe to call after exhaustion and more than once.
type Stopper interface {
	Stop()
}

// Marker is the interface of any value that a host defines as a suspension
// instruction in its own right, even though the value may also be
// sequence-shaped.
//
// The default [Classifier] never inlines a Marker; it always hands it back
// to the host so that the host's own handling is not bypassed.
type Marker interface {
	SuspensionMarker()
}

// Marked tags a sequence as a [Marker].
//
// A Marked value produced by a sequence reaches the host as-is under
// the default classification policy. The host can then drive the wrapped
// sequence itself, one step per tick or however it sees fit.
type Marked struct {
	Seq
}

// SuspensionMarker implements the [Marker] interface.
func (Marked) SuspensionMarker() {}

// Of returns a [Seq] that produces the given values in order.
//
// The returned Seq implements [Restarter].
func Of(values ...any) Seq {
	return &sliceSeq{values: values}
}

type sliceSeq struct {
	values []any
	n      int
}

func (s *sliceSeq) Next() bool {
	if s.n == len(s.values) {
		return false
	}
	s.n++
	return true
}

func (s *sliceSeq) Current() any {
	return s.values[s.n-1]
}

func (s *sliceSeq) Restart() {
	s.n = 0
}

// FromSeq returns a [Seq] that produces the values of seq.
//
// The returned Seq implements [Stopper] and [Restarter].
// Stopping it releases the underlying pull iterator; restarting it does
// the same and begins a fresh pass over seq on the next call of Next.
//
// Caveat: requires spawning a goroutine (which is stackful) when advancing
// the returned Seq. The goroutine leaks if the returned Seq is abandoned
// before exhaustion without a call of Stop. A [Joiner] stops every sequence
// it discards.
func FromSeq(seq iter.Seq[any]) Seq {
	return &pullSeq{seq: seq}
}

type pullSeq struct {
	seq  iter.Seq[any]
	next func() (any, bool)
	stop func()
	cur  any
}

func (s *pullSeq) Next() bool {
	if s.next == nil {
		s.next, s.stop = iter.Pull(s.seq)
	}
	v, ok := s.next()
	if !ok {
		s.cur = nil
		return false
	}
	s.cur = v
	return true
}

func (s *pullSeq) Current() any {
	return s.cur
}

func (s *pullSeq) Stop() {
	if s.stop != nil {
		s.stop()
	}
}

func (s *pullSeq) Restart() {
	if s.stop != nil {
		s.stop()
	}
	s.next, s.stop = nil, nil
	s.cur = nil
}
