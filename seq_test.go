package seqjoin_test

import (
	"reflect"
	"testing"

	"github.com/b97tsk/seqjoin"
)

// collect advances s until exhaustion, collecting every value.
func collect(s seqjoin.Seq) (values []any) {
	for s.Next() {
		values = append(values, s.Current())
	}
	return values
}

func TestOf(t *testing.T) {
	t.Run("Overall", func(t *testing.T) {
		s := seqjoin.Of(1, 2, 3)

		if values := collect(s); !reflect.DeepEqual(values, []any{1, 2, 3}) {
			t.Errorf("got %v, want [1 2 3]", values)
		}
		if s.Next() {
			t.Error("Next did not keep returning false after exhaustion.")
		}
	})
	t.Run("Empty", func(t *testing.T) {
		if seqjoin.Of().Next() {
			t.Error("Next returned true for an empty sequence.")
		}
	})
	t.Run("Restart", func(t *testing.T) {
		s := seqjoin.Of("a", "b")

		if !s.Next() || s.Current() != "a" {
			t.Fatal("unexpected first value.")
		}

		s.(seqjoin.Restarter).Restart()

		if values := collect(s); !reflect.DeepEqual(values, []any{"a", "b"}) {
			t.Errorf("got %v, want [a b]", values)
		}
	})
}

func TestFromSeq(t *testing.T) {
	values := func(yield func(any) bool) {
		for i := 1; i <= 3; i++ {
			if !yield(i) {
				return
			}
		}
	}

	t.Run("Overall", func(t *testing.T) {
		s := seqjoin.FromSeq(values)

		if got := collect(s); !reflect.DeepEqual(got, []any{1, 2, 3}) {
			t.Errorf("got %v, want [1 2 3]", got)
		}
		if s.Next() {
			t.Error("Next did not keep returning false after exhaustion.")
		}
	})
	t.Run("Restart", func(t *testing.T) {
		s := seqjoin.FromSeq(values)

		if !s.Next() || s.Current() != 1 {
			t.Fatal("unexpected first value.")
		}

		s.(seqjoin.Restarter).Restart()

		if got := collect(s); !reflect.DeepEqual(got, []any{1, 2, 3}) {
			t.Errorf("got %v, want [1 2 3]", got)
		}
	})
	t.Run("Stop", func(t *testing.T) {
		var cleanedUp bool

		s := seqjoin.FromSeq(func(yield func(any) bool) {
			defer func() { cleanedUp = true }()
			for i := 1; ; i++ {
				if !yield(i) {
					return
				}
			}
		})

		if !s.Next() || s.Current() != 1 {
			t.Fatal("unexpected first value.")
		}

		s.(seqjoin.Stopper).Stop()

		if !cleanedUp {
			t.Error("Stop did not end the underlying iteration.")
		}
		if s.Next() {
			t.Error("Next returned true after Stop.")
		}
	})
	t.Run("StopBeforeNext", func(t *testing.T) {
		s := seqjoin.FromSeq(values)

		s.(seqjoin.Stopper).Stop() // Must be a no-op.

		if got := collect(s); !reflect.DeepEqual(got, []any{1, 2, 3}) {
			t.Errorf("got %v, want [1 2 3]", got)
		}
	})
}
