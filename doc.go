// Package seqjoin flattens nested cooperative sequences.
//
// A host scheduler typically drives a [Seq] one step per scheduling tick:
// it calls Next, reads Current, acts on the value (waits a tick, a timer,
// an external event), and only then calls Next again.
// A sequence calls into a sub-sequence by producing it as a value.
// A naive host treats that boundary like any other suspension, so
// the sub-sequence does not take its first step until the next tick, and
// the caller does not resume until the tick after the sub-sequence ends.
// Every nesting level adds dead time on entry and on return.
//
// A [Joiner] removes that dead time.
// It wraps a root sequence and presents the entire nested call tree to
// the host as one flat sequence.
// Internally it keeps an explicit stack of the sequences currently being
// drained. A single call of [Joiner.Next] advances the innermost sequence;
// whenever that sequence ends, the Joiner pops it and resumes its caller
// within the same call, and whenever it produces another sequence,
// the Joiner pushes and advances that one within the same call, too.
// Control only returns to the host when a value is produced that the host
// itself must act on.
// The cost of draining a nesting boundary is thus paid inside one call of
// Next instead of being deferred across scheduler ticks.
// Values come out in depth-first order, exactly as if every sub-sequence
// had been spliced into its caller.
//
// # Classification
//
// Not every sequence-shaped value is a nested call.
// Some hosts define instruction types that are structurally sequences but
// carry special meaning, and must reach the host untouched for the host to
// apply its own handling.
// A [Classifier] decides, for each freshly produced value, whether it is
// a nested sequence to drain or a value to hand back.
// The default policy, [Classify], inlines every [Seq] except those tagged
// with the [Marker] interface; everything else passes through.
// A different host integration can substitute its own policy with
// [Joiner.SetClassifier].
//
// # Restart and resource release
//
// A [Seq] is single-pass. Sequences that can return to their initial
// position additionally implement [Restarter]; [Joiner.Reset] relies on
// the root doing so.
// Sequences that hold resources additionally implement [Stopper];
// a Joiner stops every sequence it discards, whether popped on exhaustion
// or abandoned by Reset, so that sequences backed by goroutines
// (see [FromSeq]) do not leak.
package seqjoin
