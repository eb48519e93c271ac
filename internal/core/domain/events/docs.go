// Package events converts the final state of a document pipeline into the
// outcome signal handed back to the caller.
//
// Each document type has a sealed event interface with exactly two variants:
// a succeeded event carrying the confirmed entity plus a compact comma-joined
// export line, and a failed event carrying the accumulated reasons verbatim.
// A pipeline run produces exactly one of the two. A non-terminal state
// reaching the converter is a sequencing bug and is reported as a failure
// naming the unexpected state.
package events
