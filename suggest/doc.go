// Package suggest turns a stream of editor changes into model-proposed line
// fixes.
//
// Change events are buffered by a Scheduler until the user has been idle for
// a quiet interval. Each firing starts a cycle: the buffered range edits are
// summarized, sent together with the document text to a Backend, and the
// freeform reply is parsed into CandidateEdits held by a Store. An
// Applicator writes an accepted candidate back into the document as a single
// undoable edit.
//
// Cycles are not serialized. A newer cycle may resolve before an older one;
// by default the Store keeps the result of the highest cycle seen.
package suggest
