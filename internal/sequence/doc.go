// Package sequence provides the bounded random magnitudes that the sorting
// visualizer animates.
//
//   - [Sequence]: ordered list of bar magnitudes
//   - [Generate]: fresh uniform sequence drawn from a [Source]
//
// A sequence is owned by one sort driver at a time. Snapshots handed to
// renderers are always clones.
package sequence
