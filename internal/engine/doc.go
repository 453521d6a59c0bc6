// Package engine runs the sorting visualizer: it generates a random
// sequence, sorts it one swap at a time with a pause between swaps, dwells
// on the sorted result and starts over with a brand-new sequence.
//
//   - [Engine]: owns the configuration and the single active driver
//   - [Handle]: disposable lifecycle handle returned by [Engine.Start]
//   - [Frame]: one published snapshot of the sequence
//
// # Lifecycle
//
//	Idle -> Sorting   a new sequence was generated
//	Sorting -> Paused the sequence is fully ordered
//	Paused -> Idle    the dwell time elapsed; regeneration follows at once
//
// Frames are delivered over an unbuffered channel, strictly in swap order.
// A slow reader slows the animation down rather than losing frames.
// [Handle.Stop] cancels any pending delay, releases its timer and returns
// only after the driver goroutine has exited, so nothing is published
// after it returns.
package engine
