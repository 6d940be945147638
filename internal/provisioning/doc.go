// Package provisioning sequences one provisioning run: REPL discovery,
// space accounting, a conditional firmware reflash, and the incremental
// file upload.
//
// The run is a small state machine:
//
//	Discovering -> CheckingSpace -> {Reflashing | -} -> Writing -> Done
//
// Any discovery or space-query failure falls back to an unconditional
// reflash; a failed reflash or a failed write ends the run. Steps are
// strictly sequential since the serial peripheral is exclusively owned.
package provisioning
