// Package futures provides a write-once Promise and a read-only, observable
// Future over the same completion state.
//
// A Promise is completed at most once, with either a value or an error.
// Observers attached to its Future before completion run after completion in
// registration order; observers attached after completion run immediately at
// registration, on the registering goroutine. Completion and registration are
// safe for concurrent use.
//
// By default observers run inline on the goroutine that completes the
// promise. A promise built with NewPromiseOn routes every observer through a
// Dispatcher instead, which may run them on background workers as long as it
// keeps per-promise submission order.
//
// Observer payloads are never copied or wrapped: the value or error an
// observer receives is the exact one passed to Complete or Fail.
package futures
