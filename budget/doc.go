// Package budget provides decode-time resource accounting.
//
// Decoding a tag stream charges an [Accounter] for every unit consumed,
// including a fixed overhead per tag approximating its in-memory cost.
// Charges are made before the corresponding buffers are allocated, so a
// payload which would exhaust memory (for example a small compressed
// stream expanding into millions of nested empty lists) fails early
// with an error wrapping [ErrExceeded].
//
// A quota of 0 is unlimited.  Callers opt in to protection by passing
// an accounter created with a positive quota.
package budget
