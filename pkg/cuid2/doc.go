/*
Package cuid2 generates and validates CUID2 collision-resistant identifiers.

A CUID2 is a short, URL-safe, fixed-length string over the alphabet [0-9a-z]. Each id is
derived from four inputs hashed together with SHA3-512:
  - the current wall-clock time (Unix seconds, base 36)
  - fresh random entropy as long as the requested id
  - a monotonically increasing counter, seeded randomly per generator
  - a fingerprint computed once per generator

The digest is rendered in base 36 and truncated to the configured length, so ids produced by
this package are compatible with other CUID2 implementations.

CUID2s are collision resistant, not secret. They are not suitable as security tokens and
carry no ordering guarantee beyond rough time locality.

# Basic Usage

One-shot generation:

	id, err := cuid2.Create()

Reusable generator (amortizes the fingerprint computation):

	generate, err := cuid2.Init(cuid2.WithLength(32))
	if err != nil {
	    return err
	}
	a := generate()
	b := generate()

Validation:

	cuid2.IsValid("k0xpkry4lx8tl3qh8vry0f6m")           // true
	cuid2.IsValid("abc123", cuid2.WithMaxLength(10))   // true
	cuid2.IsValid(123)                                 // false

# Concurrency

A Generator is safe for concurrent use. Its counter is advanced atomically, so concurrent
callers never observe the same counter value. Injected random and counter functions must be
safe for concurrent use as well. Independent generators share no state.
*/
package cuid2
