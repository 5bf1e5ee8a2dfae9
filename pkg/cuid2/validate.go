package cuid2

type bounds struct {
	minLength int
	maxLength int
}

// ValidateOption adjusts the length bounds used by IsValid.
type ValidateOption func(*bounds)

// WithMinLength sets the shortest accepted candidate. Defaults to MinLength.
func WithMinLength(n int) ValidateOption {
	return func(b *bounds) {
		b.minLength = n
	}
}

// WithMaxLength sets the longest accepted candidate. Defaults to MaxLength.
func WithMaxLength(n int) ValidateOption {
	return func(b *bounds) {
		b.maxLength = n
	}
}

// IsValid reports whether candidate is a string within the length bounds made only of
// [0-9a-z]. Any other type yields false.
func IsValid(candidate any, opts ...ValidateOption) bool {
	b := bounds{minLength: MinLength, maxLength: MaxLength}
	for _, opt := range opts {
		opt(&b)
	}

	s, ok := candidate.(string)
	if !ok {
		return false
	}
	if len(s) < b.minLength || len(s) > b.maxLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isBase36(s[i]) {
			return false
		}
	}
	return true
}

func isBase36(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z')
}
