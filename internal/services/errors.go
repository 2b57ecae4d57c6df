package services

import "fmt"

// ErrorKind classifies a failed generation call so handlers can switch on the
// failure category instead of inspecting error text.
type ErrorKind int

const (
	KindAuth ErrorKind = iota // credentials missing or rejected
	KindRateLimited
	KindTransient
)

func (k ErrorKind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "transient"
	}
}

// GenerateError wraps a backend failure with its kind. Err is nil when the
// service was never configured with credentials.
type GenerateError struct {
	Kind ErrorKind
	Err  error
}

func (e *GenerateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generate failed (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("generate failed (%s)", e.Kind)
}

func (e *GenerateError) Unwrap() error {
	return e.Err
}
