package palette

import (
	"sync"

	"github.com/kamstrup/intmap"
	"github.com/plus3/radial"
)

// Validator turns raw color codes from a game source into indices. Codes
// outside [0, Size) are a contract violation of the source: they are clamped
// to Empty and reported once per distinct code.
type Validator struct {
	mu   sync.Mutex
	seen *intmap.Set[int]
}

// NewValidator creates a validator with no reported codes.
func NewValidator() *Validator {
	return &Validator{seen: intmap.NewSet[int](8)}
}

// Clamp returns v as an Index, or Empty when v is out of range.
func (v *Validator) Clamp(code int) Index {
	if code >= 0 && code < Size {
		return Index(code)
	}

	v.mu.Lock()
	first := !v.seen.Has(code)
	if first {
		v.seen.Add(code)
	}
	v.mu.Unlock()

	if first {
		radial.Logger().Warn("palette: color index out of range, clamping to empty",
			"index", code, "size", Size)
	}
	return Empty
}

// Reported returns how many distinct invalid codes have been seen.
func (v *Validator) Reported() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.seen.Len()
}
