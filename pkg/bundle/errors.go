package bundle

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below via errors.Is.
var (
	ErrUnknownPreset   = errors.New("unknown preset")
	ErrPresetCycle     = errors.New("preset cycle")
	ErrPresetReference = errors.New("preset reference may only set files and ignores")
)

// UnknownPresetError reports a preset name with no registration.
type UnknownPresetError struct {
	Name string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("unknown preset %q", e.Name)
}

// Is matches ErrUnknownPreset.
func (e *UnknownPresetError) Is(target error) bool { return target == ErrUnknownPreset }

// SpecError attributes a resolution failure to one authored layer.
type SpecError struct {
	Index int    // Position in the authored list
	Label string // Layer name or preset reference
	Err   error
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("layer %d (%s): %v", e.Index, e.Label, e.Err)
}

func (e *SpecError) Unwrap() error { return e.Err }
