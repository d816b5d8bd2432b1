package rowconv

import (
	"fmt"
)

//go:generate go tool stringer -type=Stage -trimprefix=Stage -output=stage_string.go

// Stage names the conversion step a row failed in.
type Stage int

const (
	_ Stage = iota

	StageNormalize
	StageDecode
)

// RowError is the single terminal failure of a row conversion.
type RowError struct {
	Stage  Stage
	Column string // empty when the failure is not tied to one column
	Err    error
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}

	return fmt.Sprintf("%s column %q: %v", e.Stage, e.Column, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
