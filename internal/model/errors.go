package model

import "fmt"

// Phase names the step of a scan round in which a fault happened.
type Phase string

// Scan phases reported by ScanError.
const (
	PhaseParse    Phase = "parse"
	PhaseInterest Phase = "interest"
	PhaseSelect   Phase = "select"
	PhaseDeliver  Phase = "deliver"
	PhaseArchive  Phase = "archive"
	PhaseWalk     Phase = "walk"
	PhaseLocator  Phase = "locator"
	PhaseNotify   Phase = "notify"
)

// ScanError carries the phase, the offending component (a listener name or a
// locator) and the underlying cause of a failed scan.
type ScanError struct {
	Phase     Phase
	Component string
	Err       error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s failed for %s: %v", e.Phase, e.Component, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}
