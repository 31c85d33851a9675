package domain

import "fmt"

// Phase is one of the seven canonical construction phases of a flooring job.
// The order of PhaseOrder is significant: a later phase can never be current
// while an earlier phase is incomplete.
type Phase string

const (
	PhaseDemo        Phase = "demo"
	PhasePrep        Phase = "prep"
	PhaseAcclimation Phase = "acclimation"
	PhaseInstall     Phase = "install"
	PhaseCure        Phase = "cure"
	PhasePunch       Phase = "punch"
	PhaseCloseout    Phase = "closeout"
)

// PhaseOrder is the canonical work ordering. Index defines precedence.
var PhaseOrder = []Phase{
	PhaseDemo,
	PhasePrep,
	PhaseAcclimation,
	PhaseInstall,
	PhaseCure,
	PhasePunch,
	PhaseCloseout,
}

// PhaseIndex returns the ordinal of p in the canonical order, or -1 if p is
// not a canonical phase.
func PhaseIndex(p Phase) int {
	for i, ph := range PhaseOrder {
		if ph == p {
			return i
		}
	}
	return -1
}

// ParsePhase converts a user-supplied string into a canonical Phase.
func ParsePhase(s string) (Phase, error) {
	p := Phase(s)
	if PhaseIndex(p) < 0 {
		return "", fmt.Errorf("unknown phase %q (expected one of demo, prep, acclimation, install, cure, punch, closeout)", s)
	}
	return p, nil
}
