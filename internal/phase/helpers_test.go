package phase

import (
	"time"

	"github.com/dmoreno/groundwork/internal/domain"
)

// testNow is the fixed clock all engine tests run against.
var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return time.Date(2025, 6, n, 0, 0, 0, 0, time.UTC)
}

func emptySnapshot() *Snapshot {
	return &Snapshot{
		Project: domain.Project{ID: "job-1", Name: "Hensley Kitchen", Progress: 0},
		Now:     testNow,
	}
}

// snapshotAtPhase builds a snapshot whose current phase is exactly p: every
// earlier phase is complete via its own fact source, and p itself carries an
// explicitly incomplete fact so later vacuous completion cannot advance past
// it.
func snapshotAtPhase(p domain.Phase) *Snapshot {
	snap := emptySnapshot()
	idx := domain.PhaseIndex(p)
	cureCfg, _ := domain.ConfigFor(domain.PhaseCure)

	// Install's end decides cure: long ago when cure must be complete,
	// recent when cure is the phase under test.
	installEnd := testNow.Add(-time.Duration(cureCfg.CureHours+24) * time.Hour)
	if p == domain.PhaseCure {
		installEnd = testNow.Add(-1 * time.Hour)
	}

	for i, ph := range domain.PhaseOrder {
		if i >= idx {
			break
		}
		switch ph {
		case domain.PhaseDemo, domain.PhasePrep:
			snap.SchedulePhases = append(snap.SchedulePhases, domain.SchedulePhase{
				ID: "sp-" + string(ph), ProjectID: snap.Project.ID, Phase: ph,
				Status: domain.ScheduleCompleted, Progress: 100,
				StartDate: day(1), EndDate: day(2),
			})
		case domain.PhaseAcclimation:
			snap.Acclimations = append(snap.Acclimations, domain.AcclimationSession{
				ID: "acc-done", ProjectID: snap.Project.ID, MaterialName: "red oak",
				RequiredHours: 48, StartTime: testNow.Add(-72 * time.Hour),
				Status: domain.AcclimationComplete,
			})
		case domain.PhaseInstall:
			snap.SchedulePhases = append(snap.SchedulePhases, domain.SchedulePhase{
				ID: "sp-install", ProjectID: snap.Project.ID, Phase: domain.PhaseInstall,
				Status: domain.ScheduleCompleted, Progress: 100,
				StartDate: day(3), EndDate: day(5), ActualEnd: &installEnd,
			})
		case domain.PhaseCure:
			// Derived from install's actual end; nothing to record.
		case domain.PhasePunch:
			closed := testNow.Add(-24 * time.Hour)
			snap.PunchItems = append(snap.PunchItems, domain.PunchItem{
				ID: "pi-done", ProjectID: snap.Project.ID, Title: "scuffed base trim",
				Severity: domain.SeverityMinor, Status: domain.PunchCompleted, ClosedAt: &closed,
			})
		}
	}

	// Pin p itself incomplete.
	switch p {
	case domain.PhaseDemo, domain.PhasePrep:
		snap.SchedulePhases = append(snap.SchedulePhases, domain.SchedulePhase{
			ID: "sp-" + string(p) + "-open", ProjectID: snap.Project.ID, Phase: p,
			Status: domain.ScheduleInProgress, Progress: 40,
			StartDate: day(1), EndDate: day(3),
		})
	case domain.PhaseAcclimation:
		snap.Acclimations = append(snap.Acclimations, domain.AcclimationSession{
			ID: "acc-open", ProjectID: snap.Project.ID, MaterialName: "maple",
			RequiredHours: 48, StartTime: testNow.Add(-2 * time.Hour),
			Status: domain.AcclimationInProgress,
		})
	case domain.PhaseInstall:
		snap.SchedulePhases = append(snap.SchedulePhases, domain.SchedulePhase{
			ID: "sp-install-open", ProjectID: snap.Project.ID, Phase: domain.PhaseInstall,
			Status: domain.SchedulePending, Progress: 0,
			StartDate: day(6), EndDate: day(8),
		})
	case domain.PhaseCure:
		// Recent install end set above keeps cure incomplete.
	case domain.PhasePunch:
		snap.PunchItems = append(snap.PunchItems, domain.PunchItem{
			ID: "pi-open", ProjectID: snap.Project.ID, Title: "gap at stair nosing",
			Severity: domain.SeverityCritical, Status: domain.PunchOpen,
		})
	case domain.PhaseCloseout:
		snap.Project.Progress = 95
	}

	return snap
}
