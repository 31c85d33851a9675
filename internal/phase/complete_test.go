package phase

import (
	"testing"
	"time"

	"github.com/dmoreno/groundwork/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestIsComplete_EmptyProject_NothingIsVacuouslyComplete(t *testing.T) {
	snap := emptySnapshot()
	for _, p := range []domain.Phase{domain.PhaseDemo, domain.PhasePrep, domain.PhaseInstall, domain.PhaseCure, domain.PhaseCloseout} {
		assert.False(t, IsComplete(snap, p), "%s must not be complete on an empty project", p)
	}
}

func TestIsComplete_UnknownPhase_AlwaysIncomplete(t *testing.T) {
	snap := snapshotAtPhase(domain.PhaseCloseout)
	assert.False(t, IsComplete(snap, domain.Phase("paint")))
}

func TestIsComplete_Demo_ScheduleRowsAreAuthoritative(t *testing.T) {
	snap := emptySnapshot()
	snap.SchedulePhases = []domain.SchedulePhase{
		{ID: "sp-1", Phase: domain.PhaseDemo, Progress: 100, StartDate: day(1), EndDate: day(2)},
		{ID: "sp-2", Phase: domain.PhaseDemo, Progress: 60, StartDate: day(2), EndDate: day(3)},
	}
	assert.False(t, IsComplete(snap, domain.PhaseDemo), "a demo row below 100%% keeps demo incomplete")

	snap.SchedulePhases[1].Progress = 100
	assert.True(t, IsComplete(snap, domain.PhaseDemo))
}

func TestIsComplete_Demo_FallbackNeedsLogEvidenceAndProgress(t *testing.T) {
	snap := emptySnapshot()
	snap.Project.Progress = 50

	// Progress alone is not evidence.
	assert.False(t, IsComplete(snap, domain.PhaseDemo))

	snap.DailyLogs = []domain.DailyLog{{ID: "log-1", Phase: domain.PhaseDemo, WorkCompleted: "tear-out done"}}
	assert.True(t, IsComplete(snap, domain.PhaseDemo))

	// A log with no overall progress is not enough either.
	snap.Project.Progress = 0
	assert.False(t, IsComplete(snap, domain.PhaseDemo))
}

func TestIsComplete_Acclimation_SessionStillCountingDown(t *testing.T) {
	snap := emptySnapshot()
	snap.Acclimations = []domain.AcclimationSession{{
		ID: "acc-1", MaterialName: "red oak", RequiredHours: 48,
		StartTime: testNow.Add(-47 * time.Hour), Status: domain.AcclimationInProgress,
	}}
	assert.False(t, IsComplete(snap, domain.PhaseAcclimation), "47 of 48 hours elapsed")

	// Advance the clock two hours.
	snap.Now = testNow.Add(2 * time.Hour)
	assert.True(t, IsComplete(snap, domain.PhaseAcclimation))
}

func TestIsComplete_Acclimation_AllSessionsMustFinish(t *testing.T) {
	snap := emptySnapshot()
	snap.Acclimations = []domain.AcclimationSession{
		{ID: "acc-1", RequiredHours: 48, StartTime: testNow.Add(-72 * time.Hour), Status: domain.AcclimationComplete},
		{ID: "acc-2", RequiredHours: 72, StartTime: testNow.Add(-24 * time.Hour), Status: domain.AcclimationInProgress},
	}
	assert.False(t, IsComplete(snap, domain.PhaseAcclimation), "one session still counting down")

	snap.Acclimations[1].Status = domain.AcclimationComplete
	assert.True(t, IsComplete(snap, domain.PhaseAcclimation))
}

func TestIsComplete_Acclimation_CancelledSessionsIgnored(t *testing.T) {
	snap := emptySnapshot()
	snap.Acclimations = []domain.AcclimationSession{
		{ID: "acc-1", RequiredHours: 48, StartTime: testNow.Add(-72 * time.Hour), Status: domain.AcclimationComplete},
		{ID: "acc-2", RequiredHours: 48, StartTime: testNow.Add(-1 * time.Hour), Status: domain.AcclimationCancelled},
	}
	assert.True(t, IsComplete(snap, domain.PhaseAcclimation))
}

func TestIsComplete_Acclimation_NoSessions_DeliveriesDecide(t *testing.T) {
	snap := emptySnapshot()
	assert.True(t, IsComplete(snap, domain.PhaseAcclimation), "nothing to acclimate passes through")

	snap.Deliveries = []domain.MaterialDelivery{{
		ID: "del-1", MaterialName: "engineered oak", RequiresAcclimation: true,
		Status: domain.DeliveryDelivered,
	}}
	assert.False(t, IsComplete(snap, domain.PhaseAcclimation),
		"a delivered material that needs acclimation has no session yet")
}

func TestIsComplete_Install_AllRowsMustBeCompleted(t *testing.T) {
	snap := emptySnapshot()
	assert.False(t, IsComplete(snap, domain.PhaseInstall), "no install rows means incomplete")

	snap.SchedulePhases = []domain.SchedulePhase{
		{ID: "sp-1", Phase: domain.PhaseInstall, Status: domain.ScheduleCompleted, StartDate: day(3), EndDate: day(4)},
		{ID: "sp-2", Phase: domain.PhaseInstall, Status: domain.ScheduleInProgress, StartDate: day(4), EndDate: day(5)},
	}
	assert.False(t, IsComplete(snap, domain.PhaseInstall))

	snap.SchedulePhases[1].Status = domain.ScheduleCompleted
	assert.True(t, IsComplete(snap, domain.PhaseInstall))
}

func TestIsComplete_Cure_RequiresElapsedCureTime(t *testing.T) {
	cfg, _ := domain.ConfigFor(domain.PhaseCure)

	snap := emptySnapshot()
	justEnded := testNow.Add(-1 * time.Hour)
	snap.SchedulePhases = []domain.SchedulePhase{{
		ID: "sp-1", Phase: domain.PhaseInstall, Status: domain.ScheduleCompleted,
		StartDate: day(3), EndDate: day(5), ActualEnd: &justEnded,
	}}
	assert.False(t, IsComplete(snap, domain.PhaseCure), "install just ended")

	longAgo := testNow.Add(-time.Duration(cfg.CureHours+1) * time.Hour)
	snap.SchedulePhases[0].ActualEnd = &longAgo
	assert.True(t, IsComplete(snap, domain.PhaseCure))
}

func TestIsComplete_Cure_IncompleteWhileInstallIncomplete(t *testing.T) {
	snap := emptySnapshot()
	snap.SchedulePhases = []domain.SchedulePhase{{
		ID: "sp-1", Phase: domain.PhaseInstall, Status: domain.ScheduleInProgress,
		StartDate: day(3), EndDate: day(5),
	}}
	assert.False(t, IsComplete(snap, domain.PhaseCure))
}

func TestIsComplete_Punch_OpenItemBlocks(t *testing.T) {
	snap := emptySnapshot()
	assert.True(t, IsComplete(snap, domain.PhasePunch), "zero open punch items")

	snap.PunchItems = []domain.PunchItem{{
		ID: "pi-1", Title: "gap at stair nosing", Severity: domain.SeverityCritical,
		Status: domain.PunchOpen,
	}}
	assert.False(t, IsComplete(snap, domain.PhasePunch))

	snap.PunchItems[0].Status = domain.PunchCompleted
	assert.True(t, IsComplete(snap, domain.PhasePunch))
}

func TestIsComplete_Closeout_ProgressGate(t *testing.T) {
	snap := emptySnapshot()
	snap.Project.Progress = 99
	assert.False(t, IsComplete(snap, domain.PhaseCloseout))
	snap.Project.Progress = 100
	assert.True(t, IsComplete(snap, domain.PhaseCloseout))
}
