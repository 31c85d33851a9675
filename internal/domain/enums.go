package domain

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectOnHold   ProjectStatus = "on_hold"
	ProjectDone     ProjectStatus = "done"
	ProjectArchived ProjectStatus = "archived"
)

type SchedulePhaseStatus string

const (
	ScheduleCompleted  SchedulePhaseStatus = "completed"
	ScheduleInProgress SchedulePhaseStatus = "in_progress"
	SchedulePending    SchedulePhaseStatus = "pending"
	ScheduleBlocked    SchedulePhaseStatus = "blocked"
	ScheduleDelayed    SchedulePhaseStatus = "delayed"
)

// ValidSchedulePhaseStatuses is the canonical set of accepted status strings.
var ValidSchedulePhaseStatuses = map[string]bool{
	"completed": true, "in_progress": true, "pending": true,
	"blocked": true, "delayed": true,
}

type BlockerSource string

const (
	BlockerFromDelivery    BlockerSource = "delivery"
	BlockerFromAcclimation BlockerSource = "acclimation"
	BlockerFromPunch       BlockerSource = "punch"
	BlockerManual          BlockerSource = "manual"
)

type AcclimationStatus string

const (
	AcclimationInProgress AcclimationStatus = "in_progress"
	AcclimationComplete   AcclimationStatus = "complete"
	AcclimationCancelled  AcclimationStatus = "cancelled"
)

type PunchStatus string

const (
	PunchOpen       PunchStatus = "open"
	PunchInProgress PunchStatus = "in_progress"
	PunchCompleted  PunchStatus = "completed"
)

type PunchSeverity string

const (
	SeverityMinor    PunchSeverity = "minor"
	SeverityMajor    PunchSeverity = "major"
	SeverityCritical PunchSeverity = "critical"
)

type DeliveryStatus string

const (
	DeliveryOrdered   DeliveryStatus = "ordered"
	DeliveryInTransit DeliveryStatus = "in_transit"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryDelayed   DeliveryStatus = "delayed"
)
