package domain

import "time"

// MaterialDelivery tracks an ordered material shipment. A delayed delivery
// blocks install; a delivered material that requires acclimation feeds the
// acclimation phase.
type MaterialDelivery struct {
	ID                  string
	ProjectID           string
	MaterialName        string
	Quantity            float64
	Unit                string // sqft, boxes, rolls, gal
	Status              DeliveryStatus
	ExpectedDate        time.Time
	DeliveredAt         *time.Time
	RequiresAcclimation bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
