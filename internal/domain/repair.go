package domain

import "time"

type RepairStatus string

const (
	RepairPending    RepairStatus = "pending"
	RepairInProgress RepairStatus = "in_progress"
	RepairCompleted  RepairStatus = "completed"
)

func ValidRepairStatuses() []RepairStatus {
	return []RepairStatus{RepairPending, RepairInProgress, RepairCompleted}
}

// Repair is one ticket tracking a device's repair request from intake to
// completion. ReferenceNumber is the human-shareable identifier, distinct
// from the numeric primary key.
type Repair struct {
	ID                 int64        `json:"repair_id"`
	ReferenceNumber    string       `json:"reference_number"`
	CustomerID         int64        `json:"customer_id" validate:"required"`
	DeviceID           int64        `json:"device_id" validate:"required"`
	RequestDate        time.Time    `json:"request_date"`
	ProblemDescription string       `json:"problem_description" validate:"required"`
	Status             RepairStatus `json:"status"`
	CompletionDate     *time.Time   `json:"completion_date,omitempty"`

	Customer *Customer `json:"customer,omitempty"`
	Device   *Device   `json:"device,omitempty"`
}

// RepairService records one billable service performed on a repair.
type RepairService struct {
	ID            int64     `json:"id"`
	RepairID      int64     `json:"repair_id"`
	ServiceID     int64     `json:"service_id"`
	DatePerformed time.Time `json:"date_performed"`

	Service *Service `json:"service,omitempty"`
}
