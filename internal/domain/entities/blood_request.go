package entities

import "time"

// RequestStatus is the lifecycle state of a blood request.
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusFulfilled  RequestStatus = "fulfilled"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

// CanTransitionTo reports whether the one-way lifecycle allows moving from
// s to next: pending -> in_progress -> fulfilled, with cancellation
// possible from pending or in_progress.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	switch s {
	case RequestStatusPending:
		return next == RequestStatusInProgress || next == RequestStatusCancelled
	case RequestStatusInProgress:
		return next == RequestStatusFulfilled || next == RequestStatusCancelled
	default:
		return false
	}
}

// Request urgency levels declared by the caller.
const (
	UrgencyNormal   = "normal"
	UrgencyUrgent   = "urgent"
	UrgencyCritical = "critical"
)

// BloodRequest represents a blood request and its lifecycle state.
type BloodRequest struct {
	RequestID                string        `json:"request_id"`
	Status                   RequestStatus `json:"status"`
	BloodGroup               string        `json:"blood_group"`
	UnitsRequired            int           `json:"units_required"`
	UnitsFulfilled           int           `json:"units_fulfilled,omitempty"`
	Urgency                  string        `json:"urgency"`
	EstimatedFulfillmentTime string        `json:"estimated_fulfillment_time,omitempty"`
	AssignedBloodBank        string        `json:"assigned_blood_bank,omitempty"`
	ContactPhone             string        `json:"contact_phone,omitempty"`
	RequesterName            string        `json:"requester_name"`
	RequesterType            string        `json:"requester_type"`
	PatientDetails           string        `json:"patient_details,omitempty"`
	DeliveryAddress          string        `json:"delivery_address,omitempty"`
	CreatedAt                time.Time     `json:"created_at"`
	FulfilledAt              *time.Time    `json:"fulfilled_at,omitempty"`
}

// BloodRequestInput carries the parameters of a request submission.
type BloodRequestInput struct {
	RequesterName        string `json:"requester_name"`
	RequesterType        string `json:"requester_type"`
	BloodGroup           string `json:"blood_group"`
	UnitsRequired        int    `json:"units_required"`
	Urgency              string `json:"urgency"`
	PatientDetails       string `json:"patient_details,omitempty"`
	DeliveryAddress      string `json:"delivery_address,omitempty"`
	PreferredBloodBankID string `json:"preferred_blood_bank_id,omitempty"`
}
