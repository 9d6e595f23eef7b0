package entity

import (
	"fmt"
	"time"
)

// VisitStatus represents where a visit sits in the patient workflow.
type VisitStatus string

const (
	VisitStatusWaiting    VisitStatus = "Waiting"
	VisitStatusConsulting VisitStatus = "Consulting"
	VisitStatusCompleted  VisitStatus = "Completed"
)

// Visit is one patient's check-in-to-discharge episode. The same value is
// appended to the doctor's queue and to the permanent patient history at
// check-in; queue operations never touch the history copy.
type Visit struct {
	ID          string      `json:"id"`
	Token       string      `json:"token"`
	Name        string      `json:"name"`
	Age         int         `json:"age"`
	Address     string      `json:"address,omitempty"`
	BloodGroup  string      `json:"blood_group,omitempty"`
	Contact     string      `json:"contact"`
	DoctorID    string      `json:"doctor_id"`
	Status      VisitStatus `json:"status"`
	CheckInTime time.Time   `json:"check_in_time"`
}

// NewVisitID derives a visit id from the millisecond timestamp. Collision
// resistant for the engine's purposes, not cryptographically unique.
func NewVisitID(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	return "P" + ms[len(ms)-6:]
}

// IsWaiting checks if the visit is still queued.
func (v *Visit) IsWaiting() bool {
	return v.Status == VisitStatusWaiting
}

// IsConsulting checks if the visit is claimed by its doctor.
func (v *Visit) IsConsulting() bool {
	return v.Status == VisitStatusConsulting
}

// IsCompleted checks if the visit reached its terminal status.
func (v *Visit) IsCompleted() bool {
	return v.Status == VisitStatusCompleted
}

// BeginConsultation moves the visit into the consulting room.
func (v *Visit) BeginConsultation() {
	v.Status = VisitStatusConsulting
}

// Complete marks the visit terminal.
func (v *Visit) Complete() {
	v.Status = VisitStatusCompleted
}

// Release pushes a claimed visit back to the waiting queue. This is the only
// sanctioned status regression; it exists so a stalled consultation does not
// park the visit forever.
func (v *Visit) Release() {
	v.Status = VisitStatusWaiting
}
