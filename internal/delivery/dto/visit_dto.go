package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CheckInRequest struct {
	Name       string `json:"name" validate:"required,min=2"`
	Age        int    `json:"age" validate:"gte=0,lte=130"`
	Address    string `json:"address"`
	BloodGroup string `json:"blood_group"`
	Contact    string `json:"contact" validate:"required,len=10,numeric"`
	DoctorID   string `json:"doctor_id" validate:"required"`
}

type UpdateContactRequest struct {
	PatientID string `json:"patient_id" validate:"required"`
	Contact   string `json:"contact" validate:"required,len=10,numeric"`
}

// Response DTOs

type VisitResponse struct {
	ID          string    `json:"id"`
	Token       string    `json:"token"`
	Name        string    `json:"name"`
	Age         int       `json:"age"`
	Address     string    `json:"address,omitempty"`
	BloodGroup  string    `json:"blood_group,omitempty"`
	Contact     string    `json:"contact"`
	DoctorID    string    `json:"doctor_id"`
	Status      string    `json:"status"`
	CheckInTime time.Time `json:"check_in_time"`
}

// CheckInResponse pairs the new visit with the data the reception desk prints
// on the check-in slip.
type CheckInResponse struct {
	Visit      VisitResponse   `json:"visit"`
	DoctorName string          `json:"doctor_name"`
	Room       string          `json:"room,omitempty"`
	Fee        decimal.Decimal `json:"fee"`
}

// DoctorStatusResponse is one row of the reception dashboard.
type DoctorStatusResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Detail       string          `json:"detail,omitempty"`
	Location     string          `json:"location,omitempty"`
	Status       string          `json:"status"`
	Fee          decimal.Decimal `json:"fee"`
	WaitingCount int             `json:"waiting_count"`
}

type QueueResponse struct {
	Visits []VisitResponse `json:"visits"`
	Total  int             `json:"total"`
}
