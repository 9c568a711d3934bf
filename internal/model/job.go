package model

import "time"

// JobStatus is the application state of a tracked job.
type JobStatus string

const (
	// StatusPending is the default status for newly created jobs.
	StatusPending JobStatus = "pending"
	// StatusInterview marks a job with a scheduled interview.
	StatusInterview JobStatus = "interview"
	// StatusDeclined marks a rejected application.
	StatusDeclined JobStatus = "declined"
)

// Valid reports whether s is one of the known statuses.
func (s JobStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInterview, StatusDeclined:
		return true
	}
	return false
}

// Job represents a tracked job application owned by exactly one user.
type Job struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Company   string    `json:"company" gorm:"size:50;not null"`
	Position  string    `json:"position" gorm:"size:100;not null"`
	Status    JobStatus `json:"status" gorm:"size:20;default:'pending';index"`
	CreatedBy uint      `json:"created_by" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
