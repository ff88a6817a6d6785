// Package store owns the three linked collections of the application
// (users, job postings and student applications) and their persistence as a
// single JSON blob in one durable storage slot.
package store

import "time"

// Role classifies a user account. It is fixed at creation and never changes.
type Role string

const (
	RoleStudent  Role = "student"
	RoleProvider Role = "job-provider"
)

// User is an identity record. Students additionally carry a skills list and
// two denormalized counters; for providers those fields are null.
//
// The password is stored and compared as a plain string. There is no real
// authentication model in this system.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`

	// Student-only fields, null for providers.
	Skills          []string `json:"skills"`
	JobsApplied     *int     `json:"jobsApplied"`
	CoursesEnrolled *int     `json:"coursesEnrolled"`
}

// Job is a posting owned by exactly one provider. ProviderName is a
// denormalized copy taken at posting time.
type Job struct {
	ID           string    `json:"id"`
	ProviderID   string    `json:"providerId"`
	ProviderName string    `json:"providerName"`
	Title        string    `json:"title"`
	Type         string    `json:"type"`
	Description  string    `json:"description"`
	Skills       string    `json:"skills"`
	Pay          string    `json:"pay"`
	PostedAt     time.Time `json:"postedAt"`
}

// Application is a student's claim of interest in a job. Student name/email,
// job title and provider id are denormalized snapshots taken at application
// time and are not kept in sync afterwards.
type Application struct {
	ID           string    `json:"id"`
	StudentID    string    `json:"studentId"`
	StudentName  string    `json:"studentName"`
	StudentEmail string    `json:"studentEmail"`
	JobID        string    `json:"jobId"`
	JobTitle     string    `json:"jobTitle"`
	ProviderID   string    `json:"providerId"`
	AppliedAt    time.Time `json:"appliedAt"`
}

// persistedState is the on-disk layout of the blob slot. SchemaVersion was
// not present in early blobs; readers treat its absence as version 0.
type persistedState struct {
	SchemaVersion       int            `json:"schemaVersion"`
	Users               []*User        `json:"users"`
	Jobs                []*Job         `json:"jobs"`
	StudentApplications []*Application `json:"studentApplications"`
}
