package domain

import "time"

// FacultyStatus is the presence state of a faculty member.
type FacultyStatus string

const (
	FacultyPresent FacultyStatus = "present"
	FacultyAbsent  FacultyStatus = "absent"
)

// FacultyMember is a teacher record in the campus directory.
type FacultyMember struct {
	ID          string
	Name        string
	Status      FacultyStatus
	LastUpdated time.Time
}
