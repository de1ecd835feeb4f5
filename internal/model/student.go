package model

import (
	"fmt"
	"time"
)

// Student is a single row in the students table. The ID is assigned by the
// store on insert; an instance with a zero ID has not been saved yet and is
// not visible to queries.
type Student struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"index:index_name" json:"name"` // speed up lookups on name
	Email        string    `gorm:"size:55" json:"email"`
	Grade        int       `json:"grade"`
	Birthday     time.Time `json:"birthday"`
	EnrolledDate time.Time `gorm:"autoCreateTime" json:"enrolled_date"`
}

func (s Student) String() string {
	if s.ID == 0 {
		return fmt.Sprintf("Student (unsaved): %s, Grade %d", s.Name, s.Grade)
	}
	return fmt.Sprintf("Student %d: %s, Grade %d", s.ID, s.Name, s.Grade)
}
