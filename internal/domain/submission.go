package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Triage statuses for a contact submission. Transitions are unconstrained:
// any status may move to any other.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusQuoted    = "quoted"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// StatusAll is the filter value that matches every status. It is never stored.
const StatusAll = "all"

// ServiceSeparator joins selected service tags into the service column.
const ServiceSeparator = ", "

// ServiceTags lists the offered services a visitor can select.
var ServiceTags = []string{
	"power-washing",
	"sealing",
	"leaf-cleanup",
	"junk-removal",
	"debris-removal",
}

// Statuses returns the closed set of triage statuses.
func Statuses() []string {
	return []string{StatusNew, StatusContacted, StatusQuoted, StatusCompleted, StatusCancelled}
}

// ValidStatus reports whether s is a member of the status enum.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusContacted, StatusQuoted, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// JoinServices joins a selected-services set into the stored service string.
func JoinServices(services []string) string {
	return strings.Join(services, ServiceSeparator)
}

// ContactSubmission represents one visitor-originated inquiry.
type ContactSubmission struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Email     string     `gorm:"not null;index" json:"email"`
	Phone     string     `gorm:"not null" json:"phone"`
	Service   string     `gorm:"not null" json:"service"` // comma-joined service tags, never empty
	Message   string     `gorm:"type:text" json:"message"`
	Status    string     `gorm:"default:'new';index" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// TableName specifies the table name for ContactSubmission
func (ContactSubmission) TableName() string {
	return "contact_submissions"
}

// BeforeCreate hook
func (s *ContactSubmission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	if s.Status == "" {
		s.Status = StatusNew
	}
	return nil
}

// BeforeUpdate hook
func (s *ContactSubmission) BeforeUpdate(tx *gorm.DB) error {
	now := time.Now()
	s.UpdatedAt = &now
	return nil
}
