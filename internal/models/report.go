package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Report statuses. A report starts pending and is moved to verified or
// rejected by an admin; there is no transition out of a reviewed state.
const (
	StatusPending  = "pending"
	StatusVerified = "verified"
	StatusRejected = "rejected"
)

// Report is a single job-scam submission. CompanyKey holds the canonical
// form of CompanyName (lower-cased, punctuation stripped) and is the only
// column dedup matching runs against.
type Report struct {
	ID                uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CompanyName       string                      `gorm:"not null;size:255" json:"companyName"`
	CompanyKey        string                      `gorm:"not null;size:255;index" json:"-"`
	JobTitle          string                      `gorm:"not null;size:255" json:"jobTitle"`
	Description       string                      `gorm:"type:text;not null" json:"description"`
	RedFlags          datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"redFlags"`
	EvidenceLink      string                      `gorm:"size:500" json:"evidenceLink"`
	ReportedBy        uuid.UUID                   `gorm:"type:uuid;not null;index" json:"reportedBy"`
	Status            string                      `gorm:"size:20;not null;default:'pending';index" json:"status"`
	VerifiedBy        *uuid.UUID                  `gorm:"type:uuid" json:"verifiedBy,omitempty"`
	VerificationNotes string                      `gorm:"type:text" json:"verificationNotes,omitempty"`
	ScamCount         int                         `gorm:"not null;default:1" json:"scamCount"`
	CreatedAt         time.Time                   `json:"createdAt"`
	UpdatedAt         time.Time                   `json:"updatedAt"`
	Reporter          *User                       `gorm:"foreignKey:ReportedBy" json:"-"`
	Verifier          *User                       `gorm:"foreignKey:VerifiedBy" json:"-"`
}
