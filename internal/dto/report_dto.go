package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/scamshield/scamshield-backend/internal/models"
)

type CreateReportRequest struct {
	CompanyName  string   `json:"companyName"`
	JobTitle     string   `json:"jobTitle"`
	Description  string   `json:"description"`
	RedFlags     []string `json:"redFlags"`
	EvidenceLink string   `json:"evidenceLink"`
}

type ReviewReportRequest struct {
	VerificationNotes string `json:"verificationNotes"`
}

// UserRef is the display-safe projection of a user attached to a report.
// Never carries credentials or role.
type UserRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type ReportResponse struct {
	ID                uuid.UUID `json:"id"`
	CompanyName       string    `json:"companyName"`
	JobTitle          string    `json:"jobTitle"`
	Description       string    `json:"description"`
	RedFlags          []string  `json:"redFlags"`
	EvidenceLink      string    `json:"evidenceLink"`
	ReportedBy        *UserRef  `json:"reportedBy,omitempty"`
	Status            string    `json:"status"`
	VerifiedBy        *UserRef  `json:"verifiedBy,omitempty"`
	VerificationNotes string    `json:"verificationNotes,omitempty"`
	ScamCount         int       `json:"scamCount"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ReportResult is the envelope for single-report responses.
type ReportResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Report  *ReportResponse `json:"report,omitempty"`
}

// ReportListResult is the envelope for list responses.
type ReportListResult struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Count   int              `json:"count"`
	Reports []ReportResponse `json:"reports"`
}

func userRef(u *models.User) *UserRef {
	if u == nil {
		return nil
	}
	return &UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
}

// NewReportResponse shapes a report for the wire, resolving the reporter
// and verifier associations when they are loaded.
func NewReportResponse(r *models.Report) *ReportResponse {
	flags := []string(r.RedFlags)
	if flags == nil {
		flags = []string{}
	}
	return &ReportResponse{
		ID:                r.ID,
		CompanyName:       r.CompanyName,
		JobTitle:          r.JobTitle,
		Description:       r.Description,
		RedFlags:          flags,
		EvidenceLink:      r.EvidenceLink,
		ReportedBy:        userRef(r.Reporter),
		Status:            r.Status,
		VerifiedBy:        userRef(r.Verifier),
		VerificationNotes: r.VerificationNotes,
		ScamCount:         r.ScamCount,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// NewReportList shapes a slice of reports; an empty slice serializes as [].
func NewReportList(reports []models.Report) []ReportResponse {
	out := make([]ReportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, *NewReportResponse(&reports[i]))
	}
	return out
}
