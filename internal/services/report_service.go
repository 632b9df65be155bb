package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/scamshield/scamshield-backend/internal/dto"
	"github.com/scamshield/scamshield-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const minDescriptionLen = 20

// ReportService owns the report lifecycle (submit, verify, reject) and the
// read-side queries in report_queries.go.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// Submit validates a submission and either creates a new pending report or,
// when a verified report for the same company already exists, bumps that
// report's scam counter instead. The returned bool is true for the counter
// case. A company matches when the stored canonical name contains the
// incoming canonical name as a substring, so submitting "Acme" counts
// against an already-verified "Acme Corp Inc".
func (s *ReportService) Submit(req *dto.CreateReportRequest, reporterID uuid.UUID) (*models.Report, bool, error) {
	companyName := strings.TrimSpace(req.CompanyName)
	jobTitle := strings.TrimSpace(req.JobTitle)

	if companyName == "" || jobTitle == "" || req.Description == "" {
		return nil, false, ValidationError("Please provide company name, job title, and description")
	}
	if utf8.RuneCountInString(req.Description) < minDescriptionLen {
		return nil, false, ValidationError("Description must be at least 20 characters")
	}
	for _, tag := range req.RedFlags {
		if !models.ValidRedFlag(tag) {
			return nil, false, ValidationError(fmt.Sprintf("Unknown red flag: %q", tag))
		}
	}

	// A name with no letters or digits canonicalizes to the empty key,
	// which would turn the LIKE pattern into a match-everything wildcard.
	// Such names never dedup.
	key := CanonicalCompanyKey(companyName)
	if key != "" {
		var existing models.Report
		err := s.db.
			Where("status = ? AND company_key LIKE ?", models.StatusVerified, "%"+key+"%").
			Order("created_at DESC").
			First(&existing).Error
		if err == nil {
			return s.incrementScamCount(existing.ID)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, fmt.Errorf("dedup lookup failed: %w", err)
		}
	}

	flags := req.RedFlags
	if flags == nil {
		flags = []string{}
	}

	report := models.Report{
		ID:           uuid.New(),
		CompanyName:  companyName,
		CompanyKey:   key,
		JobTitle:     jobTitle,
		Description:  req.Description,
		RedFlags:     datatypes.NewJSONSlice(flags),
		EvidenceLink: strings.TrimSpace(req.EvidenceLink),
		ReportedBy:   reporterID,
		Status:       models.StatusPending,
		ScamCount:    1,
	}

	if err := s.db.Create(&report).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create report: %w", err)
	}

	created, err := s.GetByID(report.ID)
	if err != nil {
		return nil, false, err
	}
	return created, false, nil
}

// incrementScamCount bumps the counter in a single conditional UPDATE so
// concurrent submissions for the same company cannot lose an increment.
// The status predicate re-checks that the matched row is still verified.
func (s *ReportService) incrementScamCount(reportID uuid.UUID) (*models.Report, bool, error) {
	result := s.db.Model(&models.Report{}).
		Where("id = ? AND status = ?", reportID, models.StatusVerified).
		Update("scam_count", gorm.Expr("scam_count + 1"))
	if result.Error != nil {
		return nil, false, fmt.Errorf("failed to increment scam count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, false, ErrReportNotFound
	}

	report, err := s.GetByID(reportID)
	if err != nil {
		return nil, false, err
	}
	return report, true, nil
}

// Verify moves a pending report to verified, recording the acting admin
// and their notes.
func (s *ReportService) Verify(reportID, adminID uuid.UUID, notes string) (*models.Report, error) {
	return s.review(reportID, adminID, notes, models.StatusVerified)
}

// Reject moves a pending report to rejected.
func (s *ReportService) Reject(reportID, adminID uuid.UUID, notes string) (*models.Report, error) {
	return s.review(reportID, adminID, notes, models.StatusRejected)
}

func (s *ReportService) review(reportID, adminID uuid.UUID, notes, status string) (*models.Report, error) {
	var report models.Report
	if err := s.db.First(&report, "id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	if report.Status != models.StatusPending {
		return nil, ErrAlreadyReviewed
	}

	updates := map[string]interface{}{
		"status":             status,
		"verified_by":        adminID,
		"verification_notes": notes,
	}
	if err := s.db.Model(&report).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update report: %w", err)
	}

	return s.GetByID(reportID)
}
