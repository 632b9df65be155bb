package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/scamshield/scamshield-backend/internal/models"
	"gorm.io/gorm"
)

// withUsers preloads the reporter and verifier associations so handlers
// can shape the display-safe projection.
func (s *ReportService) withUsers() *gorm.DB {
	return s.db.Preload("Reporter").Preload("Verifier")
}

// ListVerified returns all verified reports, newest first, optionally
// narrowed by a case-insensitive company name filter.
func (s *ReportService) ListVerified(companyFilter string) ([]models.Report, error) {
	query := s.withUsers().Where("status = ?", models.StatusVerified)
	if companyFilter != "" {
		key := CanonicalCompanyKey(companyFilter)
		if key == "" {
			// Punctuation-only filters have an empty canonical key and
			// can never match a stored company.
			return []models.Report{}, nil
		}
		query = query.Where("company_key LIKE ?", "%"+key+"%")
	}

	var reports []models.Report
	if err := query.Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// GetByID returns a single report of any status.
func (s *ReportService) GetByID(id uuid.UUID) (*models.Report, error) {
	var report models.Report
	if err := s.withUsers().First(&report, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

// ListByUser returns every report a user has submitted, any status,
// newest first.
func (s *ReportService) ListByUser(userID uuid.UUID) ([]models.Report, error) {
	var reports []models.Report
	err := s.withUsers().
		Where("reported_by = ?", userID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// ListPending returns the admin verification queue, newest first.
func (s *ReportService) ListPending() ([]models.Report, error) {
	var reports []models.Report
	err := s.withUsers().
		Where("status = ?", models.StatusPending).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// SearchByCompany returns verified reports matching the filter, worst
// offenders first (scam count, then recency). The filter is required.
func (s *ReportService) SearchByCompany(companyFilter string) ([]models.Report, error) {
	companyFilter = strings.TrimSpace(companyFilter)
	if companyFilter == "" {
		return nil, ValidationError("Please provide company name")
	}

	key := CanonicalCompanyKey(companyFilter)
	if key == "" {
		return []models.Report{}, nil
	}

	var reports []models.Report
	err := s.withUsers().
		Where("status = ? AND company_key LIKE ?", models.StatusVerified, "%"+key+"%").
		Order("scam_count DESC, created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}
