package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/scamshield/scamshield-backend/internal/dto"
	"github.com/scamshield/scamshield-backend/internal/middleware"
	"github.com/scamshield/scamshield-backend/internal/models"
	"github.com/scamshield/scamshield-backend/internal/services"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Create handles POST /api/reports. Replies 201 for a new pending report
// and 200 when the submission matched an already-verified company and only
// bumped its counter.
func (h *ReportHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Unauthorized",
		})
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}

	report, matched, err := h.reportService.Submit(&req, userID)
	if err != nil {
		return reportError(c, err)
	}

	if matched {
		return c.JSON(dto.ReportResult{
			Success: true,
			Message: "Similar scam report already verified. Count incremented.",
			Report:  dto.NewReportResponse(report),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ReportResult{
		Success: true,
		Message: "Report submitted successfully. Admin will verify soon.",
		Report:  dto.NewReportResponse(report),
	})
}

// List handles GET /api/reports: all verified reports, optionally filtered
// by the company query parameter.
func (h *ReportHandler) List(c *fiber.Ctx) error {
	reports, err := h.reportService.ListVerified(c.Query("company"))
	if err != nil {
		return reportError(c, err)
	}

	return c.JSON(dto.ReportListResult{
		Success: true,
		Count:   len(reports),
		Reports: dto.NewReportList(reports),
	})
}

// Search handles GET /api/reports/search. The company parameter is required.
func (h *ReportHandler) Search(c *fiber.Ctx) error {
	reports, err := h.reportService.SearchByCompany(c.Query("company"))
	if err != nil {
		return reportError(c, err)
	}

	result := dto.ReportListResult{
		Success: true,
		Count:   len(reports),
		Reports: dto.NewReportList(reports),
	}
	if len(reports) == 0 {
		result.Message = "No scam reports found for this company"
	}
	return c.JSON(result)
}

// GetByID handles GET /api/reports/:id. Any status, public.
func (h *ReportHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Success: false, Message: "Report not found",
		})
	}

	report, err := h.reportService.GetByID(id)
	if err != nil {
		return reportError(c, err)
	}

	return c.JSON(dto.ReportResult{Success: true, Report: dto.NewReportResponse(report)})
}

// MyReports handles GET /api/reports/user/my-reports.
func (h *ReportHandler) MyReports(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Unauthorized",
		})
	}

	reports, err := h.reportService.ListByUser(userID)
	if err != nil {
		return reportError(c, err)
	}

	return c.JSON(dto.ReportListResult{
		Success: true,
		Count:   len(reports),
		Reports: dto.NewReportList(reports),
	})
}

// Pending handles GET /api/reports/admin/pending, the admin review queue.
func (h *ReportHandler) Pending(c *fiber.Ctx) error {
	reports, err := h.reportService.ListPending()
	if err != nil {
		return reportError(c, err)
	}

	return c.JSON(dto.ReportListResult{
		Success: true,
		Count:   len(reports),
		Reports: dto.NewReportList(reports),
	})
}

// Verify handles PUT /api/reports/:id/verify.
func (h *ReportHandler) Verify(c *fiber.Ctx) error {
	return h.review(c, h.reportService.Verify, "Report verified successfully")
}

// Reject handles PUT /api/reports/:id/reject.
func (h *ReportHandler) Reject(c *fiber.Ctx) error {
	return h.review(c, h.reportService.Reject, "Report rejected")
}

func (h *ReportHandler) review(
	c *fiber.Ctx,
	action func(reportID, adminID uuid.UUID, notes string) (*models.Report, error),
	message string,
) error {
	adminID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Unauthorized",
		})
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Success: false, Message: "Report not found",
		})
	}

	var req dto.ReviewReportRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: "Invalid request body",
			})
		}
	}

	report, err := action(reportID, adminID, req.VerificationNotes)
	if err != nil {
		return reportError(c, err)
	}

	return c.JSON(dto.ReportResult{
		Success: true,
		Message: message,
		Report:  dto.NewReportResponse(report),
	})
}

func reportError(c *fiber.Ctx, err error) error {
	var ve services.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: ve.Error(),
		})
	case errors.Is(err, services.ErrReportNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Success: false, Message: "Report not found",
		})
	case errors.Is(err, services.ErrAlreadyReviewed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Success: false, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: err.Error(),
		})
	}
}
