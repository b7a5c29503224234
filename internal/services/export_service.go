package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/MFC-2025/recruitment-admin-service/internal/validator"
)

// exportService implements ExportService
type exportService struct {
	applicants ApplicantService
	logger     *slog.Logger
	validator  *validator.Validator
}

// NewExportService creates a new export service
func NewExportService(applicants ApplicantService, logger *slog.Logger, v *validator.Validator) ExportService {
	return &exportService{
		applicants: applicants,
		logger:     logger,
		validator:  v,
	}
}

var exportHeaders = []string{
	"Regno", "Username", "Email", "Domains",
	"Tech Level", "Design Level", "Management Level",
	"Has Submitted", "Meeting Time", "Meeting Status", "Admin Notes",
}

// ExportApplicants builds a spreadsheet of applicants for the optional
// domain filter and returns the file contents with a suggested filename.
func (s *exportService) ExportApplicants(ctx context.Context, domain string) ([]byte, string, error) {
	req := &validator.ListApplicantsRequest{Domain: domain}
	listing, err := s.applicants.List(ctx, req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load applicants for export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Applicants"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, "", fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, record := range listing.Applicants {
		row := i + 2

		meetingTime := ""
		if record.MeetingTime != nil {
			meetingTime = record.MeetingTime.Format(time.RFC3339)
		}
		meetStatus := ""
		if record.MeetStatus != nil {
			meetStatus = string(*record.MeetStatus)
		}

		values := []interface{}{
			record.Regno,
			record.Username,
			record.Email,
			strings.Join(record.Domains, ", "),
			record.Tech,
			record.Design,
			record.Management,
			record.HasSubmitted,
			meetingTime,
			meetStatus,
			record.AdminNotes,
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, "", fmt.Errorf("failed to build cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, "", fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to serialize export: %w", err)
	}

	name := "applicants"
	if domain != "" {
		name = fmt.Sprintf("applicants_%s", domain)
	}
	filename := fmt.Sprintf("%s_%s.xlsx", name, time.Now().Format("20060102"))

	s.logger.Info("Applicant export generated",
		"domain", domain,
		"rows", len(listing.Applicants),
		"filename", filename)

	return buf.Bytes(), filename, nil
}
