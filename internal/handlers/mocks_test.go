package handlers

import (
	"context"
	"fmt"

	"github.com/MFC-2025/recruitment-admin-service/internal/models"
	"github.com/MFC-2025/recruitment-admin-service/internal/services"
	"github.com/MFC-2025/recruitment-admin-service/internal/utils"
	"github.com/MFC-2025/recruitment-admin-service/internal/validator"
)

func testLogger() utils.Logger {
	return utils.NewLogger("error")
}

// mockApplicantService records calls and returns canned responses
type mockApplicantService struct {
	listResp   *services.ApplicantListResponse
	listErr    error
	listReq    *validator.ListApplicantsRequest
	getResp    *services.ApplicantRecord
	getErr     error
	updateResp *models.User
	updateErr  error
	updateReq  *validator.UpdateStatusRequest
	changedBy  string
}

func (m *mockApplicantService) List(ctx context.Context, req *validator.ListApplicantsRequest) (*services.ApplicantListResponse, error) {
	m.listReq = req
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listResp, nil
}

func (m *mockApplicantService) GetByRegno(ctx context.Context, regno string) (*services.ApplicantRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.getResp, nil
}

func (m *mockApplicantService) UpdateStatus(ctx context.Context, req *validator.UpdateStatusRequest, changedBy string) (*models.User, error) {
	m.updateReq = req
	m.changedBy = changedBy
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	return m.updateResp, nil
}

// mockSegregationService returns a fixed report per domain
type mockSegregationService struct {
	reports map[models.Domain]services.SubdomainReport
	err     error
}

func (m *mockSegregationService) Report(ctx context.Context, domain models.Domain) (services.SubdomainReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	if !domain.Valid() {
		return nil, fmt.Errorf("%w: %s", services.ErrInvalidDomain, domain)
	}
	return m.reports[domain], nil
}
