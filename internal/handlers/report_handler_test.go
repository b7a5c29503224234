package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/MFC-2025/recruitment-admin-service/internal/models"
	"github.com/MFC-2025/recruitment-admin-service/internal/services"
)

func setupReportRouter(svc *mockSegregationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewReportHandler(svc, testLogger())

	r := gin.New()
	r.GET("/reports/subdomains/:domain", h.GetSubdomainReport)
	return r
}

func TestGetSubdomainReport(t *testing.T) {
	svc := &mockSegregationService{
		reports: map[models.Domain]services.SubdomainReport{
			models.DomainManagement: {
				"editorial": {Submitted: []uint{10}, NotSubmitted: []uint{20}},
				"publicity": {Submitted: []uint{30}},
			},
		},
	}
	r := setupReportRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/subdomains/management", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var report services.SubdomainReport
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(report) != 2 {
		t.Fatalf("report keys = %d, want 2", len(report))
	}
	editorial := report["editorial"]
	if editorial == nil || len(editorial.Submitted) != 1 || editorial.Submitted[0] != 10 {
		t.Errorf("editorial bucket = %+v", editorial)
	}
}

func TestGetSubdomainReport_UnknownDomain(t *testing.T) {
	svc := &mockSegregationService{}
	r := setupReportRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/subdomains/finance", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestGetSubdomainReport_ServiceFailure(t *testing.T) {
	svc := &mockSegregationService{err: services.ErrNotFound}
	r := setupReportRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/subdomains/tech", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
