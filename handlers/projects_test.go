package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/itousif38-netizen/SN-ENTP/config"
	"github.com/itousif38-netizen/SN-ENTP/models"
)

func TestValidateProject(t *testing.T) {
	valid := models.Project{
		Name:                 "Canal Widening",
		Budget:               100000,
		StartDate:            "2024-01-01",
		Status:               models.StatusPlanning,
		CompletionPercentage: 0,
	}

	tests := []struct {
		name      string
		mutate    func(p *models.Project)
		failField string
	}{
		{"valid project", func(p *models.Project) {}, ""},
		{"missing name", func(p *models.Project) { p.Name = "" }, "name"},
		{"zero budget", func(p *models.Project) { p.Budget = 0 }, "budget"},
		{"missing start date", func(p *models.Project) { p.StartDate = "" }, "startDate"},
		{"completion before start", func(p *models.Project) { p.CompletionDate = "2023-12-01" }, "completionDate"},
		{"progress over 100", func(p *models.Project) { p.CompletionPercentage = 120 }, "completionPercentage"},
		{"unknown status", func(p *models.Project) { p.Status = "Paused" }, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			errs := validateProject(p)
			if tt.failField == "" {
				if len(errs) != 0 {
					t.Errorf("expected no errors, got %v", errs)
				}
				return
			}
			if _, ok := errs[tt.failField]; !ok {
				t.Errorf("expected an error on %q, got %v", tt.failField, errs)
			}
		})
	}
}

func TestCreateProjectValidationResponse(t *testing.T) {
	useTestStore(t)
	before := len(config.App.Projects())

	payload := `{"name": "", "budget": -5, "startDate": ""}`
	req := httptest.NewRequest(http.MethodPost, "/projects", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	CreateProject(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, expected 422", rec.Code)
	}
	var body struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, field := range []string{"name", "budget", "startDate"} {
		if body.Errors[field] == "" {
			t.Errorf("expected a field error for %q, got %v", field, body.Errors)
		}
	}
	if len(config.App.Projects()) != before {
		t.Error("a rejected create must not touch the store")
	}
}

func TestCreateProjectDefaultsStatus(t *testing.T) {
	useTestStore(t)

	payload := `{"name": "Canal Widening", "budget": 100000, "startDate": "2024-01-01"}`
	req := httptest.NewRequest(http.MethodPost, "/projects", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	CreateProject(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, expected 201: %s", rec.Code, rec.Body.String())
	}
	var created models.Project
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Status != models.StatusPlanning {
		t.Errorf("status = %q, expected the Planning default", created.Status)
	}
	if created.ID == "" {
		t.Error("expected a generated id")
	}
}
