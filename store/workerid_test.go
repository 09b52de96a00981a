package store

import (
	"testing"

	"github.com/itousif38-netizen/SN-ENTP/models"
)

func TestNextWorkerID(t *testing.T) {
	tests := []struct {
		name     string
		project  models.Project
		existing int
		expected string
	}{
		{"project code", models.Project{ProjectCode: "RH"}, 0, "SNE/RH-001"},
		{"project code with existing workers", models.Project{ProjectCode: "RH"}, 12, "SNE/RH-013"},
		{"code already carries org tag", models.Project{ProjectCode: "SNE/GT"}, 0, "SNE/GT-001"},
		{"initials from name", models.Project{Name: "Galaxy Tower"}, 0, "SNE/GT-001"},
		{"stoplist words skipped", models.Project{Name: "The City of Galaxy Tower"}, 2, "SNE/GT-003"},
		{"initials capped at three", models.Project{Name: "New Airport Road Bridge"}, 0, "SNE/NAR-001"},
		{"all stoplist falls back", models.Project{Name: "the site"}, 0, "SNE/PRJ-001"},
		{"empty everything falls back", models.Project{}, 0, "SNE/PRJ-001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextWorkerID(tt.project, tt.existing); got != tt.expected {
				t.Errorf("NextWorkerID(%+v, %d) = %q, expected %q", tt.project, tt.existing, got, tt.expected)
			}
		})
	}
}
