package scheduling

import (
	"testing"

	"github.com/lotusspa/scheduler/models"
)

func testCatalog() []models.Service {
	return []models.Service{
		{Name: "Relaxing Massage", Category: "Massage"},
		{Name: "Deep Tissue Massage", Category: "Massage"},
		{Name: "Hydrating Facial", Category: "Facial"},
		{Name: "Gel Manicure", Category: "Nails"},
	}
}

func TestEligibleServicesForTechnician(t *testing.T) {
	mai := technician(1, "Massage")
	eligible := EligibleServices(mai, testCatalog())
	if len(eligible) != 2 {
		t.Fatalf("expected 2 massage services, got %d", len(eligible))
	}
	for _, svc := range eligible {
		if svc.Category != "Massage" {
			t.Errorf("unexpected service %s in category %s", svc.Name, svc.Category)
		}
	}
}

func TestEligibleServicesMultipleSpecialties(t *testing.T) {
	staff := technician(1, "Massage", "Nails")
	eligible := EligibleServices(staff, testCatalog())
	if len(eligible) != 3 {
		t.Fatalf("expected 3 services, got %d", len(eligible))
	}
}

func TestEligibleServicesCaseSensitive(t *testing.T) {
	staff := technician(1, "massage")
	if got := EligibleServices(staff, testCatalog()); len(got) != 0 {
		t.Errorf("category match is case-sensitive, got %d services", len(got))
	}
}

func TestEligibleServicesNonTechnician(t *testing.T) {
	for _, role := range []models.StaffRole{models.RoleManager, models.RoleReceptionist, models.RoleAdmin} {
		staff := &models.StaffProfile{ID: 1, Role: role, Specialties: models.StringList{"Massage"}}
		if got := EligibleServices(staff, testCatalog()); got != nil {
			t.Errorf("role %s should get no services, got %v", role, got)
		}
	}
}

func TestEligibleServicesDeterministic(t *testing.T) {
	staff := technician(1, "Massage")
	a := EligibleServices(staff, testCatalog())
	b := EligibleServices(staff, testCatalog())
	if len(a) != len(b) {
		t.Fatal("same inputs must produce the same output")
	}
	for i := range a {
		if a[i].Name != b[i].Name {
			t.Fatal("same inputs must produce the same order")
		}
	}
}

func TestEligibleServicesCacheKeyChangesWithVersion(t *testing.T) {
	staff := technician(1, "Massage")
	if EligibleServicesCacheKey(staff, "v1") == EligibleServicesCacheKey(staff, "v2") {
		t.Error("cache key must change with the catalog version")
	}
}
