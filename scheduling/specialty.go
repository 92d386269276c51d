package scheduling

import (
	"strings"

	"github.com/lotusspa/scheduler/models"
)

// EligibleServices returns the catalog services a staff member may perform.
// Only Technicians are service-restricted; every other role gets an empty
// result because availability for them is plain present/not-present.
//
// A service is eligible when its category contains one of the staff
// specialties (case-sensitive). Pure and deterministic, so results can be
// cached by (role, specialties, catalog version).
func EligibleServices(staff *models.StaffProfile, catalog []models.Service) []models.Service {
	if staff == nil || staff.Role != models.RoleTechnician {
		return nil
	}
	var eligible []models.Service
	for _, svc := range catalog {
		for _, sp := range staff.Specialties {
			if sp != "" && strings.Contains(svc.Category, sp) {
				eligible = append(eligible, svc)
				break
			}
		}
	}
	return eligible
}

// EligibleServicesCacheKey builds the memo key for a staff member's eligible
// service set. catalogVersion must change whenever the catalog does.
func EligibleServicesCacheKey(staff *models.StaffProfile, catalogVersion string) string {
	return "eligible-services:" + string(staff.Role) + ":" +
		strings.Join(staff.Specialties, ",") + ":" + catalogVersion
}
