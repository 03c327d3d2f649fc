package auth

import "sort"

// Roles form a closed set; anything else is rejected at registration and at
// role reassignment.
const (
	RoleAdmin             = "admin"
	RoleQualityManager    = "quality_manager"
	RoleQualityController = "quality_controller"
	RoleProductionManager = "production_manager"
	RoleTechnician        = "technician"
	RoleOperator          = "operator"
)

// Permission keys. One key per grantable capability; route middleware and the
// front end gate on these strings.
const (
	PermViewDashboard        = "view_dashboard"
	PermViewQualityTests     = "view_quality_tests"
	PermCreateQualityTests   = "create_quality_tests"
	PermEditQualityTests     = "edit_quality_tests"
	PermViewProductionLots   = "view_production_lots"
	PermCreateProductionLots = "create_production_lots"
	PermViewEnergyRecords    = "view_energy_records"
	PermCreateEnergyRecords  = "create_energy_records"
	PermViewWasteRecords     = "view_waste_records"
	PermCreateWasteRecords   = "create_waste_records"
	PermViewCompliance       = "view_compliance_documents"
	PermManageCompliance     = "manage_compliance_documents"
	PermViewCampaigns        = "view_campaigns"
	PermManageCampaigns      = "manage_campaigns"
	PermManageUsers          = "manage_users"
)

var allPermissions = []string{
	PermViewDashboard,
	PermViewQualityTests,
	PermCreateQualityTests,
	PermEditQualityTests,
	PermViewProductionLots,
	PermCreateProductionLots,
	PermViewEnergyRecords,
	PermCreateEnergyRecords,
	PermViewWasteRecords,
	PermCreateWasteRecords,
	PermViewCompliance,
	PermManageCompliance,
	PermViewCampaigns,
	PermManageCampaigns,
	PermManageUsers,
}

// rolePermissions is the static role→permission table. The admin role is not
// listed here: it gets the wildcard set, which satisfies every check.
var rolePermissions = map[string][]string{
	RoleQualityManager: {
		PermViewDashboard,
		PermViewQualityTests, PermCreateQualityTests, PermEditQualityTests,
		PermViewProductionLots,
		PermViewCompliance, PermManageCompliance,
		PermViewCampaigns, PermManageCampaigns,
		PermViewWasteRecords,
	},
	RoleQualityController: {
		PermViewDashboard,
		PermViewQualityTests, PermCreateQualityTests, PermEditQualityTests,
		PermViewProductionLots,
		PermViewCampaigns,
	},
	RoleProductionManager: {
		PermViewDashboard,
		PermViewProductionLots, PermCreateProductionLots,
		PermViewQualityTests,
		PermViewEnergyRecords, PermCreateEnergyRecords,
		PermViewWasteRecords, PermCreateWasteRecords,
	},
	RoleTechnician: {
		PermViewDashboard,
		PermViewEnergyRecords, PermCreateEnergyRecords,
		PermViewWasteRecords, PermCreateWasteRecords,
	},
	RoleOperator: {
		PermViewDashboard,
		PermViewProductionLots, PermCreateProductionLots,
		PermViewQualityTests, PermCreateQualityTests,
	},
}

// PermissionSet is either the admin wildcard or an explicit set of keys. The
// wildcard is a type-level decision, not a magic string compared at call sites.
type PermissionSet struct {
	wildcard bool
	keys     map[string]struct{}
}

func WildcardPermissions() PermissionSet {
	return PermissionSet{wildcard: true}
}

func ExplicitPermissions(keys ...string) PermissionSet {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return PermissionSet{keys: set}
}

// Has reports whether the set grants the given key. The wildcard grants
// everything, including keys introduced after the set was built.
func (s PermissionSet) Has(key string) bool {
	if s.wildcard {
		return true
	}
	_, ok := s.keys[key]
	return ok
}

func (s PermissionSet) IsWildcard() bool {
	return s.wildcard
}

// Keys returns the grantable keys in sorted order. For the wildcard set this
// is the full catalogue, so clients can still render per-feature gates.
func (s PermissionSet) Keys() []string {
	var keys []string
	if s.wildcard {
		keys = append(keys, allPermissions...)
	} else {
		for k := range s.keys {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// PermissionsForRole derives the permission set for a role. Unknown roles get
// an empty explicit set rather than an error: a stale role label must never
// grant access.
func PermissionsForRole(role string) PermissionSet {
	if role == RoleAdmin {
		return WildcardPermissions()
	}
	return ExplicitPermissions(rolePermissions[role]...)
}

func IsValidRole(role string) bool {
	if role == RoleAdmin {
		return true
	}
	_, ok := rolePermissions[role]
	return ok
}

// AllRoles returns the closed role set, admin first.
func AllRoles() []string {
	roles := []string{RoleAdmin}
	for r := range rolePermissions {
		roles = append(roles, r)
	}
	sort.Strings(roles[1:])
	return roles
}
