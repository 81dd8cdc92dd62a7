package user

type Permission string

const (
	PermissionManagePolicies Permission = "policies:manage"
	PermissionViewPolicies   Permission = "policies:view"
	PermissionSubmitLeave    Permission = "leave:submit"
	PermissionReviewLeave    Permission = "leave:review"
	PermissionViewAllLeave   Permission = "leave:view_all"
)

var rolePermissions = map[Role][]Permission{
	RoleSuperAdmin: {
		PermissionManagePolicies,
		PermissionViewPolicies,
		PermissionSubmitLeave,
		PermissionReviewLeave,
		PermissionViewAllLeave,
	},
	RoleHR: {
		PermissionManagePolicies,
		PermissionViewPolicies,
		PermissionSubmitLeave,
		PermissionReviewLeave,
		PermissionViewAllLeave,
	},
	RoleEmployee: {
		PermissionViewPolicies,
		PermissionSubmitLeave,
	},
}

// HasPermission checks if a role grants the given permission
func HasPermission(role Role, permission Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
