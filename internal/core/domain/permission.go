package domain

// Permission names an action guarded at the transport boundary.
type Permission string

const (
	PermUserCreate    Permission = "user:create"
	PermUserDelete    Permission = "user:delete"
	PermUserUpdate    Permission = "user:update"
	PermUserRead      Permission = "user:read"
	PermLinkCreate    Permission = "link:create"
	PermLinkDelete    Permission = "link:delete"
	PermLinkUpdate    Permission = "link:update"
	PermLinkRead      Permission = "link:read"
	PermPaymentCreate Permission = "payment:create"
)

var rolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermUserCreate, PermUserDelete, PermUserUpdate, PermUserRead,
		PermLinkCreate, PermLinkDelete, PermLinkUpdate, PermLinkRead,
		PermPaymentCreate,
	},
	RoleDeveloper: {
		PermLinkRead, PermLinkUpdate, PermLinkDelete, PermPaymentCreate,
	},
	RoleViewer: {
		PermLinkRead, PermLinkUpdate, PermLinkDelete, PermUserRead, PermPaymentCreate,
	},
}

// Can reports whether the role grants p.
func (r Role) Can(p Permission) bool {
	for _, granted := range rolePermissions[r] {
		if granted == p {
			return true
		}
	}
	return false
}
