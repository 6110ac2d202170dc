package model

// Role represents user roles in the system. Privileges are granted per
// role, never per user.
type Role struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Code        string      `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // MASTER_ADMIN, ADMIN
	Name        string      `gorm:"type:varchar(100)" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	Privileges  []Privilege `gorm:"many2many:role_privileges;" json:"privileges,omitempty"`
}

// Role codes as constants
const (
	RoleMasterAdmin = "MASTER_ADMIN"
	RoleAdmin       = "ADMIN"
	RoleOperator    = "OPERATOR"
)

// DefaultRoles defines the default roles in the system
var DefaultRoles = []Role{
	{
		Code:        RoleMasterAdmin,
		Name:        "Master Administrator",
		Description: "Full warehouse access including user management",
	},
	{
		Code:        RoleAdmin,
		Name:        "Warehouse Administrator",
		Description: "Manages the catalog, stock transactions and reports",
	},
	{
		Code:        RoleOperator,
		Name:        "Warehouse Operator",
		Description: "Records stock movements and views inventory",
	},
}

// DefaultRolePrivileges maps each role code to the privilege codes it is
// granted at seed time. MASTER_ADMIN receives every privilege and is
// not listed here.
var DefaultRolePrivileges = map[string][]string{
	RoleAdmin: {
		"user:view",
		"product:view", "product:create", "product:update",
		"transaction:view", "transaction:create",
		"inventory:view", "dashboard:view",
	},
	RoleOperator: {
		"product:view",
		"transaction:view", "transaction:create",
		"inventory:view", "dashboard:view",
	},
}
