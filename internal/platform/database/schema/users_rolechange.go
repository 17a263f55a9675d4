package schema

// UserRoleChangeTable represents the 'users.rolechange' table.
// Append-only history of role assignments.
type UserRoleChangeTable struct {
	Table     string
	ID        string
	UserID    string
	ChangedBy string
	OldRole   string
	NewRole   string
	CreatedAt string
}

// UserRoleChange is the schema definition for users.rolechange
var UserRoleChange = UserRoleChangeTable{
	Table:     "users.rolechange",
	ID:        "id",
	UserID:    "userid",
	ChangedBy: "changedby",
	OldRole:   "oldrole",
	NewRole:   "newrole",
	CreatedAt: "createdat",
}
