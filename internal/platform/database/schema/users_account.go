package schema

// UserAccountTable represents the 'users.account' table.
//
// Accounts are owned by the authentication subsystem: only the auth and
// moderation stores may mutate rows here.
type UserAccountTable struct {
	Table        string
	ID           string
	Username     string
	Email        string
	Password     string
	IsVerified   string
	BannedUntil  string
	LastSignInAt string
	CreatedAt    string
	UpdatedAt    string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:        "users.account",
	ID:           "id",
	Username:     "username",
	Email:        "email",
	Password:     "passwordhash",
	IsVerified:   "isverified",
	BannedUntil:  "banneduntil",
	LastSignInAt: "lastsigninat",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}
