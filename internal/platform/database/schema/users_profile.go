package schema

// UserProfileTable represents the 'users.profile' table.
//
// Profiles are the application-facing record, one-to-one with users.account
// by id. Role and status live here; the suspension flag is kept in sync with
// the account's banneduntil marker by the moderation service.
type UserProfileTable struct {
	Table       string
	ID          string
	DisplayName string
	Callsign    string
	AvatarURL   string
	Bio         string
	Role        string
	Status      string
	CreatedAt   string
	UpdatedAt   string
}

// UserProfile is the schema definition for users.profile
var UserProfile = UserProfileTable{
	Table:       "users.profile",
	ID:          "id",
	DisplayName: "displayname",
	Callsign:    "callsign",
	AvatarURL:   "avatarurl",
	Bio:         "bio",
	Role:        "role",
	Status:      "status",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}
