package schema

// ContentTeamMemberTable represents the 'content.teammember' table (roster)
type ContentTeamMemberTable struct {
	Table     string
	ID        string
	Callsign  string
	FullName  string
	RoleLabel string
	Bio       string
	AvatarKey string
	SortOrder string
	IsActive  string
	CreatedAt string
	UpdatedAt string
}

// ContentTeamMember is the schema definition for content.teammember
var ContentTeamMember = ContentTeamMemberTable{
	Table:     "content.teammember",
	ID:        "id",
	Callsign:  "callsign",
	FullName:  "fullname",
	RoleLabel: "rolelabel",
	Bio:       "bio",
	AvatarKey: "avatarkey",
	SortOrder: "sortorder",
	IsActive:  "isactive",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}
