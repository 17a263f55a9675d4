package schema

// SystemActivityLogTable represents the 'system.activitylog' table.
// Append-only record of privileged actions (bans, unbans, role changes,
// content publishes).
type SystemActivityLogTable struct {
	Table      string
	ID         string
	ActorID    string
	Action     string
	TargetType string
	TargetID   string
	Detail     string
	CreatedAt  string
}

// SystemActivityLog is the schema definition for system.activitylog
var SystemActivityLog = SystemActivityLogTable{
	Table:      "system.activitylog",
	ID:         "id",
	ActorID:    "actorid",
	Action:     "action",
	TargetType: "targettype",
	TargetID:   "targetid",
	Detail:     "detail",
	CreatedAt:  "createdat",
}
