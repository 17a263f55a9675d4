package schema

// ContentEventTable represents the 'content.event' table (games calendar)
type ContentEventTable struct {
	Table       string
	ID          string
	Slug        string
	Title       string
	Description string
	Location    string
	StartsAt    string
	Capacity    string
	IsPublished string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// ContentEvent is the schema definition for content.event
var ContentEvent = ContentEventTable{
	Table:       "content.event",
	ID:          "id",
	Slug:        "slug",
	Title:       "title",
	Description: "description",
	Location:    "location",
	StartsAt:    "startsat",
	Capacity:    "capacity",
	IsPublished: "ispublished",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	DeletedAt:   "deletedat",
}
