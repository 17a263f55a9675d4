package schema

// ContentGalleryItemTable represents the 'content.galleryitem' table
type ContentGalleryItemTable struct {
	Table      string
	ID         string
	Title      string
	StorageKey string
	MediaType  string
	SortOrder  string
	CreatedAt  string
	UpdatedAt  string
	DeletedAt  string
}

// ContentGalleryItem is the schema definition for content.galleryitem
var ContentGalleryItem = ContentGalleryItemTable{
	Table:      "content.galleryitem",
	ID:         "id",
	Title:      "title",
	StorageKey: "storagekey",
	MediaType:  "mediatype",
	SortOrder:  "sortorder",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
	DeletedAt:  "deletedat",
}
