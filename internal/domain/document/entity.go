package document

import "time"

// Document is a stored file attached to a business entity (candidate,
// job, opportunity). FileKey is the storage locator; the bytes live in
// file storage, only the metadata is persisted here.
type Document struct {
	ID         string
	EntityType string
	EntityID   string
	Name       string
	FileKey    string
	FileType   string
	FileSize   int64
	CreatedAt  time.Time
}
