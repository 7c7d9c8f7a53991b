package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostType is the kind of listing: an item someone lost, or one they found.
type PostType string

const (
	PostLost  PostType = "lost"
	PostFound PostType = "found"
)

// Post is a single lost/found listing. Posts are immutable once created;
// there are no update or delete paths.
type Post struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Type        PostType           `bson:"type"`
	ItemName    string             `bson:"item_name"`
	Description string             `bson:"description"`
	Location    string             `bson:"location"`
	Contact     string             `bson:"contact"`
	ImageURL    string             `bson:"image_url,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// HasImage reports whether the post carries a usable photo URL.
func (p *Post) HasImage() bool {
	return p.ImageURL != ""
}
