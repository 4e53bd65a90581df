package model

import "time"

// PostKind separates news items on the home page from gallery pictures.
type PostKind string

const (
	PostNews    PostKind = "NEWS"
	PostGallery PostKind = "GALLERY"
)

// Post is a piece of public marketing content.
type Post struct {
	ID        string    `json:"id"`
	AuthorID  *string   `json:"author_id,omitempty"`
	Kind      PostKind  `json:"kind"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	ImageKey  string    `json:"-"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
