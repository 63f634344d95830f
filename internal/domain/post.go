package domain

import "time"

// Media holds the attachments of a post. The first link and first image
// carry only the flat per-category surcharge; extra items cost more.
type Media struct {
	Links  []string `json:"links"`
	Images []string `json:"images"`
	Video  *string  `json:"video,omitempty"`
}

type Post struct {
	ID        int64     `db:"id" json:"id"`
	AuthorID  int64     `db:"author_id" json:"author_id"`
	Content   string    `db:"content" json:"content"`
	Media     Media     `db:"media" json:"media"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
