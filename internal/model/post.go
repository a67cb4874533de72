package model

import "time"

// Post is a blog post owned by its author.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	AuthorID  uint      `json:"author_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime"`

	// Rendered from Content on read, never persisted.
	ContentHTML string `json:"content_html,omitempty" gorm:"-"`

	// Relations
	Author User `json:"-" gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for the Post model.
func (Post) TableName() string {
	return "blog_posts"
}
