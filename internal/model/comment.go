package model

import "time"

// Comment is a reply left by a user on a post.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	AuthorID  uint      `json:"author_id" gorm:"not null;index"`
	PostID    uint      `json:"post_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime"`

	// Relations
	Author User `json:"-" gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Post   Post `json:"-" gorm:"foreignKey:PostID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for the Comment model.
func (Comment) TableName() string {
	return "comments"
}
