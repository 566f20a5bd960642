package model

import "time"

// LikeableType names the kind of entity a Like row points at.
type LikeableType string

const (
	LikeableArticle LikeableType = "Article"
	LikeableComment LikeableType = "Comment"
)

// ParseLikeableType accepts the stored name or its lower-case path form.
func ParseLikeableType(s string) (LikeableType, bool) {
	switch s {
	case "Article", "article", "articles":
		return LikeableArticle, true
	case "Comment", "comment", "comments":
		return LikeableComment, true
	default:
		return "", false
	}
}

// Reaction is a single vote cast on a likeable.
type Reaction string

const (
	ReactionLike    Reaction = "like"
	ReactionDislike Reaction = "dislike"
)

// Like holds the like/dislike counters of one likeable entity.
type Like struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	Likes        int          `json:"likes" gorm:"not null;default:0"`
	Dislikes     int          `json:"dislikes" gorm:"not null;default:0"`
	LikeableType LikeableType `json:"likeableType" gorm:"size:255;not null;uniqueIndex:idx_likes_likeable"`
	LikeableID   uint         `json:"likeableId" gorm:"not null;uniqueIndex:idx_likes_likeable"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}
