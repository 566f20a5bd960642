package model

import "time"

// Article is a piece of content with an optional image.
type Article struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Title            string    `json:"title" gorm:"size:255"`
	ShortDescription string    `json:"shortDescription" gorm:"size:255"`
	Description      string    `json:"description" gorm:"type:text"`
	ImageID          *uint     `json:"imageId" gorm:"index"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`

	// Relations
	Image *Image `json:"image" gorm:"foreignKey:ImageID;constraint:OnDelete:SET NULL"`
}
