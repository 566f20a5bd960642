package model

// Image is a base64-encoded picture owned by at most one article.
type Image struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Image    string `json:"image" gorm:"type:longtext"`
	ImageAlt string `json:"imageAlt" gorm:"size:255"`
}
