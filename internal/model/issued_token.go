package model

import "time"

// IssuedToken records a session token that is still valid.
// A row exists from sign-in until sign-out; a token whose jti has no row
// is treated as revoked.
type IssuedToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	JTI       string    `json:"jti" gorm:"column:jti;uniqueIndex;size:255;not null"`
	Exp       time.Time `json:"exp" gorm:"not null;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName keeps the historical table name.
func (IssuedToken) TableName() string {
	return "jwt_denylists"
}
