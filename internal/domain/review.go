package domain

import "time"

type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    *uint     `json:"userId" gorm:"index"`
	Name      string    `json:"name" gorm:"not null"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`

	// OwnerEmail is filled by the public listing's left join with
	// users; nil when the review has no owner. Not a column.
	OwnerEmail *string `json:"ownerEmail,omitempty" gorm:"->;-:migration"`

	User *User `json:"-" gorm:"foreignKey:UserID"`
}
