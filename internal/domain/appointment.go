package domain

import "time"

// Appointment is an append-only booking record. UserID is a weak
// back-reference to the booking user; the row keeps its own contact
// name and email, which may differ from the user's.
type Appointment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    *uint     `json:"userId" gorm:"index"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	ApptDate  string    `json:"apptDate" gorm:"not null"`
	ApptTime  string    `json:"apptTime" gorm:"not null"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`

	User *User `json:"-" gorm:"foreignKey:UserID"`
}
