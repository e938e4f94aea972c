package models

// User represents the user model in the database. Email is the login
// identity and is unique; usernames are display names and are not.
type User struct {
	Base
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Username string `gorm:"size:255;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`

	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
}
