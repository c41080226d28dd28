package models

import (
	"time"
)

// User is the account created at onboarding, before the patient registers.
type User struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"size:100;not null;column:name" json:"name"`
	Email     string    `gorm:"size:255;not null;unique;index;column:email" json:"email"`
	Phone     string    `gorm:"size:20;not null;column:phone" json:"phone"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

// CreateUserParams is the onboarding request.
type CreateUserParams struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
	Phone string `json:"phone" form:"phone"`
}
