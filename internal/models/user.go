package models

import (
	"time"

	"gorm.io/gorm"
)

// UserType represents the type of user
type UserType string

const (
	UserTypeAdmin  UserType = "Admin"
	UserTypeMember UserType = "Member"
)

// User is an account that owns plans
type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Name     string   `gorm:"type:varchar(255)" json:"name"`
	Email    string   `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	UserType UserType `gorm:"type:varchar(20);default:'Member'" json:"user_type"`

	Plans []Plan `gorm:"foreignKey:OwnerID" json:"plans,omitempty"`
}

// AppLabel places users under the accounts routes (accounts_user_*)
func (User) AppLabel() string { return "accounts" }

// DisplayName is the label used for a user in breadcrumbs and headings
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
