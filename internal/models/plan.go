package models

import (
	"time"

	"gorm.io/gorm"
)

// Plan is a shared payment plan owned by a user
type Plan struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Name        string  `gorm:"type:varchar(255)" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	TotalPrice  float64 `gorm:"type:decimal(15,2)" json:"total_price"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`

	OwnerID *uint `json:"owner_id"`
	Owner   *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

// AppLabel places plans under the billing routes (billing_plan_*)
func (Plan) AppLabel() string { return "billing" }

// VerboseName is how a plan is called on pages
func (Plan) VerboseName() string { return "payment plan" }
