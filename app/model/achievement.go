package model

import "time"

type Category string

const (
	CategoryAcademic   Category = "academic"
	CategorySports     Category = "sports"
	CategoryCreative   Category = "creative"
	CategorySocial     Category = "social"
	CategoryLeadership Category = "leadership"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryAcademic, CategorySports, CategoryCreative, CategorySocial, CategoryLeadership:
		return true
	}
	return false
}

type Achievement struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	UUID        string    `gorm:"size:36;uniqueIndex;not null" json:"uuid"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	StarPoints  int       `gorm:"not null;default:0" json:"star_points"`
	Category    Category  `gorm:"size:20;default:'academic'" json:"category"`
	IconURL     string    `gorm:"size:255" json:"icon_url,omitempty"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedByID *int64    `json:"created_by_id,omitempty"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	CreatedBy *User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

type CreateAchievementRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	StarPoints  int      `json:"star_points" validate:"gte=0"`
	Category    Category `json:"category" validate:"omitempty,oneof=academic sports creative social leadership"`
	IconURL     string   `json:"icon_url" validate:"omitempty,url"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

type UpdateAchievementRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	StarPoints  *int      `json:"star_points,omitempty" validate:"omitempty,gte=0"`
	Category    *Category `json:"category,omitempty" validate:"omitempty,oneof=academic sports creative social leadership"`
	IconURL     *string   `json:"icon_url,omitempty" validate:"omitempty,url"`
	IsActive    *bool     `json:"is_active,omitempty"`
}
