package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Recipe struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt        time.Time
	Name             string `gorm:"size:255;not null"`
	ImagePath        string `gorm:"size:255"`
	ShortDescription string `gorm:"type:text"`
	Description      string `gorm:"type:text"`
	Difficulty       int    `gorm:"not null;default:1;check:difficulty >= 1 AND difficulty <= 5"`
	EstimatedMinutes int    `gorm:"not null;default:0;check:estimated_minutes >= 0"`
	Likes            int    `gorm:"not null;default:0;check:likes >= 0"`
	UserID           uuid.UUID `gorm:"type:uuid;not null"`
	User             *User
	Date             time.Time `gorm:"not null"`

	Ingredients []Ingredient `gorm:"constraint:OnDelete:CASCADE"`
	Steps       []Step       `gorm:"constraint:OnDelete:CASCADE"`
	Comments    []Comment    `gorm:"constraint:OnDelete:CASCADE"`
}

type Ingredient struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Position  int       `gorm:"not null"`
	Name      string    `gorm:"size:255;not null"`
	Quantity  float64   `gorm:"not null;default:0;check:quantity >= 0"`
	Unit      string    `gorm:"size:255"`
	ImagePath string    `gorm:"size:255"`
}

type Step struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipeID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Position    int       `gorm:"not null"`
	Description string    `gorm:"type:text;not null"`
	Warning     string    `gorm:"type:text"`
	Tip         string    `gorm:"type:text"`
	ImagePath   string    `gorm:"size:255"`
}

type Comment struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position int       `gorm:"not null"`
	Text     string    `gorm:"type:text;not null"`
	UserID   uuid.UUID `gorm:"type:uuid;not null"`
	Date     time.Time `gorm:"not null"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (s *Step) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
