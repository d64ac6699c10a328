// file: internals/features/portfolio/model/portfolio_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =========================
   Model: portfolio_items
   ========================= */

type PortfolioItem struct {
	PortfolioID uuid.UUID `json:"portfolio_id" gorm:"column:portfolio_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	PortfolioTitle       string         `json:"portfolio_title"       gorm:"column:portfolio_title;type:varchar(120);not null"`
	PortfolioCategory    string         `json:"portfolio_category"    gorm:"column:portfolio_category;type:varchar(40);not null"`
	PortfolioDescription *string        `json:"portfolio_description,omitempty" gorm:"column:portfolio_description;type:text"`
	PortfolioImageURL    string         `json:"portfolio_image_url"   gorm:"column:portfolio_image_url;type:text;not null"`
	PortfolioTags        pq.StringArray `json:"portfolio_tags,omitempty" gorm:"column:portfolio_tags;type:text[]"`

	PortfolioBlogURL       *string    `json:"portfolio_blog_url,omitempty"       gorm:"column:portfolio_blog_url;type:text"`
	PortfolioLocation      *string    `json:"portfolio_location,omitempty"       gorm:"column:portfolio_location;type:varchar(80)"`
	PortfolioCompletedDate *time.Time `json:"portfolio_completed_date,omitempty" gorm:"column:portfolio_completed_date;type:date"`

	PortfolioCreatedAt time.Time  `json:"portfolio_created_at"           gorm:"column:portfolio_created_at;type:timestamptz;not null;default:now()"`
	PortfolioUpdatedAt time.Time  `json:"portfolio_updated_at"           gorm:"column:portfolio_updated_at;type:timestamptz;not null;default:now()"`
	PortfolioDeletedAt *time.Time `json:"portfolio_deleted_at,omitempty" gorm:"column:portfolio_deleted_at;type:timestamptz"`
}

func (PortfolioItem) TableName() string { return "portfolio_items" }

func (p *PortfolioItem) BeforeCreate(tx *gorm.DB) error {
	p.PortfolioUpdatedAt = time.Now().UTC()
	return nil
}

func (p *PortfolioItem) BeforeUpdate(tx *gorm.DB) error {
	p.PortfolioUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Scopes
   ========================= */

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("portfolio_deleted_at IS NULL")
}

func ScopeCategory(category string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if category == "" {
			return db
		}
		return db.Where("portfolio_category = ?", category)
	}
}

func ScopeSearch(pattern string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pattern == "%%" || pattern == "" {
			return db
		}
		return db.Where(
			"portfolio_title ILIKE ? OR portfolio_description ILIKE ? OR array_to_string(portfolio_tags, ',') ILIKE ?",
			pattern, pattern, pattern,
		)
	}
}
