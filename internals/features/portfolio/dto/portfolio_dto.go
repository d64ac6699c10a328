// file: internals/features/portfolio/dto/portfolio_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "decofilm_backend/internals/features/portfolio/model"
)

func parseDateYMD(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

/* =========================================================
   REQUEST: Create / Update (whole-record replace)
   ========================================================= */

type PortfolioRequest struct {
	PortfolioTitle       string   `json:"portfolio_title"     validate:"required,max=120"`
	PortfolioCategory    string   `json:"portfolio_category"  validate:"required,max=40"`
	PortfolioDescription *string  `json:"portfolio_description"`
	PortfolioImageURL    string   `json:"portfolio_image_url" validate:"required,url"`
	PortfolioTags        []string `json:"portfolio_tags"`

	PortfolioBlogURL       *string `json:"portfolio_blog_url"       validate:"omitempty,url"`
	PortfolioLocation      *string `json:"portfolio_location"       validate:"omitempty,max=80"`
	PortfolioCompletedDate *string `json:"portfolio_completed_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *PortfolioRequest) apply(p *model.PortfolioItem) error {
	p.PortfolioTitle = r.PortfolioTitle
	p.PortfolioCategory = r.PortfolioCategory
	p.PortfolioDescription = r.PortfolioDescription
	p.PortfolioImageURL = r.PortfolioImageURL
	p.PortfolioTags = pq.StringArray(r.PortfolioTags)
	p.PortfolioBlogURL = r.PortfolioBlogURL
	p.PortfolioLocation = r.PortfolioLocation

	if r.PortfolioCompletedDate != nil {
		t, err := parseDateYMD(*r.PortfolioCompletedDate)
		if err != nil {
			return err
		}
		p.PortfolioCompletedDate = &t
	} else {
		p.PortfolioCompletedDate = nil
	}
	return nil
}

func (r *PortfolioRequest) ToModel() (*model.PortfolioItem, error) {
	p := &model.PortfolioItem{}
	if err := r.apply(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PortfolioRequest) ApplyTo(p *model.PortfolioItem) error {
	return r.apply(p)
}

/* =========================================================
   RESPONSE
   ========================================================= */

type PortfolioResponse struct {
	PortfolioID uuid.UUID `json:"portfolio_id"`

	PortfolioTitle       string   `json:"portfolio_title"`
	PortfolioCategory    string   `json:"portfolio_category"`
	PortfolioDescription *string  `json:"portfolio_description,omitempty"`
	PortfolioImageURL    string   `json:"portfolio_image_url"`
	PortfolioTags        []string `json:"portfolio_tags,omitempty"`

	PortfolioBlogURL       *string `json:"portfolio_blog_url,omitempty"`
	PortfolioLocation      *string `json:"portfolio_location,omitempty"`
	PortfolioCompletedDate *string `json:"portfolio_completed_date,omitempty"`

	PortfolioCreatedAt time.Time `json:"portfolio_created_at"`
	PortfolioUpdatedAt time.Time `json:"portfolio_updated_at"`
}

func FromModel(p *model.PortfolioItem) *PortfolioResponse {
	var completed *string
	if p.PortfolioCompletedDate != nil {
		s := p.PortfolioCompletedDate.Format("2006-01-02")
		completed = &s
	}
	return &PortfolioResponse{
		PortfolioID:            p.PortfolioID,
		PortfolioTitle:         p.PortfolioTitle,
		PortfolioCategory:      p.PortfolioCategory,
		PortfolioDescription:   p.PortfolioDescription,
		PortfolioImageURL:      p.PortfolioImageURL,
		PortfolioTags:          []string(p.PortfolioTags),
		PortfolioBlogURL:       p.PortfolioBlogURL,
		PortfolioLocation:      p.PortfolioLocation,
		PortfolioCompletedDate: completed,
		PortfolioCreatedAt:     p.PortfolioCreatedAt,
		PortfolioUpdatedAt:     p.PortfolioUpdatedAt,
	}
}

func FromModels(list []model.PortfolioItem) []*PortfolioResponse {
	out := make([]*PortfolioResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
