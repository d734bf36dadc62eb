package banners

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/db/models"
	pkgerrors "github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BannerDTO is the storefront representation of one hero slot.
type BannerDTO struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	LinkURL   *string   `json:"link_url,omitempty"`
	Position  int       `json:"position"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateBannerInput holds the payload to create a banner.
type CreateBannerInput struct {
	Title    string
	ImageURL string
	LinkURL  *string
	Position int
	IsActive bool
}

// UpdateBannerInput holds optional mutation values.
type UpdateBannerInput struct {
	Title    *string
	ImageURL *string
	LinkURL  *string
	Position *int
	IsActive *bool
}

// Service exposes banner browsing and admin management.
type Service interface {
	ListBanners(ctx context.Context) ([]BannerDTO, error)
	ListAllBanners(ctx context.Context) ([]BannerDTO, error)
	CreateBanner(ctx context.Context, input CreateBannerInput) (*BannerDTO, error)
	UpdateBanner(ctx context.Context, id uuid.UUID, input UpdateBannerInput) (*BannerDTO, error)
	DeleteBanner(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo BannerRepository
}

func NewService(repo BannerRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("banner repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListBanners(ctx context.Context) ([]BannerDTO, error) {
	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list banners")
	}
	return mapDTOs(rows), nil
}

func (s *service) ListAllBanners(ctx context.Context) ([]BannerDTO, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list banners")
	}
	return mapDTOs(rows), nil
}

func (s *service) CreateBanner(ctx context.Context, input CreateBannerInput) (*BannerDTO, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}
	imageURL := strings.TrimSpace(input.ImageURL)
	if imageURL == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image_url is required")
	}

	banner := &models.Banner{
		Title:    title,
		ImageURL: imageURL,
		LinkURL:  input.LinkURL,
		Position: input.Position,
		IsActive: input.IsActive,
	}
	created, err := s.repo.Create(ctx, banner)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create banner")
	}
	return toDTO(created), nil
}

func (s *service) UpdateBanner(ctx context.Context, id uuid.UUID, input UpdateBannerInput) (*BannerDTO, error) {
	banner, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "banner not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load banner")
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "title cannot be empty")
		}
		banner.Title = title
	}
	if input.ImageURL != nil {
		imageURL := strings.TrimSpace(*input.ImageURL)
		if imageURL == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "image_url cannot be empty")
		}
		banner.ImageURL = imageURL
	}
	if input.LinkURL != nil {
		banner.LinkURL = input.LinkURL
	}
	if input.Position != nil {
		banner.Position = *input.Position
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}

	updated, err := s.repo.Update(ctx, banner)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update banner")
	}
	return toDTO(updated), nil
}

func (s *service) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "banner not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load banner")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete banner")
	}
	return nil
}

func toDTO(banner *models.Banner) *BannerDTO {
	return &BannerDTO{
		ID:        banner.ID,
		Title:     banner.Title,
		ImageURL:  banner.ImageURL,
		LinkURL:   banner.LinkURL,
		Position:  banner.Position,
		IsActive:  banner.IsActive,
		CreatedAt: banner.CreatedAt,
		UpdatedAt: banner.UpdatedAt,
	}
}

func mapDTOs(rows []models.Banner) []BannerDTO {
	out := make([]BannerDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out
}
