package product

import (
	"context"
	"io"

	"github.com/launchdeck/launchdeck/internal/domain"
	"github.com/launchdeck/launchdeck/internal/pkg/id"
)

const fieldLogo = "logo"

type Service interface {
	Get(ctx context.Context, productID string) (*domain.Product, error)
	// UploadLogo stores the image in object storage and points the product's
	// logo reference at it.
	UploadLogo(ctx context.Context, productID string, r io.Reader, contentType string) (*domain.Product, error)
}

type productStore interface {
	Get(ctx context.Context, productID string) (*domain.Product, error)
	Update(ctx context.Context, productID string, updates map[string]interface{}) error
}

type objectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
}

type service struct {
	repo    productStore
	objects objectStore
}

func NewService(repo productStore, objects objectStore) Service {
	return &service{repo: repo, objects: objects}
}

func (s *service) Get(ctx context.Context, productID string) (*domain.Product, error) {
	return s.repo.Get(ctx, productID)
}

func (s *service) UploadLogo(ctx context.Context, productID string, r io.Reader, contentType string) (*domain.Product, error) {
	if _, err := s.repo.Get(ctx, productID); err != nil {
		return nil, err
	}
	key := "logos/" + productID + "/" + id.New()
	url, err := s.objects.Upload(ctx, key, r, contentType)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, productID, map[string]interface{}{fieldLogo: url}); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, productID)
}
