package remote

import (
	"context"
	"net/http"
	"net/url"

	"wokstore/internal/domain"
	"wokstore/internal/service"
)

type CatalogSource struct {
	client *Client
}

func NewCatalogSource(client *Client) *CatalogSource {
	return &CatalogSource{client: client}
}

func (s *CatalogSource) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	path := "/products"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	var products []domain.Product
	if err := s.client.do(ctx, http.MethodGet, path, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *CatalogSource) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := s.client.do(ctx, http.MethodGet, "/products/"+id, nil, &product); err != nil {
		if IsStatus(err, http.StatusNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *CatalogSource) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := s.client.do(ctx, http.MethodGet, "/products/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CatalogSource) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	var products []domain.Product
	path := "/products/search?q=" + url.QueryEscape(query)
	if err := s.client.do(ctx, http.MethodGet, path, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *CatalogSource) ListCombos(ctx context.Context) ([]domain.Combo, error) {
	var combos []domain.Combo
	if err := s.client.do(ctx, http.MethodGet, "/combos", nil, &combos); err != nil {
		return nil, err
	}
	return combos, nil
}

func (s *CatalogSource) GetCombo(ctx context.Context, id string) (*domain.Combo, error) {
	var combo domain.Combo
	if err := s.client.do(ctx, http.MethodGet, "/combos/"+id, nil, &combo); err != nil {
		if IsStatus(err, http.StatusNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &combo, nil
}

func (s *CatalogSource) ListCombosByType(ctx context.Context, comboType string) ([]domain.Combo, error) {
	var combos []domain.Combo
	path := "/combos?type=" + url.QueryEscape(comboType)
	if err := s.client.do(ctx, http.MethodGet, path, nil, &combos); err != nil {
		return nil, err
	}
	return combos, nil
}

func (s *CatalogSource) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	var offers []domain.Offer
	if err := s.client.do(ctx, http.MethodGet, "/offers", nil, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

func (s *CatalogSource) GetOffer(ctx context.Context, id string) (*domain.Offer, error) {
	var offer domain.Offer
	if err := s.client.do(ctx, http.MethodGet, "/offers/"+id, nil, &offer); err != nil {
		if IsStatus(err, http.StatusNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &offer, nil
}

func (s *CatalogSource) OffersForProduct(ctx context.Context, productID string) ([]domain.Offer, error) {
	var offers []domain.Offer
	if err := s.client.do(ctx, http.MethodGet, "/offers/product/"+productID, nil, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

var _ service.CatalogSource = (*CatalogSource)(nil)
