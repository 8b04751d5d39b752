package fixture

import (
	"context"
	"strings"
	"time"

	"wokstore/internal/domain"
	"wokstore/internal/service"
)

// categoryAll is the synthetic "everything" category shown first in the menu.
const categoryAll = "Para compartir"

var fixtureProducts = []domain.Product{
	{ID: "1", Name: "Arroz Chaufa", Description: "Arroz frito al wok con pollo y tortilla", Price: 18.90, Category: "Platos", Image: "/img/menu/arroz-chaufa.webp", IsAvailable: true},
	{ID: "2", Name: "Pollo a la Naranja", Description: "Trozos de pollo crocante en salsa de naranja", Price: 21.90, Category: "Platos", Image: "/img/menu/pollo-naranja.webp", IsAvailable: true},
	{ID: "3", Name: "Pollo con Verduras", Description: "Saltado de pollo y verduras al wok", Price: 20.50, Category: "Platos", Image: "/img/menu/pollo-verduras.webp", IsAvailable: true},
	{ID: "4", Name: "Wantanes Fritos", Description: "8 wantanes crujientes rellenos de pollo", Price: 9.90, Category: "Entradas", Image: "/img/menu/wantanes.webp", IsAvailable: true},
	{ID: "5", Name: "Sopa Wantán", Description: "Sopa oriental con wantanes y verduras", Price: 15.50, Category: "Entradas", Image: "/img/menu/sopa-wantan.webp", IsAvailable: true},
	{ID: "6", Name: "Bebida 500ml", Description: "Gaseosa personal", Price: 5.50, Category: "Bebidas", Image: "/img/menu/bebida-500.webp", IsAvailable: true},
	{ID: "7", Name: "Torta Helada de Lúcuma", Description: "Porción de torta helada", Price: 8.90, Category: "Postres", Image: "/img/menu/torta-lucuma.webp", IsAvailable: true, IsNew: true},
}

var fixtureCombos = []domain.Combo{
	{
		ID: "1", Name: "Combo Personal Clásico",
		Description: "Arroz chaufa + pollo a la naranja + bebida",
		Image:       "/img/menu/promos/combo-personal.webp",
		Price:       24.90,
		Products: []domain.ComboProduct{
			{ProductID: "1", ProductName: "Arroz Chaufa", Quantity: 1},
			{ProductID: "2", ProductName: "Pollo a la Naranja", Quantity: 1},
			{ProductID: "6", ProductName: "Bebida 500ml", Quantity: 1},
		},
		IsAvailable: true,
	},
	{
		ID: "2", Name: "Dúo Clásico al Wok",
		Description: "2 platos de pollo con verduras + 2 bebidas",
		Image:       "/img/menu/promos/duo-clasico.webp",
		Price:       54.90,
		Discount:    45,
		Products: []domain.ComboProduct{
			{ProductID: "3", ProductName: "Pollo con Verduras", Quantity: 2},
			{ProductID: "6", ProductName: "Bebida 500ml", Quantity: 2},
		},
		IsAvailable: true,
	},
	{
		ID: "3", Name: "Promo Familiar Deluxe",
		Description: "4 platos + 4 bebidas + 8 wantanes",
		Image:       "/img/menu/promos/familiar-deluxe.webp",
		Price:       89.90,
		Discount:    30,
		Products: []domain.ComboProduct{
			{ProductID: "1", ProductName: "Plato a elegir", Quantity: 4},
			{ProductID: "6", ProductName: "Bebida 500ml", Quantity: 4},
			{ProductID: "4", ProductName: "Wantanes", Quantity: 8},
		},
		IsAvailable: true,
	},
}

var fixtureOffers = []domain.Offer{
	{
		ID: "1", Title: "Promo Dúo Sopa al Wok",
		Description:        "2 sopas orientales + wantanes crujientes",
		Image:              "/img/menu/promos/duo-sopa.webp",
		DiscountPercentage: 25,
		ValidFrom:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil:         time.Date(2030, 12, 31, 23, 59, 59, 0, time.UTC),
		Products:           []string{"4", "5"},
		IsActive:           true,
	},
	{
		ID: "2", Title: "Cyber para Compartir",
		Description:        "2 platos + wantanes + bebida 1.5L",
		Image:              "/img/menu/promos/cyber-compartir.webp",
		DiscountPercentage: 40,
		ValidFrom:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil:         time.Date(2030, 12, 31, 23, 59, 59, 0, time.UTC),
		Products:           []string{"1", "3"},
		IsActive:           true,
	},
	{
		ID: "3", Title: "Promo Verano",
		Description:        "Plato + bebida helada",
		Image:              "/img/menu/promos/verano.webp",
		DiscountPercentage: 20,
		ValidFrom:          time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil:         time.Date(2023, 3, 31, 23, 59, 59, 0, time.UTC),
		Products:           []string{"2"},
		IsActive:           true,
	},
}

// CatalogSource serves the canned menu. The expired offer above exercises
// the validity-window filter.
type CatalogSource struct {
	now func() time.Time
}

func NewCatalogSource() *CatalogSource {
	return &CatalogSource{now: time.Now}
}

func (s *CatalogSource) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	simulateLatency(ctx)

	var products []domain.Product
	for _, p := range fixtureProducts {
		if category != "" && category != categoryAll && p.Category != category {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

func (s *CatalogSource) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	simulateLatency(ctx)

	for _, p := range fixtureProducts {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, service.ErrNotFound
}

func (s *CatalogSource) ListCategories(ctx context.Context) ([]string, error) {
	categories := []string{categoryAll}
	seen := map[string]bool{categoryAll: true}
	for _, p := range fixtureProducts {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories, nil
}

func (s *CatalogSource) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	simulateLatency(ctx)

	query = strings.ToLower(query)
	var products []domain.Product
	for _, p := range fixtureProducts {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			products = append(products, p)
		}
	}
	return products, nil
}

func (s *CatalogSource) ListCombos(ctx context.Context) ([]domain.Combo, error) {
	simulateLatency(ctx)

	var combos []domain.Combo
	for _, c := range fixtureCombos {
		if c.IsAvailable {
			combos = append(combos, c)
		}
	}
	return combos, nil
}

func (s *CatalogSource) GetCombo(ctx context.Context, id string) (*domain.Combo, error) {
	simulateLatency(ctx)

	for _, c := range fixtureCombos {
		if c.ID == id {
			combo := c
			return &combo, nil
		}
	}
	return nil, service.ErrNotFound
}

// ListCombosByType buckets combos by price: personal under 30, familiar
// from 50 up. Any other type returns all available combos.
func (s *CatalogSource) ListCombosByType(ctx context.Context, comboType string) ([]domain.Combo, error) {
	simulateLatency(ctx)

	var combos []domain.Combo
	for _, c := range fixtureCombos {
		if !c.IsAvailable {
			continue
		}
		switch comboType {
		case "personal":
			if c.Price < 30 {
				combos = append(combos, c)
			}
		case "familiar":
			if c.Price >= 50 {
				combos = append(combos, c)
			}
		default:
			combos = append(combos, c)
		}
	}
	return combos, nil
}

func (s *CatalogSource) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	simulateLatency(ctx)

	now := s.now()
	var offers []domain.Offer
	for _, o := range fixtureOffers {
		if o.ActiveAt(now) {
			offers = append(offers, o)
		}
	}
	return offers, nil
}

func (s *CatalogSource) GetOffer(ctx context.Context, id string) (*domain.Offer, error) {
	simulateLatency(ctx)

	for _, o := range fixtureOffers {
		if o.ID == id {
			offer := o
			return &offer, nil
		}
	}
	return nil, service.ErrNotFound
}

func (s *CatalogSource) OffersForProduct(ctx context.Context, productID string) ([]domain.Offer, error) {
	simulateLatency(ctx)

	now := s.now()
	var offers []domain.Offer
	for _, o := range fixtureOffers {
		if !o.ActiveAt(now) {
			continue
		}
		for _, id := range o.Products {
			if id == productID {
				offers = append(offers, o)
				break
			}
		}
	}
	return offers, nil
}

var _ service.CatalogSource = (*CatalogSource)(nil)
