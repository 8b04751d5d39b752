package fixture

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wokstore/internal/service"
)

func TestMain(m *testing.M) {
	Latency = 0
	os.Exit(m.Run())
}

func TestCatalogListProductsByCategory(t *testing.T) {
	catalog := NewCatalogSource()
	ctx := context.Background()

	all, err := catalog.ListProducts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 7)

	// The shared category is the "everything" bucket, not a real filter.
	shared, err := catalog.ListProducts(ctx, "Para compartir")
	require.NoError(t, err)
	assert.Len(t, shared, 7)

	drinks, err := catalog.ListProducts(ctx, "Bebidas")
	require.NoError(t, err)
	require.Len(t, drinks, 1)
	assert.Equal(t, "Bebida 500ml", drinks[0].Name)
}

func TestCatalogGetProduct(t *testing.T) {
	catalog := NewCatalogSource()
	ctx := context.Background()

	product, err := catalog.GetProduct(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Arroz Chaufa", product.Name)

	_, err = catalog.GetProduct(ctx, "999")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCatalogCategoriesOrder(t *testing.T) {
	catalog := NewCatalogSource()

	categories, err := catalog.ListCategories(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Para compartir", "Platos", "Entradas", "Bebidas", "Postres"}, categories)
}

func TestCatalogSearchIsCaseInsensitive(t *testing.T) {
	catalog := NewCatalogSource()
	ctx := context.Background()

	byName, err := catalog.SearchProducts(ctx, "CHAUFA")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "1", byName[0].ID)

	// Matches descriptions too.
	byDescription, err := catalog.SearchProducts(ctx, "crocante")
	require.NoError(t, err)
	require.Len(t, byDescription, 1)
	assert.Equal(t, "Pollo a la Naranja", byDescription[0].Name)
}

func TestCatalogCombosByType(t *testing.T) {
	catalog := NewCatalogSource()
	ctx := context.Background()

	personal, err := catalog.ListCombosByType(ctx, "personal")
	require.NoError(t, err)
	require.Len(t, personal, 1)
	assert.Equal(t, "Combo Personal Clásico", personal[0].Name)

	familiar, err := catalog.ListCombosByType(ctx, "familiar")
	require.NoError(t, err)
	assert.Len(t, familiar, 2)

	other, err := catalog.ListCombosByType(ctx, "")
	require.NoError(t, err)
	assert.Len(t, other, 3)
}

func TestCatalogOffersFilterByValidityWindow(t *testing.T) {
	catalog := NewCatalogSource()
	catalog.now = func() time.Time {
		return time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	}

	offers, err := catalog.ListOffers(context.Background())
	require.NoError(t, err)

	require.Len(t, offers, 2)
	for _, o := range offers {
		assert.NotEqual(t, "Promo Verano", o.Title)
	}
}

func TestCatalogExpiredOfferStillFetchableByID(t *testing.T) {
	catalog := NewCatalogSource()

	offer, err := catalog.GetOffer(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Promo Verano", offer.Title)
}

func TestCatalogOffersForProduct(t *testing.T) {
	catalog := NewCatalogSource()
	catalog.now = func() time.Time {
		return time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	ctx := context.Background()

	offers, err := catalog.OffersForProduct(ctx, "4")
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "Promo Dúo Sopa al Wok", offers[0].Title)

	// Product 2 only appears in the expired offer.
	offers, err = catalog.OffersForProduct(ctx, "2")
	require.NoError(t, err)
	assert.Empty(t, offers)
}
