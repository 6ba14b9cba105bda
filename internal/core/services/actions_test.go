package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/databolaget/databolaget/internal/core/domain"
)

func newRecordingActions() (*ProductActionService, *[]string, *[]string) {
	var opened, copied []string
	service := &ProductActionService{
		open: func(url string) error {
			opened = append(opened, url)
			return nil
		},
		copy: func(text string) error {
			copied = append(copied, text)
			return nil
		},
	}
	return service, &opened, &copied
}

func TestNewProductActionService(t *testing.T) {
	service := NewProductActionService()

	require.NotNil(t, service)
	assert.NotNil(t, service.open)
	assert.NotNil(t, service.copy)
}

func TestProductActionService_OpenProduct(t *testing.T) {
	service, opened, _ := newRecordingActions()
	product := domain.Product{"productUrl": "https://www.systembolaget.se/produkt/vin/x-1/"}

	require.NoError(t, service.OpenProduct(context.Background(), product))

	assert.Equal(t, []string{"https://www.systembolaget.se/produkt/vin/x-1/"}, *opened)
}

func TestProductActionService_OpenProduct_DerivesURL(t *testing.T) {
	service, opened, _ := newRecordingActions()

	require.NoError(t, service.OpenProduct(context.Background(), pilsner()))

	assert.Equal(t, []string{"https://www.systembolaget.se/produkt/ol/pilsner-urquell-12345/"}, *opened)
}

func TestProductActionService_OpenProduct_NoURL(t *testing.T) {
	service, opened, _ := newRecordingActions()

	err := service.OpenProduct(context.Background(), domain.Product{"productNameBold": "Okänd"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Empty(t, *opened)

	err = service.OpenProduct(context.Background(), nil)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestProductActionService_CopyURL(t *testing.T) {
	service, opened, copied := newRecordingActions()

	require.NoError(t, service.CopyURL(context.Background(), pilsner()))

	assert.Empty(t, *opened)
	assert.Equal(t, []string{"https://www.systembolaget.se/produkt/ol/pilsner-urquell-12345/"}, *copied)
}

func TestProductActionService_OpenError(t *testing.T) {
	service := &ProductActionService{open: func(string) error { return errors.New("no browser") }}

	err := service.OpenProduct(context.Background(), pilsner())

	assert.EqualError(t, err, "no browser")
}
