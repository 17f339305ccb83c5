package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"go.uber.org/mock/gomock"
)

func TestImportLegacyOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockManualOrderRepository(ctrl)

	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"id":"a1","orderDate":"2024-04-10","customerName":" ACME ","productGroup":"coil(unit)","orderValue":1000,"grossMargin":15,"grossProfit":999,"salesperson":"Ana"},
		{"id":"a2","orderDate":"10/04/2024","customerName":"Beta","businessUnit":"HBPM","orderValue":10,"grossMargin":5,"salesperson":"Bia"},
		{"orderDate":"2024-05-01","customerName":"Gama","businessUnit":"HBPM","orderValue":200,"grossMargin":10,"salesperson":"Caio"}
	]`), 0o600))

	var saved []*domain.ManualOrder
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order *domain.ManualOrder) error {
			saved = append(saved, order)
			return nil
		})
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("duplicado"))

	imported, skipped, err := importLegacyOrders(context.Background(), mockRepo, reporting.NewBusinessUnitMapper(nil), path, "user-1")

	require.NoError(t, err)
	assert.Equal(t, 1, imported)
	assert.Equal(t, 2, skipped)

	require.Len(t, saved, 1)
	assert.Equal(t, "a1", saved[0].ID)
	assert.Equal(t, "ACME", saved[0].CustomerName)
	assert.Equal(t, "Unit", saved[0].BusinessUnit)
	assert.Equal(t, 150.0, saved[0].GrossProfit)
	assert.Equal(t, "user-1", saved[0].UserID)
}

func TestImportLegacyOrdersArquivoInvalido(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not":"a list"}`), 0o600))

	_, _, err := importLegacyOrders(context.Background(), nil, reporting.NewBusinessUnitMapper(nil), path, "user-1")
	assert.Error(t, err)
}
