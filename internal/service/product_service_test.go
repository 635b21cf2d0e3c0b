package service_test

import (
	"context"
	"testing"

	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/dto"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/model"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductService() (service.ProductService, *stubProductRepo, *stubHistoryRepo) {
	products := newStubProductRepo()
	history := newStubHistoryRepo()
	order := service.NewRowOrderService(newStubSettingRepo(), products)
	svc := service.NewProductService(products, history, order, nil)
	return svc, products, history
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestCreateProduct_SeedsLedgerRow(t *testing.T) {
	svc, _, history := newProductService()

	resp, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:          "Carrots",
		FieldLocation: "North Field",
		CurrentStock:  10,
	})
	require.NoError(t, err)
	require.Len(t, history.entries, 1)

	seed := history.entries[0]
	assert.Equal(t, resp.ID, seed.ProductID.String())
	assert.Equal(t, model.FieldCurrentStock, seed.ChangedField)
	assert.Equal(t, "North Field", seed.Location)
	assert.Equal(t, 0, seed.PreviousValue)
	assert.Equal(t, 10, seed.Change)
	assert.Equal(t, 10, seed.NewValue)
	assert.Equal(t, "Farm Admin", seed.UpdatedBy)
}

func TestUpdateProduct_DiffsTrackedFields(t *testing.T) {
	svc, _, history := newProductService()
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateProductRequest{
		Name:          "Kale",
		CurrentStock:  10,
		WashInventory: "5",
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	_, err = svc.Update(ctx, id, dto.UpdateProductRequest{
		CurrentStock:  intPtr(7),
		WashInventory: strPtr("12"),
		Name:          strPtr("Lacinato Kale"), // name is not a tracked field
	})
	require.NoError(t, err)

	// seed row + two diff rows
	require.Len(t, history.entries, 3)

	byField := map[model.TrackedField]model.HistoryEntry{}
	for _, e := range history.entries[1:] {
		byField[e.ChangedField] = e
	}

	stock := byField[model.FieldCurrentStock]
	assert.Equal(t, 10, stock.PreviousValue)
	assert.Equal(t, -3, stock.Change)
	assert.Equal(t, 7, stock.NewValue)

	wash := byField[model.FieldWashInventory]
	assert.Equal(t, 5, wash.PreviousValue)
	assert.Equal(t, 7, wash.Change)
	assert.Equal(t, 12, wash.NewValue)

	for _, e := range history.entries {
		assert.Equal(t, e.NewValue, e.PreviousValue+e.Change)
	}
}

func TestUpdateProduct_NonNumericFieldSkipped(t *testing.T) {
	svc, _, history := newProductService()
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateProductRequest{
		Name:      "Tomatoes",
		CropNeeds: "weeding", // non-numeric
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	_, err = svc.Update(ctx, id, dto.UpdateProductRequest{
		CropNeeds: strPtr("12"),
	})
	require.NoError(t, err)

	// Only the seed row: the before-side failed coercion, so no diff row.
	assert.Len(t, history.entries, 1)
}

func TestUpdateProduct_EmptyStringCoercesToZero(t *testing.T) {
	svc, _, history := newProductService()
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateProductRequest{Name: "Garlic"})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	_, err = svc.Update(ctx, id, dto.UpdateProductRequest{
		HarvestBins: strPtr("4"),
	})
	require.NoError(t, err)

	require.Len(t, history.entries, 2)
	e := history.entries[1]
	assert.Equal(t, model.FieldHarvestBins, e.ChangedField)
	assert.Equal(t, 0, e.PreviousValue)
	assert.Equal(t, 4, e.Change)
	assert.Equal(t, 4, e.NewValue)
}

func TestUpdateProduct_UntouchedFieldsProduceNoRows(t *testing.T) {
	svc, _, history := newProductService()
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateProductRequest{
		Name:         "Beets",
		CurrentStock: 20,
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	_, err = svc.Update(ctx, id, dto.UpdateProductRequest{
		FieldNotes: strPtr("mulched on Friday"),
	})
	require.NoError(t, err)

	assert.Len(t, history.entries, 1) // only the creation seed
}

func TestUpdateProduct_ChangesTelescope(t *testing.T) {
	svc, _, history := newProductService()
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateProductRequest{Name: "Squash", CurrentStock: 3})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	for _, stock := range []int{9, 2, 14, 14, 6} {
		_, err = svc.Update(ctx, id, dto.UpdateProductRequest{CurrentStock: intPtr(stock)})
		require.NoError(t, err)
	}

	// Sum of all changes (seed included) must equal the final value.
	sum := 0
	for _, e := range history.entries {
		require.Equal(t, model.FieldCurrentStock, e.ChangedField)
		sum += e.Change
	}
	assert.Equal(t, 6, sum)
}

func TestDeleteProduct_LedgerRowsSurvive(t *testing.T) {
	svc, products, history := newProductService()
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateProductRequest{Name: "Leeks", CurrentStock: 30})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	require.NoError(t, svc.Delete(ctx, id))

	_, err = products.FindByID(ctx, id)
	assert.Error(t, err)
	assert.Len(t, history.entries, 1) // orphaned but intact
}
