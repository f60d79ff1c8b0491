package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-graphql-marketplace/internal/core/auth"
	"go-graphql-marketplace/internal/core/bus"
	"go-graphql-marketplace/internal/domain"
	"go-graphql-marketplace/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st := store.New()
	return NewService(st, bus.New(), zap.NewNop()), st
}

func seedListing(st *store.Store, price int64) domain.Listing {
	return st.CreateListing(domain.Listing{
		Title:     "thing",
		Price:     decimal.NewFromInt(price),
		Category:  "misc",
		Condition: domain.ConditionGood,
		UserID:    1,
	})
}

func addr() domain.ShippingAddress {
	return domain.ShippingAddress{
		Street: "Narva mnt 1", City: "Tallinn", State: "Harjumaa", Zip: "10117", Country: "EE",
	}
}

func validInput(listingID int) CreateInput {
	return CreateInput{ListingID: listingID, Quantity: 3, ShippingAddress: addr()}
}

func TestCreate_TotalPriceIsPriceTimesQuantity(t *testing.T) {
	svc, st := newTestService(t)
	l := seedListing(st, 100)

	o, err := svc.Create(&auth.Identity{ID: 2}, validInput(l.ID))
	require.NoError(t, err)
	assert.True(t, o.TotalPrice.Equal(decimal.NewFromInt(300)), "got %s", o.TotalPrice)
	assert.Equal(t, domain.StatusPending, o.Status)
	assert.Equal(t, 2, o.UserID)
}

func TestCreate_ListingExistenceCheckedFirst(t *testing.T) {
	svc, _ := newTestService(t)

	// 数量明明也非法，但 listing 不存在要先报 NOT_FOUND
	in := validInput(42)
	in.Quantity = 0
	_, err := svc.Create(&auth.Identity{ID: 2}, in)
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
}

func TestCreate_RequiresAuthAndValidInput(t *testing.T) {
	svc, st := newTestService(t)
	l := seedListing(st, 100)

	_, err := svc.Create(nil, validInput(l.ID))
	assert.Equal(t, domain.CodeUnauthed, domain.CodeOf(err))

	in := validInput(l.ID)
	in.Quantity = -1
	_, err = svc.Create(&auth.Identity{ID: 2}, in)
	assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))

	in = validInput(l.ID)
	in.ShippingAddress.City = ""
	_, err = svc.Create(&auth.Identity{ID: 2}, in)
	assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))
}

func TestGet_OwnerOnly(t *testing.T) {
	svc, st := newTestService(t)
	l := seedListing(st, 100)
	buyer := &auth.Identity{ID: 2}
	o, err := svc.Create(buyer, validInput(l.ID))
	require.NoError(t, err)

	_, err = svc.Get(nil, o.ID)
	assert.Equal(t, domain.CodeUnauthed, domain.CodeOf(err))

	_, err = svc.Get(&auth.Identity{ID: 3}, o.ID)
	assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))

	_, err = svc.Get(buyer, 999)
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))

	got, err := svc.Get(buyer, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)
}

func TestList_ScopedToCaller(t *testing.T) {
	svc, st := newTestService(t)
	l := seedListing(st, 10)
	a := &auth.Identity{ID: 2}
	b := &auth.Identity{ID: 3}
	for i := 0; i < 3; i++ {
		_, err := svc.Create(a, validInput(l.ID))
		require.NoError(t, err)
	}
	_, err := svc.Create(b, validInput(l.ID))
	require.NoError(t, err)

	// 默认只看到自己的
	orders, info, err := svc.List(a, domain.OrderFilter{}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, orders, 3)
	assert.Equal(t, 3, info.Total)

	// 显式要别人的 → FORBIDDEN
	other := 3
	_, _, err = svc.List(a, domain.OrderFilter{UserID: &other}, 1, 10)
	assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))

	// 显式要自己的没问题
	self := 2
	orders, _, err = svc.List(a, domain.OrderFilter{UserID: &self}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, orders, 3)
}

func TestList_PaginationMetadata(t *testing.T) {
	svc, st := newTestService(t)
	l := seedListing(st, 10)
	a := &auth.Identity{ID: 2}
	for i := 0; i < 7; i++ {
		_, err := svc.Create(a, validInput(l.ID))
		require.NoError(t, err)
	}

	orders, info, err := svc.List(a, domain.OrderFilter{}, 2, 3)
	require.NoError(t, err)
	assert.Len(t, orders, 3)
	assert.Equal(t, 7, info.Total)
	assert.Equal(t, 3, info.Pages) // ceil(7/3)
	assert.True(t, info.HasNextPage)
	assert.True(t, info.HasPreviousPage)

	// 越界页给空列表，不报错
	orders, info, err = svc.List(a, domain.OrderFilter{}, 9, 3)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.False(t, info.HasNextPage)
}

func TestUpdate_QuantityRecomputesFromCurrentPrice(t *testing.T) {
	svc, st := newTestService(t)
	l := seedListing(st, 100)
	buyer := &auth.Identity{ID: 2}
	o, err := svc.Create(buyer, CreateInput{ListingID: l.ID, Quantity: 2, ShippingAddress: addr()})
	require.NoError(t, err)
	require.True(t, o.TotalPrice.Equal(decimal.NewFromInt(200)))

	// 卖家改价后再改数量：按当前价 150 重算，不用下单时的 100
	newPrice := decimal.NewFromInt(150)
	_, ok := st.UpdateListing(l.ID, domain.ListingPatch{Price: &newPrice})
	require.True(t, ok)

	qty := 3
	got, err := svc.Update(buyer, o.ID, UpdateInput{Quantity: &qty})
	require.NoError(t, err)
	assert.True(t, got.TotalPrice.Equal(decimal.NewFromInt(450)), "got %s", got.TotalPrice)
}

func TestUpdate_WithoutQuantityKeepsFrozenTotal(t *testing.T) {
	svc, st := newTestService(t)
	l := seedListing(st, 100)
	buyer := &auth.Identity{ID: 2}
	o, err := svc.Create(buyer, CreateInput{ListingID: l.ID, Quantity: 2, ShippingAddress: addr()})
	require.NoError(t, err)

	newPrice := decimal.NewFromInt(999)
	_, ok := st.UpdateListing(l.ID, domain.ListingPatch{Price: &newPrice})
	require.True(t, ok)

	notes := "leave at the door"
	got, err := svc.Update(buyer, o.ID, UpdateInput{Notes: &notes})
	require.NoError(t, err)
	assert.True(t, got.TotalPrice.Equal(decimal.NewFromInt(200)), "total stays frozen")
}

func TestUpdate_QuantityOnDeletedListing(t *testing.T) {
	svc, st := newTestService(t)
	l := seedListing(st, 100)
	buyer := &auth.Identity{ID: 2}
	o, err := svc.Create(buyer, validInput(l.ID))
	require.NoError(t, err)

	require.True(t, st.DeleteListing(l.ID))

	qty := 5
	_, err = svc.Update(buyer, o.ID, UpdateInput{Quantity: &qty})
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
}

func TestCancel(t *testing.T) {
	svc, st := newTestService(t)
	l := seedListing(st, 100)
	buyer := &auth.Identity{ID: 2}
	o, err := svc.Create(buyer, validInput(l.ID))
	require.NoError(t, err)

	got, err := svc.Cancel(buyer, o.ID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, got.Status)
	assert.Equal(t, "Cancelled by user", got.CancelReason)
	require.NotNil(t, got.CancelledAt)

	// 重复取消是 INVALID_OPERATION，不是静默成功
	_, err = svc.Cancel(buyer, o.ID, "")
	assert.Equal(t, domain.CodeInvalidOp, domain.CodeOf(err))
}

func TestCancel_DeliveredRejected(t *testing.T) {
	svc, st := newTestService(t)
	l := seedListing(st, 100)
	buyer := &auth.Identity{ID: 2}
	o, err := svc.Create(buyer, validInput(l.ID))
	require.NoError(t, err)

	status := domain.StatusDelivered
	_, ok := st.UpdateOrder(o.ID, domain.OrderPatch{Status: &status})
	require.True(t, ok)

	_, err = svc.Cancel(buyer, o.ID, "changed my mind")
	assert.Equal(t, domain.CodeInvalidOp, domain.CodeOf(err))
}

func TestCancel_CustomReason(t *testing.T) {
	svc, st := newTestService(t)
	l := seedListing(st, 100)
	buyer := &auth.Identity{ID: 2}
	o, err := svc.Create(buyer, validInput(l.ID))
	require.NoError(t, err)

	got, err := svc.Cancel(buyer, o.ID, "found cheaper")
	require.NoError(t, err)
	assert.Equal(t, "found cheaper", got.CancelReason)
}

func TestUpdateStatus(t *testing.T) {
	svc, st := newTestService(t)
	l := seedListing(st, 100)
	buyer := &auth.Identity{ID: 2}
	o, err := svc.Create(buyer, validInput(l.ID))
	require.NoError(t, err)

	// 正向流转 OK
	got, err := svc.UpdateStatus(buyer, o.ID, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, got.Status)

	// 回退被拒
	_, err = svc.UpdateStatus(buyer, o.ID, domain.StatusPending)
	assert.Equal(t, domain.CodeInvalidOp, domain.CodeOf(err))

	// 非法枚举
	_, err = svc.UpdateStatus(buyer, o.ID, "RETURNED")
	assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))

	// 非属主
	_, err = svc.UpdateStatus(&auth.Identity{ID: 9}, o.ID, domain.StatusShipped)
	assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))
}

func TestDelete_NotFoundBeforeForbidden(t *testing.T) {
	svc, st := newTestService(t)
	l := seedListing(st, 100)
	buyer := &auth.Identity{ID: 2}
	o, err := svc.Create(buyer, validInput(l.ID))
	require.NoError(t, err)

	_, err = svc.Delete(&auth.Identity{ID: 9}, 999)
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err), "missing resource reports NOT_FOUND even for non-owners")

	_, err = svc.Delete(&auth.Identity{ID: 9}, o.ID)
	assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))

	ok, err := svc.Delete(buyer, o.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}
