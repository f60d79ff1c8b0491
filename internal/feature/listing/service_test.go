package listing

import (
	"strings"
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

func newTestService(t *testing.T) (*Service, *store.Store, *bus.Bus) {
	t.Helper()
	st := store.New()
	b := bus.New()
	return NewService(st, b, zap.NewNop()), st, b
}

func validInput() CreateInput {
	return CreateInput{
		Title:     "Trek bike",
		Price:     decimal.NewFromInt(450),
		Category:  "sports",
		Condition: domain.ConditionGood,
		Images:    []string{"bike.jpg"},
	}
}

func TestCreate_RequiresAuth(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Create(nil, validInput())
	assert.Equal(t, domain.CodeUnauthed, domain.CodeOf(err))
}

func TestCreate_CallerBecomesOwner(t *testing.T) {
	svc, _, _ := newTestService(t)
	l, err := svc.Create(&auth.Identity{ID: 5}, validInput())
	require.NoError(t, err)
	assert.Equal(t, 5, l.UserID)
}

func TestCreate_ImagesBecomePlaceholderRefs(t *testing.T) {
	svc, _, _ := newTestService(t)
	in := validInput()
	in.Images = []string{"a.jpg", "b.jpg"}

	l, err := svc.Create(&auth.Identity{ID: 1}, in)
	require.NoError(t, err)
	require.Len(t, l.Images, 2)
	for _, ref := range l.Images {
		assert.True(t, strings.HasPrefix(ref, "img://"), ref)
	}
	assert.NotContains(t, l.Images, "a.jpg")
}

func TestCreate_PublishesEvent(t *testing.T) {
	svc, _, b := newTestService(t)
	ch, cancel := b.Subscribe()
	defer cancel()

	l, err := svc.Create(&auth.Identity{ID: 1}, validInput())
	require.NoError(t, err)

	ev := <-ch
	assert.Equal(t, bus.TopicListingCreated, ev.Topic)
	assert.Equal(t, l, ev.Payload)
}

func TestCreate_Validation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ident := &auth.Identity{ID: 1}

	in := validInput()
	in.Price = decimal.Zero
	_, err := svc.Create(ident, in)
	assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))

	in = validInput()
	in.Title = ""
	_, err = svc.Create(ident, in)
	assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))

	in = validInput()
	in.Condition = "MINT"
	_, err = svc.Create(ident, in)
	assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))
}

func TestUpdate_OwnerOnly_NotFoundFirst(t *testing.T) {
	svc, _, _ := newTestService(t)
	owner := &auth.Identity{ID: 1}
	stranger := &auth.Identity{ID: 2}

	l, err := svc.Create(owner, validInput())
	require.NoError(t, err)

	// 不存在的资源对谁都是 NOT_FOUND，属主校验在其后
	_, err = svc.Update(stranger, 999, UpdateInput{})
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))

	_, err = svc.Update(stranger, l.ID, UpdateInput{})
	assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))

	title := "Updated title"
	got, err := svc.Update(owner, l.ID, UpdateInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Updated title", got.Title)
	assert.Equal(t, l.Price, got.Price, "unset fields untouched")
}

func TestDelete_OwnerOnly(t *testing.T) {
	svc, st, _ := newTestService(t)
	owner := &auth.Identity{ID: 1}
	l, err := svc.Create(owner, validInput())
	require.NoError(t, err)

	_, err = svc.Delete(&auth.Identity{ID: 2}, l.ID)
	assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))

	ok, err := svc.Delete(owner, l.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	_, found := st.Listing(l.ID)
	assert.False(t, found)
}
