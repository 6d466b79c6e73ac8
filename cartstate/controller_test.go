package cartstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swasthiksuvarna/storefront-api/models"
	"github.com/swasthiksuvarna/storefront-api/notify"
	"github.com/swasthiksuvarna/storefront-api/store"
)

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Notify(message string, kind notify.Kind) {
	r.messages = append(r.messages, message)
}

func newTestController(t *testing.T) *Controller {
	t.Helper()
	ctl, err := NewController(store.NewMemoryStore(), "cart:test", &recordingNotifier{})
	require.NoError(t, err)
	return ctl
}

func tee(id uint) models.CartLine {
	return models.CartLine{
		ProductID: id,
		Title:     "Gradient Graphic T-shirt",
		Price:     145,
		Image:     "/uploads/products/tee.png",
		Size:      "Large",
		Color:     "White",
		Quantity:  1,
	}
}

func TestAdd_AppendsNewLine(t *testing.T) {
	ctl := newTestController(t)

	require.NoError(t, ctl.Add(tee(1)))

	items := ctl.Items()
	require.Len(t, items, 1)
	assert.Equal(t, uint(1), items[0].ProductID)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAdd_MergesByProductID(t *testing.T) {
	ctl := newTestController(t)

	require.NoError(t, ctl.Add(tee(1)))
	require.NoError(t, ctl.Add(tee(1)))

	items := ctl.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAdd_RepeatWithDifferentAttributesKeepsOriginalRow(t *testing.T) {
	ctl := newTestController(t)

	require.NoError(t, ctl.Add(tee(1)))

	variant := tee(1)
	variant.Size = "Small"
	variant.Color = "Black"
	require.NoError(t, ctl.Add(variant))

	items := ctl.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Large", items[0].Size)
	assert.Equal(t, "White", items[0].Color)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAdd_ZeroQuantityDefaultsToOne(t *testing.T) {
	ctl := newTestController(t)

	line := tee(1)
	line.Quantity = 0
	require.NoError(t, ctl.Add(line))

	assert.Equal(t, 1, ctl.Items()[0].Quantity)
}

func TestRemove(t *testing.T) {
	ctl := newTestController(t)

	require.NoError(t, ctl.Add(tee(1)))
	require.NoError(t, ctl.Add(tee(2)))

	require.NoError(t, ctl.Remove(1))
	items := ctl.Items()
	require.Len(t, items, 1)
	assert.Equal(t, uint(2), items[0].ProductID)

	// Absent product is a no-op
	require.NoError(t, ctl.Remove(99))
	assert.Len(t, ctl.Items(), 1)
}

func TestIncrease(t *testing.T) {
	ctl := newTestController(t)

	require.NoError(t, ctl.Add(tee(1)))
	require.NoError(t, ctl.Increase(1))
	require.NoError(t, ctl.Increase(1))

	assert.Equal(t, 3, ctl.Items()[0].Quantity)

	require.NoError(t, ctl.Increase(99))
	assert.Len(t, ctl.Items(), 1)
}

func TestDecrease_ClampsAtOne(t *testing.T) {
	ctl := newTestController(t)

	require.NoError(t, ctl.Add(tee(1)))
	require.NoError(t, ctl.Increase(1))

	require.NoError(t, ctl.Decrease(1))
	assert.Equal(t, 1, ctl.Items()[0].Quantity)

	// Repeated decreases never drop the line or reach zero
	require.NoError(t, ctl.Decrease(1))
	require.NoError(t, ctl.Decrease(1))
	items := ctl.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestClear(t *testing.T) {
	ctl := newTestController(t)

	require.NoError(t, ctl.Add(tee(1)))
	require.NoError(t, ctl.Add(tee(2)))

	require.NoError(t, ctl.Clear())
	assert.Empty(t, ctl.Items())
}

func TestNewController_LoadsPersistedLines(t *testing.T) {
	st := store.NewMemoryStore()

	first, err := NewController(st, "cart:u1", &recordingNotifier{})
	require.NoError(t, err)
	require.NoError(t, first.Add(tee(1)))

	second, err := NewController(st, "cart:u1", &recordingNotifier{})
	require.NoError(t, err)

	items := second.Items()
	require.Len(t, items, 1)
	assert.Equal(t, uint(1), items[0].ProductID)
}
