package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMergesExistingLine(t *testing.T) {
	c := &Cart{}
	id := uuid.New()

	c.Add(Line{ProductID: id, ProductName: "Salmon Feast", Price: 40, Quantity: 1})
	c.Add(Line{ProductID: id, ProductName: "Salmon Feast", Price: 40, Quantity: 2})

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 120.0, c.Total())
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	c := &Cart{}
	id := uuid.New()
	c.Add(Line{ProductID: id, Price: 10, Quantity: 3})

	ok := c.UpdateQuantity(id, 0)
	assert.True(t, ok)
	assert.Empty(t, c.Lines())
	assert.Equal(t, 0.0, c.Total())

	ok = c.UpdateQuantity(id, 2)
	assert.False(t, ok)
}

func TestTotalSumsLineSnapshots(t *testing.T) {
	c := &Cart{}
	c.Add(Line{ProductID: uuid.New(), Price: 19.9, Quantity: 2})
	c.Add(Line{ProductID: uuid.New(), Price: 5.5, Quantity: 1})

	assert.InDelta(t, 45.3, c.Total(), 1e-9)
}

func TestSnapshotPriceUnaffectedByLaterAdds(t *testing.T) {
	c := &Cart{}
	id := uuid.New()
	c.Add(Line{ProductID: id, Price: 40, Quantity: 1})
	// Price moved in the catalog; the merged line keeps the snapshot.
	c.Add(Line{ProductID: id, Price: 55, Quantity: 1})

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 40.0, lines[0].Price)
	assert.Equal(t, 80.0, c.Total())
}

func TestStoreIsolatesUsers(t *testing.T) {
	s := NewStore()
	id := uuid.New()

	s.Add("alice", Line{ProductID: id, Price: 12, Quantity: 1})
	s.Add("bob", Line{ProductID: id, Price: 12, Quantity: 4})

	assert.Equal(t, 12.0, s.Total("alice"))
	assert.Equal(t, 48.0, s.Total("bob"))

	s.Clear("bob")
	assert.Empty(t, s.Lines("bob"))
	assert.Len(t, s.Lines("alice"), 1)
}
