package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseItemID(t *testing.T) {
	oid := primitive.NewObjectID()

	native := ParseItemID(oid.Hex())
	assert.True(t, native.IsNative())
	assert.Equal(t, oid.Hex(), native.String())

	legacy := ParseItemID("01")
	assert.False(t, legacy.IsNative())
	assert.Equal(t, "01", legacy.String())

	// 24 chars but not hex: still legacy
	odd := ParseItemID("zzzzzzzzzzzzzzzzzzzzzzzz")
	assert.False(t, odd.IsNative())
}

func TestItemID_Filters(t *testing.T) {
	oid := primitive.NewObjectID()

	// a natively-shaped id must also be tried as a raw string, in that order
	filters := NativeItemID(oid).Filters()
	require.Len(t, filters, 2)
	assert.Equal(t, oid, filters[0]["_id"])
	assert.Equal(t, oid.Hex(), filters[1]["_id"])

	filters = LegacyItemID("03").Filters()
	require.Len(t, filters, 1)
	assert.Equal(t, "03", filters[0]["_id"])
}

func TestItemID_IsZero(t *testing.T) {
	assert.True(t, ItemID{}.IsZero())
	assert.False(t, LegacyItemID("01").IsZero())
	assert.False(t, NativeItemID(primitive.NewObjectID()).IsZero())
}

func TestMenuItem_BSONRoundTrip_Native(t *testing.T) {
	oid := primitive.NewObjectID()
	item := MenuItem{
		ID:       NativeItemID(oid),
		Name:     "Caesar Salad",
		Category: "salad",
		Price:    9.50,
	}

	raw, err := bson.Marshal(item)
	require.NoError(t, err)

	var decoded MenuItem
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	assert.True(t, decoded.ID.IsNative())
	assert.Equal(t, oid.Hex(), decoded.ID.String())
	assert.Equal(t, item.Name, decoded.Name)
}

func TestMenuItem_BSONRoundTrip_Legacy(t *testing.T) {
	item := MenuItem{
		ID:       LegacyItemID("42"),
		Name:     "Margherita",
		Category: "pizza",
		Price:    12,
	}

	raw, err := bson.Marshal(item)
	require.NoError(t, err)

	var decoded MenuItem
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	assert.False(t, decoded.ID.IsNative())
	assert.Equal(t, "42", decoded.ID.String())
}

func TestMenuItem_JSONRoundTrip(t *testing.T) {
	oid := primitive.NewObjectID()
	item := MenuItem{ID: NativeItemID(oid), Name: "Tiramisu", Category: "dessert", Price: 6}

	raw, err := json.Marshal(item)
	require.NoError(t, err)

	var decoded MenuItem
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, decoded.ID.IsNative())
	assert.Equal(t, oid.Hex(), decoded.ID.String())
}
