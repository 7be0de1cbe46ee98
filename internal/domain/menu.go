package domain

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// ItemID is a menu document identifier. Native documents carry an
// ObjectID _id; rows migrated from the legacy system carry a raw string
// _id and answer only to that form. The two shapes are kept distinct
// instead of being collapsed into one string type.
type ItemID struct {
	oid    primitive.ObjectID
	legacy string
	native bool
}

func NativeItemID(oid primitive.ObjectID) ItemID {
	return ItemID{oid: oid, native: true}
}

func LegacyItemID(s string) ItemID {
	return ItemID{legacy: s}
}

// ParseItemID interprets a request-supplied identifier. A valid
// 24-hex-character string is taken as native; anything else is legacy.
// Lookups must still fall back to the legacy form when the native
// interpretation finds nothing (see Filters).
func ParseItemID(s string) ItemID {
	if oid, err := primitive.ObjectIDFromHex(s); err == nil {
		return NativeItemID(oid)
	}
	return LegacyItemID(s)
}

func (id ItemID) IsNative() bool { return id.native }

func (id ItemID) IsZero() bool {
	return !id.native && id.legacy == ""
}

func (id ItemID) String() string {
	if id.native {
		return id.oid.Hex()
	}
	return id.legacy
}

// Filters returns the _id filters to try, in order: the native
// interpretation first, then the raw string fallback. A natively-shaped
// identifier may still belong to a legacy row whose string _id happens
// to be 24 hex characters, so both filters are returned in that case.
func (id ItemID) Filters() []bson.M {
	if id.native {
		return []bson.M{
			{"_id": id.oid},
			{"_id": id.oid.Hex()},
		}
	}
	return []bson.M{{"_id": id.legacy}}
}

func (id ItemID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if id.native {
		return bson.MarshalValue(id.oid)
	}
	return bson.MarshalValue(id.legacy)
}

func (id *ItemID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.ObjectID:
		oid, _, ok := bsoncore.ReadObjectID(data)
		if !ok {
			return fmt.Errorf("invalid ObjectID _id")
		}
		*id = NativeItemID(oid)
		return nil
	case bsontype.String:
		s, _, ok := bsoncore.ReadString(data)
		if !ok {
			return fmt.Errorf("invalid string _id")
		}
		*id = LegacyItemID(s)
		return nil
	default:
		return fmt.Errorf("unsupported _id type %s", t)
	}
}

func (id ItemID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *ItemID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*id = ParseItemID(s)
	return nil
}

type MenuItem struct {
	ID       ItemID  `bson:"_id,omitempty" json:"_id"`
	Name     string  `bson:"name" json:"name"`
	Recipe   string  `bson:"recipe" json:"recipe"`
	Image    string  `bson:"image,omitempty" json:"image,omitempty"`
	Category string  `bson:"category" json:"category"`
	Price    float64 `bson:"price" json:"price"`
}
