package mongo

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The hosted backend has two coexisting schema variants: an older PascalCase
// one (OprationID, Phone_SN, User_Type, ...) and a newer snake_case one.
// All translation into the canonical snake_case model happens in this file;
// nothing outside this package sees backend field names.

// idFilter matches a row by its _id whether the backend stored it as a plain
// string or as an ObjectID.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": bson.M{"$in": bson.A{id, oid}}}
	}
	return bson.M{"_id": id}
}

// field returns the first non-empty value among the given keys, rendered as a
// string. Backend rows occasionally carry numbers where strings are expected;
// those are stringified rather than dropped.
func field(doc bson.M, keys ...string) string {
	for _, k := range keys {
		v, ok := doc[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if t != "" {
				return t
			}
		case primitive.ObjectID:
			return t.Hex()
		case int32, int64, float64:
			return fmt.Sprintf("%v", t)
		}
	}
	return ""
}
