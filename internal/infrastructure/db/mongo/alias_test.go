package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestField(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := bson.M{
		"snake":   "value",
		"empty":   "",
		"nil":     nil,
		"number":  int32(42),
		"decimal": 3.5,
		"oid":     oid,
	}

	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"direct hit", []string{"snake"}, "value"},
		{"fallback past empty", []string{"empty", "snake"}, "value"},
		{"fallback past nil", []string{"nil", "snake"}, "value"},
		{"missing keys", []string{"nope", "also-nope"}, ""},
		{"int stringified", []string{"number"}, "42"},
		{"float stringified", []string{"decimal"}, "3.5"},
		{"object id hex", []string{"oid"}, oid.Hex()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := field(doc, tc.keys...); got != tc.want {
				t.Errorf("field(%v) = %q, want %q", tc.keys, got, tc.want)
			}
		})
	}
}

func TestIDFilter(t *testing.T) {
	oid := primitive.NewObjectID()

	// A hex id must match rows stored either as string or ObjectID.
	f := idFilter(oid.Hex())
	in, ok := f["_id"].(bson.M)
	if !ok {
		t.Fatalf("hex id filter = %v, want an $in clause", f)
	}
	vals, ok := in["$in"].(bson.A)
	if !ok || len(vals) != 2 {
		t.Fatalf("$in clause = %v, want two candidates", in)
	}

	// A non-hex id matches literally.
	f = idFilter("user-42")
	if f["_id"] != "user-42" {
		t.Errorf("plain id filter = %v", f)
	}
}

func TestMapUserDoc_SchemaVariants(t *testing.T) {
	legacy := bson.M{
		"_id":         "u1",
		"UID":         "u1",
		"Name":        "Karim",
		"Email":       "karim@example.com",
		"Email_Type":  "User",
		"Credits":     "10.0",
		"User_Type":   "Credits License",
		"Block":       "1",
		"Expiry_Time": "2024-12-01 00:00:00",
		"Hwid":        "ABC123",
	}
	u := mapUserDoc(legacy)
	if u.UID != "u1" || u.Name != "Karim" || u.Credits != "10.0" {
		t.Errorf("legacy mapping = %+v", u)
	}
	if u.UserType != "Credits License" || u.Block != "1" || u.HWID != "ABC123" {
		t.Errorf("legacy mapping = %+v", u)
	}

	modern := bson.M{
		"_id":       "u2",
		"uid":       "u2",
		"name":      "Sara",
		"credits":   "0.0",
		"user_type": "Monthly License",
	}
	u = mapUserDoc(modern)
	if u.UID != "u2" || u.Name != "Sara" || u.UserType != "Monthly License" {
		t.Errorf("modern mapping = %+v", u)
	}
}

func TestMapOperationDoc_SchemaVariants(t *testing.T) {
	// The PascalCase variant carries the legacy "Opration" misspelling.
	legacy := bson.M{
		"_id":           "op1",
		"OprationID":    "ignored-when-_id-present",
		"OprationTypes": "FRP Unlock",
		"Phone_SN":      "SN123",
		"UserName":      "karim",
		"Credit":        "5.0",
		"Time":          "2024-05-01 09:30:00",
		"UID":           "u1",
	}
	op := mapOperationDoc(legacy)
	if op.OperationID != "op1" {
		t.Errorf("operation id = %q, want _id to win", op.OperationID)
	}
	if op.OperationType != "FRP Unlock" || op.PhoneSN != "SN123" || op.Username != "karim" {
		t.Errorf("legacy mapping = %+v", op)
	}
	if op.Credit != "5.0" || op.UID != "u1" {
		t.Errorf("legacy mapping = %+v", op)
	}

	modern := bson.M{
		"operation_id":   "op2",
		"operation_type": "Flash Firmware",
		"credit":         "3.0",
		"uid":            "u2",
	}
	op = mapOperationDoc(modern)
	if op.OperationID != "op2" || op.OperationType != "Flash Firmware" {
		t.Errorf("modern mapping = %+v", op)
	}
}
