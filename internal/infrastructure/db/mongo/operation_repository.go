package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pegasus-tool/admin-api/internal/core/domain"
)

const collectionOperations = "operations"

type OperationRepository struct {
	col *mongo.Collection
}

func NewOperationRepository(db *mongo.Database) *OperationRepository {
	return &OperationRepository{col: db.Collection(collectionOperations)}
}

// mapOperationDoc translates one backend row (either schema variant) into the
// canonical Operation. Note the legacy misspelling "Opration" in the
// PascalCase variant; it is part of the wire format, not a typo here.
func mapOperationDoc(doc bson.M) domain.Operation {
	return domain.Operation{
		OperationID:   field(doc, "_id", "operation_id", "OprationID"),
		OperationType: field(doc, "operation_type", "OprationTypes"),
		PhoneSN:       field(doc, "phone_sn", "Phone_SN"),
		Brand:         field(doc, "brand", "Brand"),
		Model:         field(doc, "model", "Model"),
		IMEI:          field(doc, "imei", "Imei"),
		Username:      field(doc, "username", "UserName"),
		Credit:        field(doc, "credit", "Credit"),
		Time:          field(doc, "time", "Time"),
		Status:        field(doc, "status", "Status"),
		Android:       field(doc, "android", "Android"),
		Baseband:      field(doc, "baseband", "Baseband"),
		Carrier:       field(doc, "carrier", "Carrier"),
		SecurityPatch: field(doc, "security_patch", "Security_Patch"),
		UID:           field(doc, "uid", "UID"),
		HWID:          field(doc, "hwid", "HWID"),
		LogOperation:  field(doc, "log_operation", "Log_Operation"),
	}
}

// ListAll returns every operation row.
func (r *OperationRepository) ListAll(ctx context.Context) ([]domain.Operation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	defer cur.Close(ctx)

	var ops []domain.Operation
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode operation: %w", err)
		}
		ops = append(ops, mapOperationDoc(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	return ops, nil
}

// FindByID retrieves one operation by id.
func (r *OperationRepository) FindByID(ctx context.Context, id string) (*domain.Operation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc bson.M
	err := r.col.FindOne(ctx, idFilter(id)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOperationNotFound
		}
		return nil, fmt.Errorf("find operation: %w", err)
	}
	op := mapOperationDoc(doc)
	return &op, nil
}

// UpdateStatusAndCredit partially updates one operation's status and credit,
// leaving every other field untouched.
func (r *OperationRepository) UpdateStatusAndCredit(ctx context.Context, id, status, credit string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, idFilter(id), bson.M{
		"$set": bson.M{"status": status, "credit": credit},
	})
	if err != nil {
		return fmt.Errorf("update operation: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrOperationNotFound
	}
	return nil
}

// Insert persists a newly ingested operation in the canonical schema.
func (r *OperationRepository) Insert(ctx context.Context, op *domain.Operation) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"_id":            op.OperationID,
		"operation_type": op.OperationType,
		"phone_sn":       op.PhoneSN,
		"brand":          op.Brand,
		"model":          op.Model,
		"imei":           op.IMEI,
		"username":       op.Username,
		"credit":         op.Credit,
		"time":           op.Time,
		"status":         op.Status,
		"android":        op.Android,
		"baseband":       op.Baseband,
		"carrier":        op.Carrier,
		"security_patch": op.SecurityPatch,
		"uid":            op.UID,
		"hwid":           op.HWID,
		"log_operation":  op.LogOperation,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert operation: %w", err)
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the operations collection.
func (r *OperationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "uid", Value: 1}}},
		{Keys: bson.D{{Key: "time", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
