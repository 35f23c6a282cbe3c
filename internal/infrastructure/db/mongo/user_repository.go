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

const collectionUsers = "users"

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

// mapUserDoc translates one backend row (either schema variant) into the
// canonical User. This is the single translation point for user fields.
func mapUserDoc(doc bson.M) domain.User {
	return domain.User{
		ID:         field(doc, "_id", "id"),
		UID:        field(doc, "uid", "UID"),
		Name:       field(doc, "name", "Name"),
		Email:      field(doc, "email", "Email"),
		EmailType:  field(doc, "email_type", "Email_Type"),
		Phone:      field(doc, "phone", "Phone"),
		Country:    field(doc, "country", "Country"),
		Credits:    field(doc, "credits", "Credits"),
		UserType:   field(doc, "user_type", "User_Type"),
		Activate:   field(doc, "activate", "Activate"),
		Block:      field(doc, "block", "Block"),
		ExpiryTime: field(doc, "expiry_time", "Expiry_Time"),
		StartDate:  field(doc, "start_date", "Start_Date"),
		HWID:       field(doc, "hwid", "Hwid", "HWID"),
		Password:   field(doc, "password", "Password"),
	}
}

// ListAll returns every user row.
func (r *UserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var users []domain.User
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, mapUserDoc(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// FindByID retrieves one user by backend id.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc bson.M
	err := r.col.FindOne(ctx, idFilter(id)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	u := mapUserDoc(doc)
	return &u, nil
}

// UpdateCredits overwrites the credits field only.
func (r *UserRepository) UpdateCredits(ctx context.Context, id, credits string) error {
	return r.partialUpdate(ctx, id, bson.M{"credits": credits})
}

// UpdateBlock overwrites the block flag only.
func (r *UserRepository) UpdateBlock(ctx context.Context, id, block string) error {
	return r.partialUpdate(ctx, id, bson.M{"block": block})
}

// UpdateExpiry overwrites the expiry timestamp and activation flag.
func (r *UserRepository) UpdateExpiry(ctx context.Context, id, expiryTime, activate string) error {
	return r.partialUpdate(ctx, id, bson.M{"expiry_time": expiryTime, "activate": activate})
}

func (r *UserRepository) partialUpdate(ctx context.Context, id string, set bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, idFilter(id), bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the users collection.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "uid", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
