package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hrsuite/personnel-system/internal/core/domain"
)

const userCollection = "users"

// UserStore persists the User aggregate as a single document, role
// associations embedded. Saves replace the whole document: last write wins.
type UserStore struct {
	coll *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{coll: db.Collection(userCollection)}
}

type mongoUserRole struct {
	RoleID     string `bson:"role_id"`
	AssignedAt int64  `bson:"assigned_at"`
	UpdatedAt  int64  `bson:"updated_at"`
}

type mongoUser struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Username      string             `bson:"username"`
	UsernameLower string             `bson:"username_lower"`
	Email         string             `bson:"email,omitempty"`
	EmailLower    string             `bson:"email_lower,omitempty"`
	PasswordHash  string             `bson:"password_hash"`
	Active        bool               `bson:"active"`
	Roles         []mongoUserRole    `bson:"roles"`
	CreatedAt     int64              `bson:"created_at"`
	UpdatedAt     int64              `bson:"updated_at"`
}

func (r *UserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	res, err := r.coll.InsertOne(ctx, toMongoUser(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// FindByUsernameOrEmail matches either field case-insensitively via the
// lowercased shadow fields.
func (r *UserStore) FindByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*domain.User, error) {
	q := strings.ToLower(strings.TrimSpace(usernameOrEmail))
	filter := bson.M{"$or": bson.A{
		bson.M{"username_lower": q},
		bson.M{"email_lower": q},
	}}
	return r.findOne(ctx, filter)
}

func (r *UserStore) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserStore) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	doc := toMongoUser(user)
	doc.ID = oid
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

func (r *UserStore) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return fromMongoUser(&mu), nil
}

func toMongoUser(u *domain.User) mongoUser {
	roles := make([]mongoUserRole, 0, len(u.Roles))
	for _, ur := range u.Roles {
		roles = append(roles, mongoUserRole{
			RoleID:     ur.RoleID,
			AssignedAt: ur.AssignedAt.Unix(),
			UpdatedAt:  ur.UpdatedAt.Unix(),
		})
	}
	return mongoUser{
		Username:      u.Username,
		UsernameLower: strings.ToLower(u.Username),
		Email:         u.Email,
		EmailLower:    strings.ToLower(u.Email),
		PasswordHash:  u.PasswordHash,
		Active:        u.Active,
		Roles:         roles,
		CreatedAt:     u.CreatedAt.Unix(),
		UpdatedAt:     u.UpdatedAt.Unix(),
	}
}

func fromMongoUser(mu *mongoUser) *domain.User {
	roles := make([]domain.UserRole, 0, len(mu.Roles))
	for _, ur := range mu.Roles {
		roles = append(roles, domain.UserRole{
			RoleID:     ur.RoleID,
			AssignedAt: unixToTime(ur.AssignedAt),
			UpdatedAt:  unixToTime(ur.UpdatedAt),
		})
	}
	return &domain.User{
		ID:           mu.ID.Hex(),
		Username:     mu.Username,
		Email:        mu.Email,
		PasswordHash: mu.PasswordHash,
		Active:       mu.Active,
		Roles:        roles,
		CreatedAt:    unixToTime(mu.CreatedAt),
		UpdatedAt:    unixToTime(mu.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
