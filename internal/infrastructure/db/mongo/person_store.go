package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hrsuite/personnel-system/internal/core/domain"
)

const (
	personCollection   = "persons"
	employeeCollection = "employees"
	clientCollection   = "clients"
)

// PersonStore implements the read-only person lookups behind ownership
// checks. Absence is a normal outcome: a nil person or empty person id, not
// an error.
type PersonStore struct {
	persons   *mongo.Collection
	employees *mongo.Collection
	clients   *mongo.Collection
}

func NewPersonStore(db *mongo.Database) *PersonStore {
	return &PersonStore{
		persons:   db.Collection(personCollection),
		employees: db.Collection(employeeCollection),
		clients:   db.Collection(clientCollection),
	}
}

type mongoPerson struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"first_name"`
	LastName  string             `bson:"last_name"`
	UserID    string             `bson:"user_id,omitempty"`
}

func (r *PersonStore) FindByUserID(ctx context.Context, userID string) (*domain.Person, error) {
	return r.findPerson(ctx, bson.M{"user_id": userID})
}

func (r *PersonStore) FindByID(ctx context.Context, id string) (*domain.Person, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findPerson(ctx, bson.M{"_id": oid})
}

func (r *PersonStore) PersonIDForEmployee(ctx context.Context, employeeID string) (string, error) {
	return r.linkedPersonID(ctx, r.employees, employeeID)
}

func (r *PersonStore) PersonIDForClient(ctx context.Context, clientID string) (string, error) {
	return r.linkedPersonID(ctx, r.clients, clientID)
}

func (r *PersonStore) findPerson(ctx context.Context, filter bson.M) (*domain.Person, error) {
	var mp mongoPerson
	if err := r.persons.FindOne(ctx, filter).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find person: %w", err)
	}
	return &domain.Person{
		ID:        mp.ID.Hex(),
		FirstName: mp.FirstName,
		LastName:  mp.LastName,
		UserID:    mp.UserID,
	}, nil
}

func (r *PersonStore) linkedPersonID(ctx context.Context, coll *mongo.Collection, id string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", nil
	}

	var doc struct {
		PersonID string `bson:"person_id"`
	}
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return "", nil
		}
		return "", fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	return doc.PersonID, nil
}
