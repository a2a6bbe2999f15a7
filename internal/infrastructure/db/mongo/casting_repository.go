package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/starcast/casting-api/internal/core/domain"
)

const castingCollection = "casting_calls"

// MongoCastingRepository persists casting calls with their registrations
// (including inline media) embedded in the same document.
type MongoCastingRepository struct {
	coll *mongo.Collection
}

func NewCastingRepository(db *mongo.Database) *MongoCastingRepository {
	return &MongoCastingRepository{coll: db.Collection(castingCollection)}
}

type mongoRegistration struct {
	UserID       string    `bson:"user_id"`
	PhoneNumber  string    `bson:"phone_number"`
	Photos       []string  `bson:"photos,omitempty"`
	Videos       []string  `bson:"videos,omitempty"`
	RegisteredAt time.Time `bson:"registered_at"`
}

type mongoCasting struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty"`
	Title         string              `bson:"title"`
	Description   string              `bson:"description"`
	Category      string              `bson:"category"`
	Location      string              `bson:"location"`
	Date          time.Time           `bson:"date"`
	Images        []string            `bson:"images,omitempty"`
	CreatedBy     string              `bson:"created_by"`
	Registrations []mongoRegistration `bson:"registrations"`
	CreatedAt     time.Time           `bson:"created_at"`
	UpdatedAt     time.Time           `bson:"updated_at"`
}

func toCastingDomain(mc *mongoCasting) *domain.CastingCall {
	regs := make([]domain.Registration, 0, len(mc.Registrations))
	for _, r := range mc.Registrations {
		regs = append(regs, domain.Registration{
			UserID:       r.UserID,
			PhoneNumber:  r.PhoneNumber,
			Photos:       r.Photos,
			Videos:       r.Videos,
			RegisteredAt: r.RegisteredAt,
		})
	}
	return &domain.CastingCall{
		ID:            mc.ID.Hex(),
		Title:         mc.Title,
		Description:   mc.Description,
		Category:      mc.Category,
		Location:      mc.Location,
		Date:          mc.Date,
		Images:        mc.Images,
		CreatedBy:     mc.CreatedBy,
		Registrations: regs,
		CreatedAt:     mc.CreatedAt,
		UpdatedAt:     mc.UpdatedAt,
	}
}

func (r *MongoCastingRepository) Create(ctx context.Context, call *domain.CastingCall) (*domain.CastingCall, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCasting{
		Title:         call.Title,
		Description:   call.Description,
		Category:      call.Category,
		Location:      call.Location,
		Date:          call.Date,
		Images:        call.Images,
		CreatedBy:     call.CreatedBy,
		Registrations: []mongoRegistration{},
		CreatedAt:     call.CreatedAt,
		UpdatedAt:     call.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert casting call: %w", err)
	}

	created := *call
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoCastingRepository) FindByID(ctx context.Context, id string) (*domain.CastingCall, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCastingNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoCasting
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCastingNotFound
		}
		return nil, fmt.Errorf("find casting call: %w", err)
	}
	return toCastingDomain(&mc), nil
}

func (r *MongoCastingRepository) List(ctx context.Context) ([]*domain.CastingCall, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list casting calls: %w", err)
	}
	defer cur.Close(ctx)

	var calls []*domain.CastingCall
	for cur.Next(ctx) {
		var mc mongoCasting
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode casting call: %w", err)
		}
		calls = append(calls, toCastingDomain(&mc))
	}
	return calls, cur.Err()
}

// Update rewrites the editable fields; registrations are only ever touched
// through AddRegistration.
func (r *MongoCastingRepository) Update(ctx context.Context, call *domain.CastingCall) error {
	oid, err := primitive.ObjectIDFromHex(call.ID)
	if err != nil {
		return domain.ErrCastingNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":       call.Title,
		"description": call.Description,
		"category":    call.Category,
		"location":    call.Location,
		"date":        call.Date,
		"images":      call.Images,
		"updated_at":  call.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update casting call: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCastingNotFound
	}
	return nil
}

func (r *MongoCastingRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCastingNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete casting call: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCastingNotFound
	}
	return nil
}

// AddRegistration appends reg in one guarded write: the filter excludes
// documents already holding a registration by this user, so two concurrent
// submissions cannot both land.
func (r *MongoCastingRepository) AddRegistration(ctx context.Context, castingID string, reg domain.Registration) error {
	oid, err := primitive.ObjectIDFromHex(castingID)
	if err != nil {
		return domain.ErrCastingNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"_id":                   oid,
		"registrations.user_id": bson.M{"$ne": reg.UserID},
	}
	update := bson.M{
		"$push": bson.M{"registrations": mongoRegistration{
			UserID:       reg.UserID,
			PhoneNumber:  reg.PhoneNumber,
			Photos:       reg.Photos,
			Videos:       reg.Videos,
			RegisteredAt: reg.RegisteredAt,
		}},
		"$set": bson.M{"updated_at": reg.RegisteredAt},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("add registration: %w", err)
	}
	if res.MatchedCount == 0 {
		// The call either vanished or already holds this user; the caller
		// verified existence just before, so report the duplicate.
		return domain.ErrAlreadyRegistered
	}
	return nil
}

func (r *MongoCastingRepository) ListByRegisteredUser(ctx context.Context, userID string) ([]*domain.CastingCall, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"registrations.user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer cur.Close(ctx)

	var calls []*domain.CastingCall
	for cur.Next(ctx) {
		var mc mongoCasting
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode casting call: %w", err)
		}
		calls = append(calls, toCastingDomain(&mc))
	}
	return calls, cur.Err()
}

// EnsureIndexes creates the lookup indexes for registrations and posting
// accounts.
func (r *MongoCastingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "registrations.user_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
