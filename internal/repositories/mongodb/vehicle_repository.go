package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"yatra/internal/models"
	"yatra/internal/repositories/interfaces"
)

const (
	publicListingCacheKey = "vehicles_public_listing"
	vehicleCacheTTL       = 15 * time.Minute
)

type vehicleRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewVehicleRepository(db *mongo.Database, cache CacheService) interfaces.VehicleRepository {
	return &vehicleRepository{
		collection: db.Collection("vehicles"),
		cache:      cache,
	}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	vehicle.ID = primitive.NewObjectID()
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, vehicle)
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	r.invalidateListingCache(ctx)

	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	// Try cache first
	if vehicle := r.getVehicleFromCache(ctx, id.Hex()); vehicle != nil {
		return vehicle, nil
	}

	var vehicle models.Vehicle
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	r.cacheVehicle(ctx, &vehicle)

	return &vehicle, nil
}

func (r *vehicleRepository) GetByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "user_id": ownerID}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return &vehicle, nil
}

func (r *vehicleRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}

	r.invalidateVehicleCache(ctx, id.Hex())
	r.invalidateListingCache(ctx)

	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	if result.DeletedCount == 0 {
		return interfaces.ErrNotFound
	}

	r.invalidateVehicleCache(ctx, id.Hex())
	r.invalidateListingCache(ctx)

	return nil
}

func (r *vehicleRepository) GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Vehicle, error) {
	return r.find(ctx, bson.M{"user_id": ownerID})
}

func (r *vehicleRepository) ListAvailableApproved(ctx context.Context) ([]*models.Vehicle, error) {
	// The public listing is the hottest read; serve it from cache when possible.
	if r.cache != nil {
		var vehicles []*models.Vehicle
		if err := r.cache.Get(ctx, publicListingCacheKey, &vehicles); err == nil {
			return vehicles, nil
		}
	}

	vehicles, err := r.find(ctx, bson.M{"is_approved": true, "is_available": true})
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		r.cache.Set(ctx, publicListingCacheKey, vehicles, vehicleCacheTTL)
	}

	return vehicles, nil
}

func (r *vehicleRepository) ListPending(ctx context.Context) ([]*models.Vehicle, error) {
	return r.find(ctx, bson.M{"is_approved": false})
}

func (r *vehicleRepository) find(ctx context.Context, filter bson.M) ([]*models.Vehicle, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	var vehicles []*models.Vehicle
	for cursor.Next(ctx) {
		var vehicle models.Vehicle
		if err := cursor.Decode(&vehicle); err != nil {
			return nil, fmt.Errorf("failed to decode vehicle: %w", err)
		}
		vehicles = append(vehicles, &vehicle)
	}

	return vehicles, cursor.Err()
}

func (r *vehicleRepository) cacheVehicle(ctx context.Context, vehicle *models.Vehicle) {
	if r.cache == nil {
		return
	}
	r.cache.Set(ctx, "vehicle_"+vehicle.ID.Hex(), vehicle, vehicleCacheTTL)
}

func (r *vehicleRepository) getVehicleFromCache(ctx context.Context, id string) *models.Vehicle {
	if r.cache == nil {
		return nil
	}

	var vehicle models.Vehicle
	if err := r.cache.Get(ctx, "vehicle_"+id, &vehicle); err != nil {
		return nil
	}
	return &vehicle
}

func (r *vehicleRepository) invalidateVehicleCache(ctx context.Context, id string) {
	if r.cache == nil {
		return
	}
	r.cache.Delete(ctx, "vehicle_"+id)
}

func (r *vehicleRepository) invalidateListingCache(ctx context.Context) {
	if r.cache == nil {
		return
	}
	r.cache.Delete(ctx, publicListingCacheKey)
}
