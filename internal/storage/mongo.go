package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"restaurant-catalog/internal/domain"
	"restaurant-catalog/internal/service"
)

var (
	_ service.KitchenTypeRepository = (*KitchenTypeRepo)(nil)
	_ service.RestaurantRepository  = (*RestaurantRepo)(nil)
	_ service.UserTypeRepository    = (*UserTypeRepo)(nil)
	_ service.UserRepository        = (*UserRepo)(nil)
)

const (
	collKitchenTypes = "kitchen_types"
	collRestaurants  = "restaurants"
	collUserTypes    = "user_types"
	collUsers        = "users"
)

// EnsureIndexes creates the indexes the invariants lean on: unique lookup
// names, the nested menu item id, and the embedded kitchen type id used by
// the delete-in-use check.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	specs := []struct {
		coll  string
		model mongo.IndexModel
	}{
		{collKitchenTypes, mongo.IndexModel{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique}},
		{collRestaurants, mongo.IndexModel{Keys: bson.D{{Key: "menu.items.id", Value: 1}}}},
		{collRestaurants, mongo.IndexModel{Keys: bson.D{{Key: "kitchenType.id", Value: 1}}}},
		{collUserTypes, mongo.IndexModel{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique}},
		{collUsers, mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique}},
	}

	for _, spec := range specs {
		if _, err := db.Collection(spec.coll).Indexes().CreateOne(ctx, spec.model); err != nil {
			return fmt.Errorf("create index on %s: %w", spec.coll, err)
		}
	}
	return nil
}

type KitchenTypeRepo struct {
	coll *mongo.Collection
}

func NewKitchenTypeRepo(db *mongo.Database) *KitchenTypeRepo {
	return &KitchenTypeRepo{coll: db.Collection(collKitchenTypes)}
}

func (r *KitchenTypeRepo) Insert(ctx context.Context, kt *domain.KitchenType) error {
	_, err := r.coll.InsertOne(ctx, kt)
	return err
}

func (r *KitchenTypeRepo) FindAll(ctx context.Context) ([]domain.KitchenType, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var types []domain.KitchenType
	if err := cursor.All(ctx, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (r *KitchenTypeRepo) FindByID(ctx context.Context, id string) (*domain.KitchenType, error) {
	return decodeOne[domain.KitchenType](ctx, r.coll, bson.M{"_id": id})
}

func (r *KitchenTypeRepo) FindByName(ctx context.Context, foldedName string) (*domain.KitchenType, error) {
	return decodeOne[domain.KitchenType](ctx, r.coll, bson.M{"name": foldedName})
}

func (r *KitchenTypeRepo) Replace(ctx context.Context, kt *domain.KitchenType) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": kt.ID}, kt)
	return err
}

func (r *KitchenTypeRepo) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

type RestaurantRepo struct {
	coll *mongo.Collection
}

func NewRestaurantRepo(db *mongo.Database) *RestaurantRepo {
	return &RestaurantRepo{coll: db.Collection(collRestaurants)}
}

func (r *RestaurantRepo) Insert(ctx context.Context, restaurant *domain.Restaurant) error {
	_, err := r.coll.InsertOne(ctx, restaurant)
	return err
}

// Replace writes the whole aggregate; the store applies it atomically.
func (r *RestaurantRepo) Replace(ctx context.Context, restaurant *domain.Restaurant) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": restaurant.ID}, restaurant)
	return err
}

func (r *RestaurantRepo) FindByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	return decodeOne[domain.Restaurant](ctx, r.coll, bson.M{"_id": id})
}

func (r *RestaurantRepo) FindAll(ctx context.Context) ([]domain.Restaurant, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var restaurants []domain.Restaurant
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *RestaurantRepo) FindAllBasic(ctx context.Context, activeOnly bool) ([]domain.RestaurantBasic, error) {
	filter := bson.M{}
	if activeOnly {
		filter["isActive"] = true
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetProjection(bson.M{"menu": 0}))
	if err != nil {
		return nil, err
	}
	var restaurants []domain.RestaurantBasic
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

// FindByMenuItemID answers the reverse lookup "which restaurant owns item
// X" with one query on the indexed nested path.
func (r *RestaurantRepo) FindByMenuItemID(ctx context.Context, itemID string) (*domain.Restaurant, error) {
	return decodeOne[domain.Restaurant](ctx, r.coll, bson.M{"menu.items.id": itemID})
}

func (r *RestaurantRepo) CountByKitchenTypeID(ctx context.Context, kitchenTypeID string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"kitchenType.id": kitchenTypeID})
}

func (r *RestaurantRepo) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

type UserTypeRepo struct {
	coll *mongo.Collection
}

func NewUserTypeRepo(db *mongo.Database) *UserTypeRepo {
	return &UserTypeRepo{coll: db.Collection(collUserTypes)}
}

func (r *UserTypeRepo) Insert(ctx context.Context, ut *domain.UserType) error {
	_, err := r.coll.InsertOne(ctx, ut)
	return err
}

func (r *UserTypeRepo) FindAll(ctx context.Context) ([]domain.UserType, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var types []domain.UserType
	if err := cursor.All(ctx, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (r *UserTypeRepo) FindByID(ctx context.Context, id string) (*domain.UserType, error) {
	return decodeOne[domain.UserType](ctx, r.coll, bson.M{"_id": id})
}

func (r *UserTypeRepo) FindByName(ctx context.Context, foldedName string) (*domain.UserType, error) {
	return decodeOne[domain.UserType](ctx, r.coll, bson.M{"name": foldedName})
}

func (r *UserTypeRepo) Replace(ctx context.Context, ut *domain.UserType) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": ut.ID}, ut)
	return err
}

func (r *UserTypeRepo) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

type UserRepo struct {
	coll *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{coll: db.Collection(collUsers)}
}

func (r *UserRepo) Insert(ctx context.Context, u *domain.User) error {
	_, err := r.coll.InsertOne(ctx, u)
	return err
}

func (r *UserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var users []domain.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return decodeOne[domain.User](ctx, r.coll, bson.M{"_id": id})
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return decodeOne[domain.User](ctx, r.coll, bson.M{"email": email})
}

func (r *UserRepo) Replace(ctx context.Context, u *domain.User) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	return err
}

func (r *UserRepo) CountByUserTypeID(ctx context.Context, userTypeID string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"userType.id": userTypeID})
}

func (r *UserRepo) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// decodeOne maps the driver's no-documents sentinel to (nil, nil); the
// services own the not-found semantics.
func decodeOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) (*T, error) {
	var out T
	err := coll.FindOne(ctx, filter).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}
