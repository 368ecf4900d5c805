package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arzan03/ProductHub/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const productsCollection = "products"

type MongoProductStore struct {
	collection *mongo.Collection
}

func NewMongoProductStore(db *mongo.Database) *MongoProductStore {
	return &MongoProductStore{collection: db.Collection(productsCollection)}
}

func (s *MongoProductStore) Insert(ctx context.Context, product *models.Product) error {
	ts := now(time.Now)
	product.ID = primitive.NewObjectID()
	product.CreatedAt = ts
	product.UpdatedAt = ts

	if _, err := s.collection.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (s *MongoProductStore) FindByID(ctx context.Context, id string) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var product models.Product
	err = s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product %s: %w", id, err)
	}
	return &product, nil
}

func (s *MongoProductStore) UpdateByID(ctx context.Context, id string, in models.ProductInput) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	update := bson.M{"$set": bson.M{
		"name":      in.Name,
		"price":     in.Price,
		"category":  in.Category,
		"company":   in.Company,
		"userId":    in.UserID,
		"updatedAt": now(time.Now),
	}}
	if _, err := s.collection.UpdateByID(ctx, objID, update); err != nil {
		return fmt.Errorf("update product %s: %w", id, err)
	}
	return nil
}

func (s *MongoProductStore) DeleteByID(ctx context.Context, id string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return 0, fmt.Errorf("delete product %s: %w", id, err)
	}
	return result.DeletedCount, nil
}

func (s *MongoProductStore) ListByCreatedDesc(ctx context.Context) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})
	return s.find(ctx, bson.M{}, opts)
}

func (s *MongoProductStore) Search(ctx context.Context, pattern string) ([]models.Product, error) {
	re := primitive.Regex{Pattern: pattern}
	filter := bson.M{"$or": bson.A{
		bson.M{"name": bson.M{"$regex": re}},
		bson.M{"company": bson.M{"$regex": re}},
		bson.M{"category": bson.M{"$regex": re}},
	}}
	return s.find(ctx, filter)
}

func (s *MongoProductStore) find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Product, error) {
	cursor, err := s.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}
