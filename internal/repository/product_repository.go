package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dangsuk1211/Website-banthucung/internal/domain"
)

type mongoProductRepository struct {
	products   *mongo.Collection
	categories *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) ProductRepository {
	return &mongoProductRepository{
		products:   db.Collection("products"),
		categories: db.Collection("categories"),
	}
}

func (m *mongoProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product

	filter := bson.M{"id": id, "is_deleted": false}
	err := m.products.FindOne(ctx, filter).Decode(&product)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &product, nil
}

func (m *mongoProductRepository) ListAll(ctx context.Context) ([]*domain.Product, error) {
	return m.findProducts(ctx, bson.M{"is_deleted": false})
}

func (m *mongoProductRepository) ListByCategory(ctx context.Context, categoryID string) ([]*domain.Product, error) {
	return m.findProducts(ctx, bson.M{"category_id": categoryID, "is_deleted": false})
}

func (m *mongoProductRepository) Search(ctx context.Context, keyword string) ([]*domain.Product, error) {
	filter := bson.M{"is_deleted": false}
	if keyword != "" {
		filter["name"] = primitive.Regex{Pattern: keyword, Options: "i"}
	}
	return m.findProducts(ctx, filter)
}

func (m *mongoProductRepository) Related(ctx context.Context, categoryID, excludeID string, limit int64) ([]*domain.Product, error) {
	filter := bson.M{
		"category_id": categoryID,
		"is_deleted":  false,
		"id":          bson.M{"$ne": excludeID},
	}

	opts := options.Find().SetLimit(limit)
	cursor, err := m.products.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query related products: %w", err)
	}

	return decodeProducts(ctx, cursor)
}

func (m *mongoProductRepository) findProducts(ctx context.Context, filter bson.M) ([]*domain.Product, error) {
	cursor, err := m.products.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	return decodeProducts(ctx, cursor)
}

func decodeProducts(ctx context.Context, cursor *mongo.Cursor) ([]*domain.Product, error) {
	defer cursor.Close(ctx)

	var products []*domain.Product
	for cursor.Next(ctx) {
		var p domain.Product
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, &p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor iteration error: %w", err)
	}

	return products, nil
}

func (m *mongoProductRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	cursor, err := m.categories.Find(ctx, bson.M{"is_deleted": false})
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []*domain.Category
	for cursor.Next(ctx) {
		var c domain.Category
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode category: %w", err)
		}
		categories = append(categories, &c)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor iteration error: %w", err)
	}

	return categories, nil
}
