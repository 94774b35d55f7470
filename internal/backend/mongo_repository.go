package backend

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository implements Repository using MongoDB.
type MongoRepository struct {
	categories *mongo.Collection
	products   *mongo.Collection
}

// NewMongoRepository creates a MongoDB-backed catalog repository.
func NewMongoRepository(db *mongo.Database) Repository {
	return &MongoRepository{
		categories: db.Collection("categories"),
		products:   db.Collection("products"),
	}
}

func (r *MongoRepository) ListCategories(ctx context.Context) ([]CategoryDoc, error) {
	cursor, err := r.categories.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []CategoryDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return docs, nil
}

func (r *MongoRepository) InsertCategory(ctx context.Context, doc CategoryDoc) (CategoryDoc, error) {
	if doc.ID == "" {
		doc.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := r.categories.InsertOne(ctx, doc); err != nil {
		return CategoryDoc{}, fmt.Errorf("failed to insert category: %w", err)
	}
	return doc, nil
}

func (r *MongoRepository) UpdateCategory(ctx context.Context, id string, patch CategoryPatch) (*CategoryDoc, error) {
	set := bson.M{"updatedAt": time.Now()}
	setIf(set, "name", patch.Name)
	setIf(set, "slug", patch.Slug)
	setIf(set, "image", patch.Image)
	setIf(set, "mainHeading", patch.MainHeading)
	setIf(set, "content", patch.Content)
	setIf(set, "metaTitle", patch.MetaTitle)
	setIf(set, "metaDescription", patch.MetaDescription)
	setIf(set, "keywords", patch.Keywords)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc CategoryDoc
	err := r.categories.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return &doc, nil
}

func (r *MongoRepository) DeleteCategory(ctx context.Context, id string) (bool, error) {
	res, err := r.categories.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoRepository) ListProducts(ctx context.Context) ([]ProductDoc, error) {
	cursor, err := r.products.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []ProductDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return docs, nil
}

func (r *MongoRepository) InsertProduct(ctx context.Context, doc ProductDoc) (ProductDoc, error) {
	if doc.ID == "" {
		doc.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := r.products.InsertOne(ctx, doc); err != nil {
		return ProductDoc{}, fmt.Errorf("failed to insert product: %w", err)
	}
	return doc, nil
}

func (r *MongoRepository) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*ProductDoc, error) {
	set := bson.M{"updatedAt": time.Now()}
	setIf(set, "name", patch.Name)
	setIf(set, "category", patch.Category)
	setIf(set, "slug", patch.Slug)
	setIf(set, "sku", patch.SKU)
	setIf(set, "description", patch.Description)
	setIf(set, "price", patch.Price)
	setIf(set, "previousPrice", patch.PreviousPrice)
	setIf(set, "stock", patch.Stock)
	setIf(set, "featured", patch.Featured)
	setIf(set, "image1", patch.Image1)
	setIf(set, "image2", patch.Image2)
	setIf(set, "image3", patch.Image3)
	setIf(set, "image4", patch.Image4)
	setIf(set, "metaTitle", patch.MetaTitle)
	setIf(set, "metaDescription", patch.MetaDescription)
	setIf(set, "keywords", patch.Keywords)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc ProductDoc
	err := r.products.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &doc, nil
}

func (r *MongoRepository) DeleteProduct(ctx context.Context, id string) (bool, error) {
	res, err := r.products.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete product: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func setIf[T any](set bson.M, key string, v *T) {
	if v != nil {
		set[key] = *v
	}
}
