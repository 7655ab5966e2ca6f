package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tazhibayda/trade-service/internal/domain"
)

func (s *Store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	cur, err := s.colProducts.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	return decodeProducts(ctx, cur)
}

// ListLatest returns the n most recently created products, newest first.
func (s *Store) ListLatest(ctx context.Context, n int) ([]domain.Product, error) {
	cur, err := s.colProducts.Find(ctx, bson.M{},
		options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetLimit(int64(n)),
	)
	if err != nil {
		return nil, err
	}
	return decodeProducts(ctx, cur)
}

func (s *Store) ListByOwner(ctx context.Context, email string) ([]domain.Product, error) {
	cur, err := s.colProducts.Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, err
	}
	return decodeProducts(ctx, cur)
}

func (s *Store) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	err := s.colProducts.FindOne(ctx, idFilter(id)).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) CreateProduct(ctx context.Context, p *domain.Product) error {
	p.CreatedAt = time.Now().UTC()
	res, err := s.colProducts.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

// UpdateProduct replaces the mutable fields of a matched product and
// returns the updated document.
func (s *Store) UpdateProduct(ctx context.Context, id string, p *domain.Product) (*domain.Product, error) {
	set := bson.M{
		"productName":       p.ProductName,
		"image":             p.Image,
		"price":             p.Price,
		"originCountry":     p.OriginCountry,
		"rating":            p.Rating,
		"availableQuantity": p.AvailableQuantity,
	}
	var out domain.Product
	err := s.colProducts.FindOneAndUpdate(ctx, idFilter(id), bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&out)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	res, err := s.colProducts.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func decodeProducts(ctx context.Context, cur *mongo.Cursor) ([]domain.Product, error) {
	defer cur.Close(ctx)
	out := []domain.Product{}
	for cur.Next(ctx) {
		var p domain.Product
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}
