package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/tazhibayda/trade-service/internal/domain"
	"github.com/tazhibayda/trade-service/internal/log"
)

// ImportResult is what the import workflow hands back to the caller.
type ImportResult struct {
	ImportedQuantity  int `json:"importedQuantity"`
	AvailableQuantity int `json:"availableQuantity"`
}

// ImportProduct transfers stock from a product into a user's import
// history. The transfer is clamped to the current stock; the decrement
// is guarded (`availableQuantity >= transfer`) so concurrent importers
// cannot drive stock negative regardless of what the pre-read saw.
//
// Both writes run inside a session transaction when the server supports
// multi-document transactions (replica set / mongos). On a standalone
// server the transaction start fails and we fall back to sequential
// writes with a compensating restock if the history append fails.
func (s *Store) ImportProduct(ctx context.Context, productID, userID string, quantity int) (*ImportResult, error) {
	p, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	transfer := quantity
	if p.AvailableQuantity < transfer {
		transfer = p.AvailableQuantity
	}
	if transfer <= 0 {
		return nil, ErrOutOfStock
	}

	var res *ImportResult
	txnErr := s.Client.UseSession(ctx, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		res, err = s.importOnce(sc, productID, userID, transfer)
		if err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
	if txnErr == nil {
		return res, nil
	}
	if txnErr == ErrOutOfStock || txnErr == ErrNotFound {
		return nil, txnErr
	}
	if !transactionsUnsupported(txnErr) {
		// a transient commit failure may have applied; re-running the
		// writes here could decrement twice, so surface the error
		return nil, txnErr
	}

	// Standalone deployments reject transactions outright; retry the
	// two writes without one, restocking on a failed history append so
	// no decrement is left orphaned.
	log.L().Warn("import transaction unavailable, using compensating writes",
		zap.String("product_id", productID), zap.Error(txnErr))

	res, err = s.importOnce(ctx, productID, userID, transfer)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// transactionsUnsupported matches the IllegalOperation a standalone
// mongod raises on transaction start ("Transaction numbers are only
// allowed on a replica set member or mongos"). Only that error makes
// the non-transactional fallback safe: the transaction never began, so
// nothing can have applied.
func transactionsUnsupported(err error) bool {
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 20 {
		return strings.Contains(ce.Message, "Transaction numbers")
	}
	return strings.Contains(err.Error(), "Transaction numbers are only allowed")
}

// importOnce performs the guarded decrement followed by the history
// append. Outside a transaction the append failure triggers a restock.
func (s *Store) importOnce(ctx context.Context, productID, userID string, transfer int) (*ImportResult, error) {
	filter := idFilter(productID)
	filter["availableQuantity"] = bson.M{"$gte": transfer}

	var updated domain.Product
	err := s.colProducts.FindOneAndUpdate(ctx,
		filter,
		bson.M{"$inc": bson.M{"availableQuantity": -transfer}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		// raced with another importer and lost
		return nil, ErrOutOfStock
	}
	if err != nil {
		return nil, err
	}

	rec := domain.ImportRecord{
		ProductID:        productID,
		ImportedQuantity: transfer,
		Date:             time.Now().UTC(),
	}
	_, err = s.colUsers.UpdateOne(ctx,
		bson.M{"uid": userID},
		bson.M{
			"$setOnInsert": bson.M{"uid": userID, "role": domain.RoleUser, "createdAt": rec.Date},
			"$push":        bson.M{"imports": rec},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		if _, sessional := ctx.(mongo.SessionContext); !sessional {
			if _, rerr := s.colProducts.UpdateOne(ctx, idFilter(productID),
				bson.M{"$inc": bson.M{"availableQuantity": transfer}}); rerr != nil {
				log.L().Error("restock after failed history append",
					zap.String("product_id", productID), zap.Error(rerr))
			}
		}
		return nil, err
	}

	return &ImportResult{
		ImportedQuantity:  transfer,
		AvailableQuantity: updated.AvailableQuantity,
	}, nil
}

// ListImports resolves a user's import records against the products
// collection. Records whose product has since been deleted are dropped.
func (s *Store) ListImports(ctx context.Context, userID string) ([]domain.ImportedProduct, error) {
	u, err := s.FindUserByUID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := []domain.ImportedProduct{}
	if u == nil {
		return out, nil
	}
	for _, rec := range u.Imports {
		if rec.ProductID == "" {
			continue
		}
		p, err := s.GetProduct(ctx, rec.ProductID)
		if err == ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, domain.ImportedProduct{
			Product:          *p,
			ImportedQuantity: rec.ImportedQuantity,
			Date:             rec.Date,
		})
	}
	return out, nil
}

// RemoveImport pulls every record for productID out of the user's
// import list. Removing an absent record is a no-op, not an error.
func (s *Store) RemoveImport(ctx context.Context, userID, productID string) error {
	_, err := s.colUsers.UpdateOne(ctx,
		bson.M{"uid": userID},
		bson.M{"$pull": bson.M{"imports": bson.M{"productId": productID}}},
	)
	return err
}
