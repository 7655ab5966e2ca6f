package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tazhibayda/trade-service/internal/domain"
)

func (s *Store) FindUserByUID(ctx context.Context, uid string) (*domain.User, error) {
	var u domain.User
	err := s.colUsers.FindOne(ctx, bson.M{"uid": uid}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// RegisterUser creates the user on first sight and is a read on repeat
// calls. admin is the allowlist verdict for the caller's email: a repeat
// call for an allowlisted email force-corrects the stored role, which is
// the only path that mints an admin. Returns the record and whether it
// already existed.
func (s *Store) RegisterUser(ctx context.Context, u *domain.User, admin bool) (*domain.User, bool, error) {
	existing, err := s.FindUserByUID(ctx, u.UID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		if admin && existing.Role != domain.RoleAdmin {
			_, err := s.colUsers.UpdateOne(ctx,
				bson.M{"uid": u.UID},
				bson.M{"$set": bson.M{"role": domain.RoleAdmin}},
			)
			if err != nil {
				return nil, false, err
			}
			existing.Role = domain.RoleAdmin
		}
		return existing, true, nil
	}

	u.Role = domain.RoleUser
	if admin {
		u.Role = domain.RoleAdmin
	}
	u.CreatedAt = time.Now().UTC()
	res, err := s.colUsers.InsertOne(ctx, u)
	if err != nil {
		if IsDup(err) {
			// lost a concurrent first-registration race; the winner's
			// document is the one to return
			return s.RegisterUser(ctx, u, admin)
		}
		return nil, false, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return u, false, nil
}
