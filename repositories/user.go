//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	stderrors "errors"
	"time"

	"talker/errors"
	pb "talker/proto/chatlog"

	"github.com/dgraph-io/badger/v4"
)

type IUserRepository interface {
	SaveProfile(profile User) error
	GetProfile(userID string) (User, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

// User is the last known identity of a user who signed in.
type User struct {
	ID        string
	AvatarURL string
	LastSeen  time.Time
}

// SaveProfile overwrites the stored profile of the user.
func (u UserRepository) SaveProfile(profile User) error {
	data := (&pb.UserProfile{
		UserId:    profile.ID,
		AvatarUrl: profile.AvatarURL,
		LastSeen:  profile.LastSeen.UnixNano(),
	}).MarshalWire()

	return u.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("user:"+profile.ID), data)
	})
}

// GetProfile returns errors.ErrUserNotFound when the user never signed in.
func (u UserRepository) GetProfile(userID string) (User, error) {
	var profile pb.UserProfile

	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("user:" + userID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return profile.UnmarshalWire(val)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return User{}, errors.ErrUserNotFound
	}
	if err != nil {
		return User{}, err
	}

	return User{
		ID:        profile.UserId,
		AvatarURL: profile.AvatarUrl,
		LastSeen:  time.Unix(0, profile.LastSeen).UTC(),
	}, nil
}
