package repositories

import (
	"testing"
	"time"

	"talker/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func Test_Save_And_Get_Profile(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()
	repository := NewUserRepository(db)

	_, err = repository.GetProfile("u1")
	req.ErrorIs(err, errors.ErrUserNotFound)

	at := time.Now().UTC()
	req.NoError(repository.SaveProfile(User{ID: "u1", AvatarURL: "https://a/u1.png", LastSeen: at}))
	req.NoError(repository.SaveProfile(User{ID: "u1", AvatarURL: "https://a/u1-new.png", LastSeen: at.Add(time.Minute)}))

	profile, err := repository.GetProfile("u1")
	req.NoError(err)
	req.Equal("https://a/u1-new.png", profile.AvatarURL)
	req.Equal(at.Add(time.Minute), profile.LastSeen)
}
