package services

import (
	"fmt"
	"testing"
	"time"

	"talker/auth"
	"talker/domain/chat"
	"talker/errors"
	"talker/mocks"
	"talker/repositories"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthService_SignIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	issuer := auth.NewIssuer("a_test_secret_long_enough_for_hs256", 24*time.Hour)
	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewAuthService(mockRepo, issuer)

	t.Run("should sign in and store the profile", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().
			SaveProfile(gomock.Cond(func(u repositories.User) bool {
				return u.ID == "u1" && u.AvatarURL == "https://example.com/u1.png" && !u.LastSeen.IsZero()
			})).
			Return(nil).
			Times(1)

		token, err := svc.SignIn(chat.SignInCommand{UserID: "u1", AvatarURL: "https://example.com/u1.png"})

		req.NoError(err)
		claims, err := issuer.ValidateToken(string(token))
		req.NoError(err)
		req.Equal("u1", claims.UserID)
		req.Equal("https://example.com/u1.png", claims.AvatarURL)
	})

	t.Run("should keep the previous avatar when none is given", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().GetProfile("u1").
			Return(repositories.User{ID: "u1", AvatarURL: "https://example.com/old.png"}, nil).
			Times(1)
		mockRepo.EXPECT().SaveProfile(gomock.Any()).Return(nil).Times(1)

		token, err := svc.SignIn(chat.SignInCommand{UserID: "u1"})

		req.NoError(err)
		claims, err := issuer.ValidateToken(string(token))
		req.NoError(err)
		req.Equal("https://example.com/old.png", claims.AvatarURL)
	})

	t.Run("should sign in a first-time user without avatar", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().GetProfile("u2").Return(repositories.User{}, errors.ErrUserNotFound).Times(1)
		mockRepo.EXPECT().SaveProfile(gomock.Any()).Return(nil).Times(1)

		token, err := svc.SignIn(chat.SignInCommand{UserID: "u2"})

		req.NoError(err)
		req.NotEmpty(token)
	})

	t.Run("should fail when the user id is missing", func(t *testing.T) {
		req := require.New(t)
		// Repository should NEVER be called
		mockRepo.EXPECT().SaveProfile(gomock.Any()).Times(0)

		token, err := svc.SignIn(chat.SignInCommand{AvatarURL: "https://example.com/u1.png"})

		req.ErrorIs(err, errors.ErrInvalidRequest)
		req.Empty(token)
	})

	t.Run("should fail when the avatar is not an url", func(t *testing.T) {
		req := require.New(t)

		_, err := svc.SignIn(chat.SignInCommand{UserID: "u1", AvatarURL: "not an url"})

		req.ErrorIs(err, errors.ErrInvalidRequest)
	})

	t.Run("should propagate storage failures", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().SaveProfile(gomock.Any()).Return(fmt.Errorf("disk full")).Times(1)

		_, err := svc.SignIn(chat.SignInCommand{UserID: "u1", AvatarURL: "https://example.com/u1.png"})

		req.Error(err)
	})
}
