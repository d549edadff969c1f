package services

import (
	stderrors "errors"
	"fmt"
	"time"

	"talker/auth"
	"talker/domain/chat"
	"talker/errors"
	"talker/repositories"
)

type IAuthService interface {
	SignIn(cmd chat.SignInCommand) (Token, error)
}

type AuthService struct {
	userRepository repositories.IUserRepository
	issuer         auth.Issuer
	now            func() time.Time
}

type Token string

func NewAuthService(repo repositories.IUserRepository, issuer auth.Issuer) IAuthService {
	return &AuthService{userRepository: repo, issuer: issuer, now: time.Now}
}

// SignIn trusts the identity handed over by the identity provider and issues a
// session token. Without an avatar, the one of the previous sign-in is kept.
func (s *AuthService) SignIn(cmd chat.SignInCommand) (Token, error) {
	if err := validate.Struct(cmd); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}

	avatarURL := cmd.AvatarURL
	if avatarURL == "" {
		previous, err := s.userRepository.GetProfile(cmd.UserID)
		switch {
		case err == nil:
			avatarURL = previous.AvatarURL
		case !stderrors.Is(err, errors.ErrUserNotFound):
			return "", err
		}
	}

	profile := repositories.User{ID: cmd.UserID, AvatarURL: avatarURL, LastSeen: s.now().UTC()}
	if err := s.userRepository.SaveProfile(profile); err != nil {
		return "", err
	}

	token, err := s.issuer.GenerateToken(cmd.UserID, avatarURL)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	return Token(token), nil
}
