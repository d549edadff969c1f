package auth

import (
	"context"
	"sync"

	"talker/domain/chat"
)

// Gate holds the session of the local user. It implements contract.SessionGate
// and attaches the session token to outgoing gRPC calls.
type Gate struct {
	mu      sync.RWMutex
	session *chat.Session
}

func NewGate() *Gate {
	return &Gate{}
}

// SignIn opens a session from a token issued by the server.
func (g *Gate) SignIn(token string) (chat.Session, error) {
	claims, err := ParseUnverified(token)
	if err != nil {
		return chat.Session{}, err
	}
	session := chat.Session{UserID: claims.UserID, AvatarURL: claims.AvatarURL, Token: token}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.session = &session
	return session, nil
}

func (g *Gate) SignOut() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.session = nil
}

func (g *Gate) Current() (chat.Session, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.session == nil {
		return chat.Session{}, false
	}
	return *g.session, true
}

// GetRequestMetadata implements credentials.PerRPCCredentials.
// Without a session no header is sent and the server refuses the call.
func (g *Gate) GetRequestMetadata(_ context.Context, _ ...string) (map[string]string, error) {
	session, ok := g.Current()
	if !ok {
		return map[string]string{}, nil
	}
	return map[string]string{"authorization": "Bearer " + session.Token}, nil
}

// RequireTransportSecurity implements credentials.PerRPCCredentials.
func (g *Gate) RequireTransportSecurity() bool {
	return false
}
