// Package view decides which screen is shown and wires the chat screen to its
// subscription, message store and composer.
package view

import (
	"context"
	"log/slog"
	"sync"

	"talker/composer"
	"talker/contract"
	"talker/domain/chat"
	"talker/errors"
	"talker/store"
	"talker/subscription"
)

type View int

const (
	SignInView View = iota
	ChatView
	ProfileView
)

func (v View) String() string {
	switch v {
	case ChatView:
		return "chat"
	case ProfileView:
		return "profile"
	default:
		return "sign-in"
	}
}

// SessionGate is the session holder the controller can also sign out of.
type SessionGate interface {
	contract.SessionGate
	SignOut()
}

type Options struct {
	LogID      string
	WindowSize int
}

// chatScreen lives as long as the chat view is shown.
type chatScreen struct {
	session      chat.Session
	subscription *subscription.Subscription
	store        *store.MessageStore
	composer     *composer.Composer
	done         chan struct{}

	mu       sync.Mutex
	rendered []chat.DisplayMessage // last list handed to ShowChat
}

// shown records a list the renderer finished drawing and resolves the pending
// scroll intent against it.
func (s *chatScreen) shown(display []chat.DisplayMessage) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rendered = display
	return s.composer.ResolveScroll(s.rendered)
}

// resolveScroll checks the pending scroll intent against what is on screen.
func (s *chatScreen) resolveScroll() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.composer.ResolveScroll(s.rendered)
}

type Controller struct {
	mu         sync.Mutex
	log        *slog.Logger
	gate       SessionGate
	channel    *subscription.Channel
	orderedLog contract.OrderedLog
	renderer   contract.Renderer
	options    Options

	view   View
	screen *chatScreen
}

func NewController(log *slog.Logger, gate SessionGate, channel *subscription.Channel,
	orderedLog contract.OrderedLog, renderer contract.Renderer, options Options) *Controller {
	if options.WindowSize <= 0 {
		options.WindowSize = chat.WindowSize
	}
	return &Controller{
		log:        log,
		gate:       gate,
		channel:    channel,
		orderedLog: orderedLog,
		renderer:   renderer,
		options:    options,
	}
}

func (c *Controller) Current() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Start shows the chat when a session already exists, the sign-in screen otherwise.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.leaveChat()
	if err := c.enterChat(ctx); err != nil {
		c.showSignIn()
	}
}

// SignedIn is called once the gate holds a session.
func (c *Controller) SignedIn(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.leaveChat()
	return c.enterChat(ctx)
}

func (c *Controller) SignOut() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.leaveChat()
	c.gate.SignOut()
	c.showSignIn()
}

// SelectUser shows the profile card of a message author.
func (c *Controller) SelectUser(profile chat.Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.gate.Current(); !ok {
		c.showSignIn()
		return
	}
	c.leaveChat()
	c.view = ProfileView
	c.renderer.ShowProfile(profile)
}

// GoBack returns from the profile card to the chat.
func (c *Controller) GoBack(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.view != ProfileView {
		return
	}
	if err := c.enterChat(ctx); err != nil {
		c.showSignIn()
	}
}

// Composer returns the composer of the chat view, nil on other views.
func (c *Controller) Composer() *composer.Composer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.screen == nil {
		return nil
	}
	return c.screen.composer
}

func (c *Controller) UpdateDraft(text string) {
	if comp := c.Composer(); comp != nil {
		comp.UpdateDraft(text)
	}
}

// Submit sends the draft. When the acknowledged message was already drawn
// before the append returned, the view scrolls right away.
func (c *Controller) Submit(ctx context.Context) (chat.Ack, error) {
	c.mu.Lock()
	screen := c.screen
	c.mu.Unlock()
	if screen == nil {
		return chat.Ack{}, errors.ErrNoSession
	}

	ack, err := screen.composer.Submit(ctx)
	if err != nil {
		return ack, err
	}
	if screen.resolveScroll() {
		c.renderer.ScrollToLatest()
	}
	return ack, nil
}

// Close leaves the chat view, if shown, and releases its subscription.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.leaveChat()
}

func (c *Controller) enterChat(ctx context.Context) error {
	session, ok := c.gate.Current()
	if !ok {
		return errors.ErrNoSession
	}
	messageStore, err := store.NewMessageStore(session)
	if err != nil {
		return err
	}
	screen := &chatScreen{
		session:      session,
		subscription: c.channel.Open(ctx, c.options.LogID, chat.OrderByCreatedAt, c.options.WindowSize),
		store:        messageStore,
		composer:     composer.NewComposer(c.log, c.orderedLog, c.gate, c.options.LogID),
		done:         make(chan struct{}),
	}
	go c.render(screen)
	c.screen = screen
	c.view = ChatView
	c.log.Debug("Chat view entered", "user_id", session.UserID, "log_id", c.options.LogID)
	return nil
}

// render runs until the subscription is closed.
func (c *Controller) render(screen *chatScreen) {
	defer close(screen.done)
	for window := range screen.subscription.Updates() {
		display, ok := screen.store.Apply(window)
		if !ok {
			continue
		}
		c.renderer.ShowChat(display)
		if screen.shown(display) {
			c.renderer.ScrollToLatest()
		}
	}
}

// leaveChat tears the chat screen down. Once it returns nothing of the old
// screen reaches the renderer.
func (c *Controller) leaveChat() {
	if c.screen == nil {
		return
	}
	screen := c.screen
	c.screen = nil
	screen.subscription.Close()
	screen.store.Detach()
	screen.composer.Close()
	<-screen.done
	c.log.Debug("Chat view left", "user_id", screen.session.UserID)
}

func (c *Controller) showSignIn() {
	c.view = SignInView
	c.renderer.ShowSignIn()
}
