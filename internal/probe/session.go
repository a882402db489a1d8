package probe

import (
	"context"
	"errors"
	"sync"
)

// Session keeps a token for one account and logs in again when it expires.
type Session struct {
	client          *Client
	email, password string

	mu    sync.Mutex
	token string
}

func NewSession(client *Client, email, password string) *Session {
	return &Session{client: client, email: email, password: password}
}

func (s *Session) currentToken(ctx context.Context, refresh bool) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token != "" && !refresh {
		return s.token, nil
	}
	tok, err := s.client.Login(ctx, s.email, s.password)
	if err != nil {
		s.token = ""
		return "", err
	}
	s.token = tok
	return tok, nil
}

// withToken runs fn, retrying once with a fresh token on ErrUnauthorized.
func (s *Session) withToken(ctx context.Context, fn func(token string) error) error {
	tok, err := s.currentToken(ctx, false)
	if err != nil {
		return err
	}
	err = fn(tok)
	if !errors.Is(err, ErrUnauthorized) {
		return err
	}
	if tok, err = s.currentToken(ctx, true); err != nil {
		return err
	}
	return fn(tok)
}

// FirstDevice returns the first device on the account.
func (s *Session) FirstDevice(ctx context.Context) (string, error) {
	var id string
	err := s.withToken(ctx, func(tok string) error {
		ids, err := s.client.Devices(ctx, tok)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return ErrNoDevice
		}
		id = ids[0]
		return nil
	})
	return id, err
}

// Read returns the internal and ambient readings of device id.
func (s *Session) Read(ctx context.Context, id string) (internal, ambient *float64, err error) {
	err = s.withToken(ctx, func(tok string) error {
		r, err := s.client.Device(ctx, tok, id)
		if err != nil {
			return err
		}
		internal, ambient = r.Internal, r.Ambient
		return nil
	})
	return internal, ambient, err
}
