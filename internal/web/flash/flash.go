// Package flash carries one-shot notices across a redirect in a signed cookie.
package flash

import (
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

const (
	cookieName = "newsroom_flash"
	ttl        = 5 * time.Minute
)

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
)

type Message struct {
	Kind Kind   `json:"k"`
	Text string `json:"t"`
}

type Store struct {
	codec  *securecookie.SecureCookie
	secure bool
}

// New returns a store signing its cookie with hashKey. An empty key is
// replaced by a random one, which only loses notices pending across a restart.
func New(secure bool, hashKey []byte) *Store {
	if len(hashKey) == 0 {
		hashKey = securecookie.GenerateRandomKey(32)
	}
	codec := securecookie.New(hashKey, nil).
		MaxAge(int(ttl.Seconds())).
		SetSerializer(securecookie.JSONEncoder{})

	return &Store{codec: codec, secure: secure}
}

// Set stores a message for the next request.
func (s *Store) Set(w http.ResponseWriter, kind Kind, text string) {
	value, err := s.codec.Encode(cookieName, Message{Kind: kind, Text: text})
	if err != nil {
		return
	}

	http.SetCookie(w, s.cookie(value, ttl))
}

// Pop returns the pending message, if any, and clears it. Cookies with a bad
// signature or past their age are dropped.
func (s *Store) Pop(w http.ResponseWriter, r *http.Request) *Message {
	c, err := r.Cookie(cookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	http.SetCookie(w, s.cookie("", 0))

	var m Message
	if err := s.codec.Decode(cookieName, c.Value, &m); err != nil || m.Text == "" {
		return nil
	}

	return &m
}

func (s *Store) cookie(value string, maxAge time.Duration) *http.Cookie {
	c := &http.Cookie{
		Name:     cookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if maxAge > 0 {
		c.MaxAge = int(maxAge.Seconds())
	} else {
		c.MaxAge = -1
	}

	return c
}
