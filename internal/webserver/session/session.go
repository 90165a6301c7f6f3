// Package session keeps per-visitor state in a signed cookie: the invitation
// code carried from an invite link to the registration form, and the queue of
// transient messages shown once on the next rendered page. Being
// cookie-backed, the state is scoped to the visitor making the request and
// never shared between concurrent requests of different visitors.
package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const CookieName = "massinvite"

const (
	KindError   = "error"
	KindSuccess = "success"
)

// Message is a one-shot notice surfaced on the next page render.
type Message struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// Session is the visitor state carried by the cookie.
type Session struct {
	Code     string    `json:"code,omitempty"`
	Messages []Message `json:"messages,omitempty"`
}

type claims struct {
	Session
	jwt.RegisteredClaims
}

// Read returns the session stored in the request's cookie. A missing, expired
// or tampered cookie yields an empty session.
func Read(c *fiber.Ctx, secret []byte) Session {
	cookie := c.Cookies(CookieName)
	if cookie == "" {
		return Session{}
	}

	parsed := claims{}
	token, err := jwt.ParseWithClaims(cookie, &parsed, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return Session{}
	}

	return parsed.Session
}

// Write signs the session and sends it back as a cookie. An empty session
// removes the cookie instead.
func Write(c *fiber.Ctx, secret []byte, sess Session, timeout time.Duration) error {
	if sess.Code == "" && len(sess.Messages) == 0 {
		c.Cookie(&fiber.Cookie{
			Name:     CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HTTPOnly: true,
		})
		return nil
	}

	expiration := time.Now().UTC().Add(timeout)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Session: sess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiration),
		},
	})

	signed, err := token.SignedString(secret)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		Expires:  expiration,
		HTTPOnly: true,
	})
	return nil
}

// Push appends a transient message to the queue, keeping the rest of the
// session as is.
func Push(c *fiber.Ctx, secret []byte, timeout time.Duration, kind, text string) error {
	sess := Read(c, secret)
	sess.Messages = append(sess.Messages, Message{Kind: kind, Text: text})
	return Write(c, secret, sess, timeout)
}

// Pop returns the queued transient messages and clears them, so they are
// displayed exactly once.
func Pop(c *fiber.Ctx, secret []byte, timeout time.Duration) []Message {
	sess := Read(c, secret)
	messages := sess.Messages
	sess.Messages = nil
	if err := Write(c, secret, sess, timeout); err != nil {
		return nil
	}
	return messages
}
