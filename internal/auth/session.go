package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/gracechapel/church-management-backend/config"
	"github.com/gracechapel/church-management-backend/utils"
)

// SessionStore manages the server-side session binding. The cookie carries a
// signed token wrapping a session id; the id→user binding lives in Redis with
// a TTL, so logout and stale-user cleanup are enforced server-side rather
// than by trusting the cookie alone.
type SessionStore struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionStore(cfg *config.Config) *SessionStore {
	return &SessionStore{
		secret: []byte(cfg.SessionSecret),
		ttl:    time.Duration(cfg.SessionTTLHours) * time.Hour,
	}
}

var ErrNoSession = errors.New("no active session")

func sessionKey(sid string) string { return fmt.Sprintf("session:%s", sid) }

func (s *SessionStore) Issue(userID uint) (string, error) {
	sid := uuid.NewString()
	if err := utils.SetToken(sessionKey(sid), fmt.Sprint(userID), s.ttl); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sid":     sid,
		"user_id": userID,
		"exp":     time.Now().Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *SessionStore) sid(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrNoSession
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrNoSession
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrNoSession
	}
	return sid, nil
}

// Resolve returns the user id bound to the token's session. A revoked or
// expired binding resolves to ErrNoSession even when the token itself is
// still within its validity window.
func (s *SessionStore) Resolve(tokenStr string) (uint, error) {
	sid, err := s.sid(tokenStr)
	if err != nil {
		return 0, err
	}

	val, err := utils.GetToken(sessionKey(sid))
	if errors.Is(err, redis.Nil) {
		return 0, ErrNoSession
	}
	if err != nil {
		return 0, err
	}

	var userID uint
	if _, err := fmt.Sscan(val, &userID); err != nil {
		return 0, ErrNoSession
	}
	return userID, nil
}

func (s *SessionStore) Revoke(tokenStr string) error {
	sid, err := s.sid(tokenStr)
	if err != nil {
		return err
	}
	return utils.DeleteToken(sessionKey(sid))
}
