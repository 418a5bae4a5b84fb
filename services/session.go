package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"taberu_api_ms/domain"

	"github.com/redis/go-redis/v9"
)

var ctx = context.Background()

type ISessionService interface {
	StoreAuthSession(session *domain.Session) error
	GetAuthSessionByToken(token string) (*domain.Session, error)
	DeleteAuthSession(token string) error
}

// SessionService keeps session records in redis keyed by token, which is the
// lookup the verifier path uses. The redis TTL mirrors the credential expiry;
// the middleware still checks the token's own expiry claim.
type SessionService struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionService(rdb *redis.Client, ttl time.Duration) ISessionService {
	return &SessionService{rdb: rdb, ttl: ttl}
}

func (s *SessionService) StoreAuthSession(session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, fmt.Sprintf("authsession:%s", session.Token), data, s.ttl).Err()
}

func (s *SessionService) GetAuthSessionByToken(token string) (*domain.Session, error) {
	val, err := s.rdb.Get(ctx, fmt.Sprintf("authsession:%s", token)).Result()
	if err != nil {
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteAuthSession is idempotent; revoking an absent session is not an error.
func (s *SessionService) DeleteAuthSession(token string) error {
	return s.rdb.Del(ctx, fmt.Sprintf("authsession:%s", token)).Err()
}
