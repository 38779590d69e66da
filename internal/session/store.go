package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"saporis/internal/wizard"

	"github.com/redis/go-redis/v9"
)

// OAuthHandoff is the one-shot payload bridging a verified OAuth identity into
// a prefilled signup wizard. It is consumed at most once.
type OAuthHandoff struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Store holds the transient signup state that the browser SPA used to keep in
// ambient localStorage: in-progress wizards and one-shot OAuth handoffs. It is
// injected explicitly, created at app start and cleared per entry on
// completion or expiry.
type Store interface {
	SaveSignup(ctx context.Context, id string, w *wizard.Wizard) error
	GetSignup(ctx context.Context, id string) (*wizard.Wizard, bool, error)
	DeleteSignup(ctx context.Context, id string) error
	PutOAuthHandoff(ctx context.Context, state string, handoff *OAuthHandoff) error
	TakeOAuthHandoff(ctx context.Context, state string) (*OAuthHandoff, bool, error)
	Close() error
}

// Signup sessions outlive a single page load but not an abandoned evening.
const signupTTL = 2 * time.Hour

// Handoffs are consumed immediately after the OAuth redirect.
const handoffTTL = 10 * time.Minute

type redisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis using REDIS_URL and verifies the connection
// with a ping.
func NewRedisStore() (Store, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisStore{client: client}, nil
}

func (s *redisStore) Close() error {
	return s.client.Close()
}

func signupKey(id string) string {
	return fmt.Sprintf("signup:%s", id)
}

func handoffKey(state string) string {
	return fmt.Sprintf("oauth_handoff:%s", state)
}

func (s *redisStore) SaveSignup(ctx context.Context, id string, w *wizard.Wizard) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("failed to marshal signup session: %w", err)
	}
	if err := s.client.Set(ctx, signupKey(id), data, signupTTL).Err(); err != nil {
		return fmt.Errorf("failed to store signup session: %w", err)
	}
	return nil
}

func (s *redisStore) GetSignup(ctx context.Context, id string) (*wizard.Wizard, bool, error) {
	data, err := s.client.Get(ctx, signupKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get signup session: %w", err)
	}

	var w wizard.Wizard
	if err := json.Unmarshal([]byte(data), &w); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal signup session: %w", err)
	}
	return &w, true, nil
}

func (s *redisStore) DeleteSignup(ctx context.Context, id string) error {
	return s.client.Del(ctx, signupKey(id)).Err()
}

func (s *redisStore) PutOAuthHandoff(ctx context.Context, state string, handoff *OAuthHandoff) error {
	data, err := json.Marshal(handoff)
	if err != nil {
		return fmt.Errorf("failed to marshal handoff: %w", err)
	}
	if err := s.client.Set(ctx, handoffKey(state), data, handoffTTL).Err(); err != nil {
		return fmt.Errorf("failed to store handoff: %w", err)
	}
	return nil
}

// TakeOAuthHandoff consumes the handoff atomically so a state value cannot be
// replayed into a second signup.
func (s *redisStore) TakeOAuthHandoff(ctx context.Context, state string) (*OAuthHandoff, bool, error) {
	data, err := s.client.GetDel(ctx, handoffKey(state)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to take handoff: %w", err)
	}

	var handoff OAuthHandoff
	if err := json.Unmarshal([]byte(data), &handoff); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal handoff: %w", err)
	}
	return &handoff, true, nil
}
