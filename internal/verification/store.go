package verification

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	verifyPrefix  = "verify:"
	otpPrefix     = "reset_otp:"
	revokedPrefix = "revoked_token:"

	VerifyTTL = 24 * time.Hour
	OTPTTL    = 10 * time.Minute
)

// Store keeps the short-lived codes the auth flows need: email
// verification codes, password-reset OTPs, and revoked-token markers.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func sixDigits() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// --------------------------------------------------
// Email verification
// --------------------------------------------------

func (s *Store) IssueVerificationCode(ctx context.Context, email string) (string, error) {
	code, err := sixDigits()
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, verifyPrefix+email, code, VerifyTTL).Err(); err != nil {
		return "", err
	}
	return code, nil
}

// ConsumeVerificationCode checks the code and deletes it on a match.
func (s *Store) ConsumeVerificationCode(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.rdb.Get(ctx, verifyPrefix+email).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if stored != code {
		return false, nil
	}
	return true, s.rdb.Del(ctx, verifyPrefix+email).Err()
}

// --------------------------------------------------
// Password-reset OTP
// --------------------------------------------------

func (s *Store) IssueResetOTP(ctx context.Context, email string) (string, error) {
	code, err := sixDigits()
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, otpPrefix+email, code, OTPTTL).Err(); err != nil {
		return "", err
	}
	return code, nil
}

// CheckResetOTP verifies without consuming, so verify-otp and the reset
// call can both present the same code within the TTL.
func (s *Store) CheckResetOTP(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.rdb.Get(ctx, otpPrefix+email).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stored == code, nil
}

func (s *Store) ConsumeResetOTP(ctx context.Context, email, code string) (bool, error) {
	ok, err := s.CheckResetOTP(ctx, email, code)
	if err != nil || !ok {
		return ok, err
	}
	return true, s.rdb.Del(ctx, otpPrefix+email).Err()
}

// --------------------------------------------------
// Token revocation (logout)
// --------------------------------------------------

func (s *Store) RevokeToken(ctx context.Context, token string, ttl time.Duration) error {
	return s.rdb.Set(ctx, revokedPrefix+token, "1", ttl).Err()
}

func (s *Store) IsTokenRevoked(ctx context.Context, token string) (bool, error) {
	_, err := s.rdb.Get(ctx, revokedPrefix+token).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
