package verification_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharpfade/barbershop-api/internal/verification"
)

func TestConsumeVerificationCode(t *testing.T) {
	ctx := context.Background()

	t.Run("matching code is consumed", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := verification.NewStore(rdb)

		mock.ExpectGet("verify:joe@example.com").SetVal("123456")
		mock.ExpectDel("verify:joe@example.com").SetVal(1)

		ok, err := store.ConsumeVerificationCode(ctx, "joe@example.com", "123456")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wrong code is not consumed", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := verification.NewStore(rdb)

		mock.ExpectGet("verify:joe@example.com").SetVal("123456")

		ok, err := store.ConsumeVerificationCode(ctx, "joe@example.com", "000000")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing code", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := verification.NewStore(rdb)

		mock.ExpectGet("verify:joe@example.com").RedisNil()

		ok, err := store.ConsumeVerificationCode(ctx, "joe@example.com", "123456")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestResetOTP(t *testing.T) {
	ctx := context.Background()

	t.Run("check does not consume", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := verification.NewStore(rdb)

		mock.ExpectGet("reset_otp:joe@example.com").SetVal("654321")

		ok, err := store.CheckResetOTP(ctx, "joe@example.com", "654321")
		require.NoError(t, err)
		assert.True(t, ok)
		// No Del expected; the code survives for the reset call.
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("consume deletes on a match", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := verification.NewStore(rdb)

		mock.ExpectGet("reset_otp:joe@example.com").SetVal("654321")
		mock.ExpectDel("reset_otp:joe@example.com").SetVal(1)

		ok, err := store.ConsumeResetOTP(ctx, "joe@example.com", "654321")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("consume leaves a mismatched code alone", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := verification.NewStore(rdb)

		mock.ExpectGet("reset_otp:joe@example.com").SetVal("654321")

		ok, err := store.ConsumeResetOTP(ctx, "joe@example.com", "111111")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("expired code", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := verification.NewStore(rdb)

		mock.ExpectGet("reset_otp:joe@example.com").RedisNil()

		ok, err := store.CheckResetOTP(ctx, "joe@example.com", "654321")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestTokenRevocation(t *testing.T) {
	ctx := context.Background()

	t.Run("revoke marks the token for its remaining lifetime", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := verification.NewStore(rdb)

		mock.ExpectSet("revoked_token:abc.def.ghi", "1", 2*time.Hour).SetVal("OK")

		require.NoError(t, store.RevokeToken(ctx, "abc.def.ghi", 2*time.Hour))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("revoked token is reported", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := verification.NewStore(rdb)

		mock.ExpectGet("revoked_token:abc.def.ghi").SetVal("1")

		revoked, err := store.IsTokenRevoked(ctx, "abc.def.ghi")
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("unknown token is not revoked", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := verification.NewStore(rdb)

		mock.ExpectGet("revoked_token:abc.def.ghi").RedisNil()

		revoked, err := store.IsTokenRevoked(ctx, "abc.def.ghi")
		require.NoError(t, err)
		assert.False(t, revoked)
	})
}
