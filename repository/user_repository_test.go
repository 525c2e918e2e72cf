package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wagerbot/repository/testutil"
)

func TestUserRepository_GetByDiscordID(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	t.Run("user not found", func(t *testing.T) {
		user, err := repo.GetByDiscordID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("user found", func(t *testing.T) {
		testUser := testutil.CreateTestUser(123456, "testuser")
		createdUser, err := repo.Create(ctx, testUser.DiscordID, testUser.Username, testUser.Wallet, testUser.WalletLimit)
		require.NoError(t, err)

		user, err := repo.GetByDiscordID(ctx, 123456)
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.Equal(t, testUser.DiscordID, user.DiscordID)
		assert.Equal(t, testUser.Username, user.Username)
		assert.Equal(t, testUser.Wallet, user.Wallet)
		assert.Equal(t, testUser.WalletLimit, user.WalletLimit)
		assert.Equal(t, createdUser.CreatedAt, user.CreatedAt)
	})
}

func TestUserRepository_Create(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	t.Run("successful creation", func(t *testing.T) {
		user, err := repo.Create(ctx, 123456, "testuser", 500, 50000)
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.Equal(t, int64(500), user.Wallet)
		assert.Equal(t, int64(50000), user.WalletLimit)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("duplicate discord ID returns nil", func(t *testing.T) {
		_, err := repo.Create(ctx, 789012, "first", 500, 50000)
		require.NoError(t, err)

		user, err := repo.Create(ctx, 789012, "second", 9999, 50000)
		require.NoError(t, err)
		assert.Nil(t, user)

		existing, err := repo.GetByDiscordID(ctx, 789012)
		require.NoError(t, err)
		assert.Equal(t, "first", existing.Username)
		assert.Equal(t, int64(500), existing.Wallet)
	})
}

func TestUserRepository_AdjustBalance(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	_, err := repo.Create(ctx, 555, "adjuster", 100, 50000)
	require.NoError(t, err)

	t.Run("credit", func(t *testing.T) {
		user, err := repo.AdjustBalance(ctx, 555, 400)
		require.NoError(t, err)
		assert.Equal(t, int64(500), user.Wallet)
	})

	t.Run("debit to zero", func(t *testing.T) {
		user, err := repo.AdjustBalance(ctx, 555, -500)
		require.NoError(t, err)
		assert.Equal(t, int64(0), user.Wallet)
	})

	t.Run("overdraw refused", func(t *testing.T) {
		_, err := repo.AdjustBalance(ctx, 555, -1)
		assert.ErrorContains(t, err, "insufficient balance")

		user, err := repo.GetByDiscordID(ctx, 555)
		require.NoError(t, err)
		assert.Equal(t, int64(0), user.Wallet)
	})

	t.Run("zero delta", func(t *testing.T) {
		user, err := repo.AdjustBalance(ctx, 555, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), user.Wallet)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := repo.AdjustBalance(ctx, 424242, 10)
		assert.ErrorContains(t, err, "not found")
	})
}

func TestUserRepository_RolledBackCreateIsInvisible(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	errAbort := errors.New("abort")
	err := testDB.DB.WithTransaction(ctx, func(tx pgx.Tx) error {
		user, err := newUserRepositoryWithTx(tx).Create(ctx, 31337, "ghost", 500, 50000)
		require.NoError(t, err)
		require.NotNil(t, user)
		return errAbort
	})
	assert.ErrorIs(t, err, errAbort)

	user, err := NewUserRepository(testDB.DB).GetByDiscordID(ctx, 31337)
	require.NoError(t, err)
	assert.Nil(t, user)

	err = testDB.DB.WithTransaction(ctx, func(tx pgx.Tx) error {
		_, err := newUserRepositoryWithTx(tx).Create(ctx, 31337, "real", 500, 50000)
		return err
	})
	require.NoError(t, err)

	user, err = NewUserRepository(testDB.DB).GetByDiscordID(ctx, 31337)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "real", user.Username)
}
