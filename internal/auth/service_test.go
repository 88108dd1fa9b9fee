package auth

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/gracechapel/church-management-backend/config"
	"github.com/gracechapel/church-management-backend/internal/apperror"
	"github.com/gracechapel/church-management-backend/internal/auditlog"
	"github.com/gracechapel/church-management-backend/internal/user"
	"github.com/gracechapel/church-management-backend/internal/validation"
	"github.com/gracechapel/church-management-backend/utils"
)

func setupService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}, &user.Member{}, &auditlog.AuditLog{}))

	mr := miniredis.RunT(t)
	utils.UseRedisClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	cfg := &config.Config{SessionSecret: "test-secret", SessionTTLHours: 1}
	users := user.NewRepository(db)
	audit := auditlog.NewService(auditlog.NewRepository(db))
	return NewService(users, NewSessionStore(cfg), audit), db
}

func TestRegisterLoginCheckLogout(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	u, token, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Abc12345",
	}, "127.0.0.1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "alice", u.Username)

	got, err := svc.CheckSession(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, loginToken, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "Abc12345"}, "127.0.0.1")
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)

	require.NoError(t, svc.Logout(ctx, token))

	_, err = svc.CheckSession(ctx, token)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	// The other session is unaffected.
	_, err = svc.CheckSession(ctx, loginToken)
	assert.NoError(t, err)
}

func TestRegisterPasswordPolicy(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "abc12345",
	}, "127.0.0.1")
	require.Error(t, err)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["password"], "Password must contain at least one uppercase letter")
}

func TestRegisterMissingFields(t *testing.T) {
	svc, _ := setupService(t)

	_, _, err := svc.Register(context.Background(), RegisterInput{}, "127.0.0.1")
	require.Error(t, err)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["username"], "This field is required")
	assert.Contains(t, verrs["email"], "This field is required")
	assert.Contains(t, verrs["password"], "This field is required")
}

func TestRegisterDuplicates(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Abc12345",
	}, "127.0.0.1")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "other@example.com",
		Password: "Abc12345",
	}, "127.0.0.1")
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["username"], "Username already taken")

	_, _, err = svc.Register(ctx, RegisterInput{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "Abc12345",
	}, "127.0.0.1")
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["email"], "Email already registered")
}

func TestLoginFailuresAreGeneric(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Abc12345",
	}, "127.0.0.1")
	require.NoError(t, err)

	_, _, wrongPass := svc.Login(ctx, LoginInput{Username: "alice", Password: "WrongPass1"}, "127.0.0.1")
	_, _, unknownUser := svc.Login(ctx, LoginInput{Username: "nobody", Password: "Abc12345"}, "127.0.0.1")

	assert.ErrorIs(t, wrongPass, apperror.ErrUnauthorized)
	assert.ErrorIs(t, unknownUser, apperror.ErrUnauthorized)
	// Both failure modes surface the same error text.
	assert.Equal(t, wrongPass.Error(), unknownUser.Error())
}

func TestCheckSessionWithBadToken(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.CheckSession(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	err = svc.Logout(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestCheckSessionStaleUser(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	u, token, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Abc12345",
	}, "127.0.0.1")
	require.NoError(t, err)

	require.NoError(t, db.Delete(&user.User{}, u.ID).Error)

	_, err = svc.CheckSession(ctx, token)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	// The binding was revoked, so the session stays dead.
	_, err = svc.CheckSession(ctx, token)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestRegisterLoginAudited(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Abc12345",
	}, "10.0.0.1")
	require.NoError(t, err)

	_, _, _ = svc.Login(ctx, LoginInput{Username: "alice", Password: "wrong"}, "10.0.0.1")

	var logs []auditlog.AuditLog
	require.NoError(t, db.Order("id").Find(&logs).Error)
	require.Len(t, logs, 2)
	assert.Equal(t, "USER_REGISTER", logs[0].Action)
	assert.Equal(t, "success", logs[0].Status)
	assert.Equal(t, "USER_LOGIN", logs[1].Action)
	assert.Equal(t, "failure", logs[1].Status)
	assert.Equal(t, "10.0.0.1", logs[1].IPAddress)
}
