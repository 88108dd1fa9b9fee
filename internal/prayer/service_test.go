package prayer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/gracechapel/church-management-backend/internal/user"
	"github.com/gracechapel/church-management-backend/internal/validation"
)

func setupService(t *testing.T) (Service, *user.Repository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}, &user.Member{}, &Request{}))

	users := user.NewRepository(db)
	return NewService(NewRepository(db), users), users
}

func TestCreateRequestValidation(t *testing.T) {
	svc, _ := setupService(t)

	var verrs validation.Errors

	_, err := svc.Create(CreateRequest{RequestText: "Pray"})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["request_text"], "Length must be between 10 and 2000")

	_, err = svc.Create(CreateRequest{RequestText: "Please buy viagra at our casino"})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["request_text"], "Prayer request contains inappropriate content")

	_, err = svc.Create(CreateRequest{RequestText: "Please pray for my family.", Status: "archived"})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["status"], "Must be one of: pending, answered")

	missing := uint(999)
	_, err = svc.Create(CreateRequest{RequestText: "Please pray for my family.", UserID: &missing})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["user_id"], "User does not exist")
}

func TestCreateRequestDefaults(t *testing.T) {
	svc, _ := setupService(t)

	r, err := svc.Create(CreateRequest{RequestText: "Please pray for my family."})
	require.NoError(t, err)
	assert.Equal(t, "pending", r.Status)
	assert.False(t, r.IsPublic)
}

func TestListPublicOnly(t *testing.T) {
	svc, _ := setupService(t)

	pub := true
	_, err := svc.Create(CreateRequest{RequestText: "Public request for healing.", IsPublic: &pub})
	require.NoError(t, err)
	_, err = svc.Create(CreateRequest{RequestText: "Private request for guidance."})
	require.NoError(t, err)

	all, err := svc.List(false, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	public, err := svc.List(true, "")
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.True(t, public[0].IsPublic)
}

func TestUpdateRequestStatus(t *testing.T) {
	svc, _ := setupService(t)

	r, err := svc.Create(CreateRequest{RequestText: "Please pray for my family."})
	require.NoError(t, err)

	answered := "answered"
	updated, err := svc.Update(r.ID, UpdateRequest{Status: &answered})
	require.NoError(t, err)
	assert.Equal(t, "answered", updated.Status)

	byStatus, err := svc.List(false, "answered")
	require.NoError(t, err)
	assert.Len(t, byStatus, 1)

	bad := "Now with spam inside the text"
	_, err = svc.Update(r.ID, UpdateRequest{RequestText: &bad})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["request_text"], "Prayer request contains inappropriate content")

	require.NoError(t, svc.Delete(r.ID))
	_, err = svc.Get(r.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
