package ministry

import (
	"path/filepath"
	"testing"
	"time"

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
	require.NoError(t, db.AutoMigrate(&user.User{}, &user.Member{}, &Ministry{}, &Leader{}, &Member{}))

	users := user.NewRepository(db)
	return NewService(NewRepository(db), users), users
}

func seedUser(t *testing.T, users *user.Repository, username string) *user.User {
	t.Helper()
	u := &user.User{Username: username, Email: username + "@example.com", PasswordHash: "x"}
	require.NoError(t, users.Create(u))
	return u
}

func TestCreateMinistryValidation(t *testing.T) {
	svc, _ := setupService(t)

	var verrs validation.Errors

	_, err := svc.Create(CreateMinistryRequest{
		ContactEmail: "not-an-email",
		ContactPhone: "123",
		DisplayOrder: -1,
		ImageURL:     "ftp://example.com/logo.png",
	})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["name"], "This field is required")
	assert.Contains(t, verrs["contact_email"], "Not a valid email address")
	assert.Contains(t, verrs["contact_phone"], "Phone number must be at least 10 digits")
	assert.Contains(t, verrs["display_order"], "Must be at least 0")
	assert.Len(t, verrs["image_url"], 1)
}

func TestCreateMinistryDefaultsActive(t *testing.T) {
	svc, _ := setupService(t)

	m, err := svc.Create(CreateMinistryRequest{Name: "Worship Team"})
	require.NoError(t, err)
	assert.True(t, m.IsActive)
	assert.False(t, m.IsFeatured)

	inactive := false
	m2, err := svc.Create(CreateMinistryRequest{Name: "Archived Ministry", IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, m2.IsActive)

	active, err := svc.List(true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, m.ID, active[0].ID)
}

func TestAddLeader(t *testing.T) {
	svc, users := setupService(t)
	leader := seedUser(t, users, "leader")

	m, err := svc.Create(CreateMinistryRequest{Name: "Worship Team"})
	require.NoError(t, err)

	l, err := svc.AddLeader(CreateLeaderRequest{MinistryID: m.ID, UserID: leader.ID})
	require.NoError(t, err)
	assert.Equal(t, "leader", l.Role)
	require.NotNil(t, l.StartDate)

	// One leadership row per (ministry, user).
	_, err = svc.AddLeader(CreateLeaderRequest{MinistryID: m.ID, UserID: leader.ID, Role: "co_leader"})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["user_id"], "User is already a leader of this ministry")
}

func TestAddLeaderValidation(t *testing.T) {
	svc, users := setupService(t)
	leader := seedUser(t, users, "leader")

	m, err := svc.Create(CreateMinistryRequest{Name: "Worship Team"})
	require.NoError(t, err)

	var verrs validation.Errors

	_, err = svc.AddLeader(CreateLeaderRequest{MinistryID: m.ID, UserID: leader.ID, Role: "boss"})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["role"], "Must be one of: leader, co_leader, director, coordinator")

	_, err = svc.AddLeader(CreateLeaderRequest{
		MinistryID: m.ID,
		UserID:     leader.ID,
		StartDate:  "2026-06-01",
		EndDate:    "2026-05-01",
	})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["end_date"], "End date must be after start date")

	_, err = svc.AddLeader(CreateLeaderRequest{MinistryID: 999, UserID: 999})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["ministry_id"], "Ministry does not exist")
	assert.Contains(t, verrs["user_id"], "User does not exist")
}

func TestAddMemberAndCount(t *testing.T) {
	svc, users := setupService(t)
	alice := seedUser(t, users, "alice")
	bob := seedUser(t, users, "bob")

	m, err := svc.Create(CreateMinistryRequest{Name: "Worship Team"})
	require.NoError(t, err)

	_, err = svc.AddMember(CreateMemberRequest{MinistryID: m.ID, UserID: alice.ID, Role: "vocalist"})
	require.NoError(t, err)
	member, err := svc.AddMember(CreateMemberRequest{MinistryID: m.ID, UserID: bob.ID})
	require.NoError(t, err)

	// Duplicate roster entries are rejected.
	_, err = svc.AddMember(CreateMemberRequest{MinistryID: m.ID, UserID: alice.ID})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["user_id"], "User is already a member of this ministry")

	// Future join dates are rejected.
	_, err = svc.AddMember(CreateMemberRequest{
		MinistryID: m.ID,
		UserID:     alice.ID,
		JoinDate:   time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
	})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["join_date"], "Date cannot be in the future")

	got, err := svc.Get(m.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.MemberCount)

	// Only active members count.
	inactive := false
	_, err = svc.UpdateMember(member.ID, UpdateMemberRequest{IsActive: &inactive})
	require.NoError(t, err)
	got, err = svc.Get(m.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.MemberCount)
}

func TestDeleteMinistryCascades(t *testing.T) {
	svc, users := setupService(t)
	alice := seedUser(t, users, "alice")

	m, err := svc.Create(CreateMinistryRequest{Name: "Worship Team"})
	require.NoError(t, err)
	_, err = svc.AddLeader(CreateLeaderRequest{MinistryID: m.ID, UserID: alice.ID})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(m.ID))

	leaders, err := svc.ListLeaders(m.ID)
	require.NoError(t, err)
	assert.Empty(t, leaders)
}
