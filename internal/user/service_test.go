package user

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/gracechapel/church-management-backend/internal/validation"
)

func setupService(t *testing.T) (Service, *Repository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}, &Member{}))

	repo := NewRepository(db)
	return NewService(repo), repo
}

func seedUser(t *testing.T, repo *Repository, username, email string) *User {
	t.Helper()
	u := &User{Username: username, Email: email, PasswordHash: "x"}
	require.NoError(t, repo.Create(u))
	return u
}

func TestUpdateUserSelfExemptUniqueness(t *testing.T) {
	svc, repo := setupService(t)
	alice := seedUser(t, repo, "alice", "alice@example.com")
	seedUser(t, repo, "bob", "bob@example.com")

	// Resubmitting the current username is not a conflict.
	same := "alice"
	_, err := svc.UpdateUser(alice.ID, UpdateUserRequest{Username: &same})
	assert.NoError(t, err)

	taken := "bob"
	_, err = svc.UpdateUser(alice.ID, UpdateUserRequest{Username: &taken})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["username"], "Username already taken")

	takenEmail := "bob@example.com"
	_, err = svc.UpdateUser(alice.ID, UpdateUserRequest{Email: &takenEmail})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["email"], "Email already registered")
}

func TestUpdateUserNotFound(t *testing.T) {
	svc, _ := setupService(t)
	name := "ghost"
	_, err := svc.UpdateUser(999, UpdateUserRequest{Username: &name})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateMember(t *testing.T) {
	svc, repo := setupService(t)
	alice := seedUser(t, repo, "alice", "alice@example.com")

	m, err := svc.CreateMember(CreateMemberRequest{
		UserID:    alice.ID,
		FirstName: "Alice",
		LastName:  "Smith",
		Phone:     "555-123-4567",
		JoinDate:  "2024-01-15",
	})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, m.UserID)
	require.NotNil(t, m.JoinDate)
	assert.Equal(t, "2024-01-15", m.JoinDate.Format("2006-01-02"))

	u, err := repo.FindByID(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", u.FullName)
}

func TestCreateMemberValidation(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.CreateMember(CreateMemberRequest{Phone: "12345", JoinDate: "15-01-2024"})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["first_name"], "This field is required")
	assert.Contains(t, verrs["last_name"], "This field is required")
	assert.Contains(t, verrs["phone"], "Phone number must be at least 10 digits")
	assert.Contains(t, verrs["join_date"], "Invalid date format. Use YYYY-MM-DD")
}

func TestCreateMemberConflicts(t *testing.T) {
	svc, repo := setupService(t)
	alice := seedUser(t, repo, "alice", "alice@example.com")
	bob := seedUser(t, repo, "bob", "bob@example.com")

	_, err := svc.CreateMember(CreateMemberRequest{
		UserID:    alice.ID,
		FirstName: "Alice",
		LastName:  "Smith",
		Phone:     "555-123-4567",
	})
	require.NoError(t, err)

	// One profile per user.
	_, err = svc.CreateMember(CreateMemberRequest{
		UserID:    alice.ID,
		FirstName: "Alice",
		LastName:  "Again",
		Phone:     "555-999-8888",
	})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["user_id"], "User already has a member profile")

	// Phone numbers are unique across members.
	_, err = svc.CreateMember(CreateMemberRequest{
		UserID:    bob.ID,
		FirstName: "Bob",
		LastName:  "Jones",
		Phone:     "555-123-4567",
	})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["phone"], "Phone number already registered")

	// Unknown owner.
	_, err = svc.CreateMember(CreateMemberRequest{
		UserID:    999,
		FirstName: "Ghost",
		LastName:  "User",
		Phone:     "555-000-1111",
	})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["user_id"], "User does not exist")
}

func TestUpdateMemberPhoneSelfExempt(t *testing.T) {
	svc, repo := setupService(t)
	alice := seedUser(t, repo, "alice", "alice@example.com")
	bob := seedUser(t, repo, "bob", "bob@example.com")

	m1, err := svc.CreateMember(CreateMemberRequest{
		UserID: alice.ID, FirstName: "Alice", LastName: "Smith", Phone: "555-123-4567",
	})
	require.NoError(t, err)
	_, err = svc.CreateMember(CreateMemberRequest{
		UserID: bob.ID, FirstName: "Bob", LastName: "Jones", Phone: "555-999-8888",
	})
	require.NoError(t, err)

	samePhone := "555-123-4567"
	_, err = svc.UpdateMember(m1.ID, UpdateMemberRequest{Phone: &samePhone})
	assert.NoError(t, err)

	bobsPhone := "555-999-8888"
	_, err = svc.UpdateMember(m1.ID, UpdateMemberRequest{Phone: &bobsPhone})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["phone"], "Phone number already registered")
}

func TestDeleteUserCascadesMemberProfile(t *testing.T) {
	svc, repo := setupService(t)
	alice := seedUser(t, repo, "alice", "alice@example.com")

	m, err := svc.CreateMember(CreateMemberRequest{
		UserID: alice.ID, FirstName: "Alice", LastName: "Smith", Phone: "555-123-4567",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(alice.ID))

	_, err = repo.FindMemberByID(m.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
