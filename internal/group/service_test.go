package group

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
	require.NoError(t, db.AutoMigrate(&user.User{}, &user.Member{}, &Group{}, &GroupMember{}))

	users := user.NewRepository(db)
	return NewService(NewRepository(db), users), users
}

func seedUser(t *testing.T, users *user.Repository, username string) *user.User {
	t.Helper()
	u := &user.User{Username: username, Email: username + "@example.com", PasswordHash: "x"}
	require.NoError(t, users.Create(u))
	return u
}

func TestCreateGroupDefaultsAndValidation(t *testing.T) {
	svc, _ := setupService(t)

	g, err := svc.Create(CreateGroupRequest{Name: "Young Adults", MeetingDay: "Friday", MeetingTime: "19:30"})
	require.NoError(t, err)
	assert.Equal(t, "other", g.GroupType)

	_, err = svc.Create(CreateGroupRequest{
		GroupType:   "book-club",
		MeetingDay:  "Funday",
		MeetingTime: "25:00",
	})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["name"], "This field is required")
	assert.Contains(t, verrs["group_type"], "Must be one of: cell, youth, men, women, other")
	assert.Contains(t, verrs["meeting_day"], "Must be one of: Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday")
	assert.Contains(t, verrs["meeting_time"], "Invalid time format. Use HH:MM")
}

func TestGroupParentChecks(t *testing.T) {
	svc, _ := setupService(t)

	parent, err := svc.Create(CreateGroupRequest{Name: "North Campus"})
	require.NoError(t, err)
	child, err := svc.Create(CreateGroupRequest{Name: "North Cell 1", ParentGroupID: &parent.ID})
	require.NoError(t, err)

	var verrs validation.Errors

	// Unknown parent on create.
	missing := uint(999)
	_, err = svc.Create(CreateGroupRequest{Name: "Orphan", ParentGroupID: &missing})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["parent_group_id"], "Parent group does not exist")

	// A group cannot be its own parent.
	_, err = svc.Update(parent.ID, UpdateGroupRequest{ParentGroupID: &parent.ID})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["parent_group_id"], "Group cannot be its own parent")

	// Pointing the parent at its own child closes a cycle.
	_, err = svc.Update(parent.ID, UpdateGroupRequest{ParentGroupID: &child.ID})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["parent_group_id"], "Circular parent-child relationship detected")

	// Detaching the child is always allowed.
	updated, err := svc.Update(child.ID, UpdateGroupRequest{ClearParent: true})
	require.NoError(t, err)
	assert.Nil(t, updated.ParentGroupID)
}

func TestGroupLeaderMustExist(t *testing.T) {
	svc, users := setupService(t)
	leader := seedUser(t, users, "leader")

	_, err := svc.Create(CreateGroupRequest{Name: "Men's Group", GroupType: "men", LeaderID: &leader.ID})
	assert.NoError(t, err)

	missing := uint(999)
	_, err = svc.Create(CreateGroupRequest{Name: "Ghost Group", LeaderID: &missing})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["leader_id"], "Leader does not exist")
}

func TestAddMember(t *testing.T) {
	svc, users := setupService(t)
	alice := seedUser(t, users, "alice")

	g, err := svc.Create(CreateGroupRequest{Name: "Cell 1", GroupType: "cell"})
	require.NoError(t, err)

	m, err := svc.AddMember(CreateGroupMemberRequest{GroupID: g.ID, UserID: alice.ID, Role: "member"})
	require.NoError(t, err)
	require.NotNil(t, m.JoinDate)

	// One membership per (group, user).
	_, err = svc.AddMember(CreateGroupMemberRequest{GroupID: g.ID, UserID: alice.ID, Role: "leader"})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["user_id"], "User is already a member of this group")

	got, err := svc.Get(g.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.MemberCount)
}

func TestAddMemberValidation(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.AddMember(CreateGroupMemberRequest{GroupID: 1, UserID: 1, Role: "boss"})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["role"], "Must be one of: leader, co_leader, member")

	_, err = svc.AddMember(CreateGroupMemberRequest{GroupID: 999, UserID: 999, Role: "member"})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["group_id"], "Group does not exist")
	assert.Contains(t, verrs["user_id"], "User does not exist")
}

func TestDeleteGroupCascadesMemberships(t *testing.T) {
	svc, users := setupService(t)
	alice := seedUser(t, users, "alice")

	g, err := svc.Create(CreateGroupRequest{Name: "Cell 1"})
	require.NoError(t, err)
	m, err := svc.AddMember(CreateGroupMemberRequest{GroupID: g.ID, UserID: alice.ID, Role: "member"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(g.ID))

	_, err = svc.GetMember(m.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
