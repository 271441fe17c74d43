package application

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/datadesk/internal/config"
	"github.com/linskybing/datadesk/internal/domain/user"
	"github.com/linskybing/datadesk/internal/repository"
	"github.com/linskybing/datadesk/internal/repository/mock"
	"github.com/linskybing/datadesk/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	old := config.ImportWorkers
	config.ImportWorkers = 2
	t.Cleanup(func() { config.ImportWorkers = old })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		User: mockUser,
	}
	return NewUserService(repos, logger.Nop()), mockUser
}

// --------------------- ImportUsers ---------------------
func TestImportUsers_CreatesAndUpdates(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	existing := user.User{Email: "old@x.io", PasswordHash: "keep", Role: user.RoleCoder, AssignedJobs: []string{"J0"}}

	mockUser.EXPECT().GetUserByEmail(gomock.Any(), "new@x.io").Return(user.User{}, repository.ErrNotFound)
	mockUser.EXPECT().GetUserByEmail(gomock.Any(), "old@x.io").Return(existing, nil)
	mockUser.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *user.User) error {
			assert.Equal(t, "new@x.io", u.Email)
			assert.Equal(t, user.RoleCoder, u.Role)
			assert.Equal(t, []string{"J1", "J2"}, []string(u.AssignedJobs))
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw1")))
			return nil
		})
	mockUser.EXPECT().SaveUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *user.User) error {
			assert.Equal(t, "keep", u.PasswordHash)
			assert.Equal(t, user.RoleAdmin, u.Role)
			assert.Empty(t, u.AssignedJobs)
			return nil
		})

	text := "user_email,password,assigned_jobs,role\n" +
		"New@X.io,pw1,\"J1,J2\",\n" +
		"old@x.io,,,admin\n"

	result, err := svc.ImportUsers(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Errors)
	assert.Empty(t, result.Failures)
}

func TestImportUsers_ReportsRowFailures(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail(gomock.Any(), "a@x.io").Return(user.User{}, repository.ErrNotFound)
	mockUser.EXPECT().GetUserByEmail(gomock.Any(), "nopw@x.io").Return(user.User{}, repository.ErrNotFound)
	mockUser.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)

	text := "user_email,password,assigned_jobs,role\n" +
		"a@x.io,pw,J1,coder\n" +
		"not-an-email,pw,J1,coder\n" +
		"nopw@x.io,,J1,coder\n" +
		"A@x.io,pw,J1,coder\n" +
		"b@x.io,pw,J1,superuser\n"

	result, err := svc.ImportUsers(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 4, result.Errors)
	require.Len(t, result.Failures, 4)

	assert.Equal(t, 3, result.Failures[0].Row)
	assert.Equal(t, ErrInvalidEmail.Error(), result.Failures[0].Error)
	assert.Equal(t, 4, result.Failures[1].Row)
	assert.Equal(t, ErrPasswordRequired.Error(), result.Failures[1].Error)
	assert.Equal(t, 5, result.Failures[2].Row)
	assert.Equal(t, ErrDuplicateEmail.Error(), result.Failures[2].Error)
	assert.Equal(t, 6, result.Failures[3].Row)
	assert.Equal(t, ErrInvalidRole.Error(), result.Failures[3].Error)
}

func TestImportUsers_RejectsEmailThatCouldShareResponseIDs(t *testing.T) {
	svc, _ := setupUserServiceMocks(t)

	// "x@y.io_a" with job "b" would derive the same response id as
	// "x@y.io" with job "a_b".
	text := "user_email,password,assigned_jobs,role\n" +
		"x@y.io_a,pw,b,coder\n" +
		"x@y.io a,pw,b,coder\n"

	result, err := svc.ImportUsers(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	require.Len(t, result.Failures, 2)
	for _, f := range result.Failures {
		assert.Equal(t, ErrInvalidEmail.Error(), f.Error)
	}
}

func TestImportUsers_EmptyRoleKeepsExistingAdmin(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	admin := user.User{Email: "boss@x.io", PasswordHash: "keep", Role: user.RoleAdmin}

	mockUser.EXPECT().GetUserByEmail(gomock.Any(), "boss@x.io").Return(admin, nil)
	mockUser.EXPECT().SaveUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *user.User) error {
			assert.Equal(t, user.RoleAdmin, u.Role)
			assert.Equal(t, []string{"J1"}, []string(u.AssignedJobs))
			return nil
		})

	result, err := svc.ImportUsers(context.Background(), "user_email,password,assigned_jobs,role\nboss@x.io,,J1,\n")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
}

func TestImportUsers_MissingEmailColumn(t *testing.T) {
	svc, _ := setupUserServiceMocks(t)

	_, err := svc.ImportUsers(context.Background(), "email,password\na@x.io,pw\n")
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestImportUsers_EmptyFile(t *testing.T) {
	svc, _ := setupUserServiceMocks(t)

	_, err := svc.ImportUsers(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestGetUser_NotFound(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail(gomock.Any(), "ghost@x.io").Return(user.User{}, repository.ErrNotFound)

	_, err := svc.GetUser(context.Background(), "Ghost@x.io")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
