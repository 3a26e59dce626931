package services

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/beyazservis/servis-go/dto"
	"github.com/beyazservis/servis-go/middleware"
	"github.com/beyazservis/servis-go/models"
	"github.com/beyazservis/servis-go/repositories"
	"github.com/beyazservis/servis-go/repositories/mock_repositories"
)

func setupUserServiceMocks(t *testing.T) (*UserService, *mock_repositories.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	repos := &repositories.Repos{User: mockUser}
	return NewUserService(repos), mockUser
}

func stubGenerateToken(t *testing.T, token string) {
	orig := middleware.GenerateToken
	middleware.GenerateToken = func(userID uint, username string, rol models.UserRole, bayiAdi string) (string, error) {
		return token, nil
	}
	t.Cleanup(func() { middleware.GenerateToken = orig })
}

func hashPassword(t *testing.T, password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

// --------------------- Register ---------------------
func TestRegister_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("ayse").Return(models.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		u.ID = 3
		return nil
	})

	user, err := svc.Register(dto.RegisterDTO{Username: "ayse", Password: "gizli123"})
	assert.NoError(t, err)
	assert.Equal(t, models.UserRoleUser, user.Rol)
	assert.True(t, user.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("gizli123")))
}

func TestRegister_UsernameTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("ayse").Return(models.User{ID: 1, Username: "ayse"}, nil)

	_, err := svc.Register(dto.RegisterDTO{Username: "ayse", Password: "gizli123"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

// --------------------- Login ---------------------
func TestLogin_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)
	stubGenerateToken(t, "stub-token")

	stored := models.User{
		ID:       5,
		Username: "ayse",
		Password: hashPassword(t, "gizli123"),
		Rol:      models.UserRoleUser,
		IsActive: true,
	}
	mockUser.EXPECT().GetUserByUsername("ayse").Return(stored, nil)

	user, token, err := svc.Login("ayse", "gizli123")
	assert.NoError(t, err)
	assert.Equal(t, "stub-token", token)
	assert.Equal(t, uint(5), user.ID)
}

func TestLogin_UnknownUserAndWrongPasswordSameError(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("yok").Return(models.User{}, gorm.ErrRecordNotFound)
	_, _, unknownErr := svc.Login("yok", "her-neyse")

	stored := models.User{Username: "ayse", Password: hashPassword(t, "gizli123"), IsActive: true}
	mockUser.EXPECT().GetUserByUsername("ayse").Return(stored, nil)
	_, _, wrongErr := svc.Login("ayse", "yanlis")

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestLogin_InactiveUser(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	stored := models.User{
		Username: "ayse",
		Password: hashPassword(t, "gizli123"),
		IsActive: false,
	}
	mockUser.EXPECT().GetUserByUsername("ayse").Return(stored, nil)

	_, _, err := svc.Login("ayse", "gizli123")
	assert.ErrorIs(t, err, ErrUserInactive)
}

// --------------------- AdminLogin ---------------------
func TestAdminLogin_RejectsNonAdminWithCredentialsMessage(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)
	stubGenerateToken(t, "stub-token")

	stored := models.User{
		Username: "ayse",
		Password: hashPassword(t, "gizli123"),
		Rol:      models.UserRoleUser,
		IsActive: true,
	}
	mockUser.EXPECT().GetUserByUsername("ayse").Return(stored, nil)

	_, _, err := svc.AdminLogin("ayse", "gizli123")
	assert.ErrorIs(t, err, ErrNotAdmin)
	assert.Equal(t, ErrInvalidCredentials.Error(), err.Error())
}

func TestAdminLogin_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)
	stubGenerateToken(t, "admin-token")

	stored := models.User{
		ID:       1,
		Username: "patron",
		Password: hashPassword(t, "gizli123"),
		Rol:      models.UserRoleAdmin,
		IsActive: true,
	}
	mockUser.EXPECT().GetUserByUsername("patron").Return(stored, nil)

	user, token, err := svc.AdminLogin("patron", "gizli123")
	assert.NoError(t, err)
	assert.Equal(t, "admin-token", token)
	assert.Equal(t, models.UserRoleAdmin, user.Rol)
}

func TestErrorVariablesAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrNotAdmin, ErrInvalidCredentials))
}
