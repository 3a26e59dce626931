package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/beyazservis/servis-go/models"
	"github.com/beyazservis/servis-go/repositories"
	"github.com/beyazservis/servis-go/repositories/mock_repositories"
)

func setupAdminServiceMocks(t *testing.T) (*AdminService, *mock_repositories.MockUserRepo, *mock_repositories.MockIslemRepo, *mock_repositories.MockAtolyeRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	mockIslem := mock_repositories.NewMockIslemRepo(ctrl)
	mockAtolye := mock_repositories.NewMockAtolyeRepo(ctrl)
	repos := &repositories.Repos{
		User:   mockUser,
		Islem:  mockIslem,
		Atolye: mockAtolye,
	}
	return NewAdminService(repos), mockUser, mockIslem, mockAtolye
}

func TestToggleActive_FlipsAndReturnsNewState(t *testing.T) {
	svc, mockUser, _, _ := setupAdminServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(3)).Return(models.User{ID: 3, IsActive: true}, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.False(t, u.IsActive)
		return nil
	})

	active, err := svc.ToggleActive(3)
	assert.NoError(t, err)
	assert.False(t, active)
}

func TestToggleActive_UnknownUser(t *testing.T) {
	svc, mockUser, _, _ := setupAdminServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(99)).Return(models.User{}, gorm.ErrRecordNotFound)

	_, err := svc.ToggleActive(99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc, mockUser, _, _ := setupAdminServiceMocks(t)

	mockUser.EXPECT().DeleteUser(uint(99)).Return(int64(0), nil)

	assert.ErrorIs(t, svc.DeleteUser(99), ErrUserNotFound)
}

func TestUserKayitlar_CombinesBothStores(t *testing.T) {
	svc, _, mockIslem, mockAtolye := setupAdminServiceMocks(t)

	mockIslem.EXPECT().FindByCreatedBy("tekin").Return([]models.Islem{{ID: 1}, {ID: 2}}, nil)
	mockAtolye.EXPECT().FindByCreatedBy("tekin").Return([]models.Atolye{{ID: 7}}, nil)

	islemler, atolyeler, err := svc.UserKayitlar("tekin")
	assert.NoError(t, err)
	assert.Len(t, islemler, 2)
	assert.Len(t, atolyeler, 1)
}
