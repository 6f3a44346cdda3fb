package user

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"saveplate/domain"
	"saveplate/entities"
	"saveplate/pkg/jwt"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dial := gormsqlite.Dialector{
		DriverName: "sqlite",
		DSN:        fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}

func newTestService(db *gorm.DB) UserService {
	return NewUserService(NewUserRepository(db), jwt.NewJWTService())
}

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	service := newTestService(db)

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		FullName: "Ayu Lestari",
		Email:    "ayu@example.com",
		Password: "secret-password",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "Ayu Lestari", res.User.Name)

	var stored entities.User
	assert.NoError(t, db.Where("email = ?", "ayu@example.com").First(&stored).Error)
	assert.Equal(t, 1, stored.HouseholdSize)
	assert.Equal(t, "private", stored.Visibility)
	assert.NotEqual(t, "secret-password", stored.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	service := newTestService(db)

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		FullName: "Ayu Lestari",
		Email:    "ayu@example.com",
		Password: "secret-password",
	})
	assert.NoError(t, err)

	_, err = service.Register(context.Background(), domain.RegisterRequest{
		FullName: "Another Ayu",
		Email:    "ayu@example.com",
		Password: "other-password",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	service := newTestService(db)

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		FullName:      "Ayu Lestari",
		Email:         "ayu@example.com",
		Password:      "secret-password",
		HouseholdSize: 4,
	})
	assert.NoError(t, err)

	res, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "ayu@example.com",
		Password: "secret-password",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "Ayu Lestari", res.User.Name)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "ayu@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret-password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	db := newTestDB(t)
	service := newTestService(db)

	registered, err := service.Register(context.Background(), domain.RegisterRequest{
		FullName:      "Ayu Lestari",
		Email:         "ayu@example.com",
		Password:      "secret-password",
		HouseholdSize: 4,
	})
	assert.NoError(t, err)

	me, err := service.Me(context.Background(), registered.User.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Ayu Lestari", me.FullName)
	assert.Equal(t, "ayu@example.com", me.Email)
	assert.Equal(t, 4, me.HouseholdSize)
	assert.Equal(t, "private", me.Visibility)

	_, err = service.Me(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
