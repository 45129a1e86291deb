package db

import (
	"errors"
	"strings"

	"github.com/edenpods/edenpods/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *UserRepository) Create(user *models.User) error {
	user.Email = NormalizeEmail(user.Email)
	return r.database.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.database.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.database.Where("email = ?", NormalizeEmail(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.database.Model(&models.User{}).
		Where("email = ?", NormalizeEmail(email)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) UpdatePasswordHash(userID uint, passwordHash string) error {
	return r.database.Model(&models.User{}).
		Where("id = ?", userID).
		Update("password_hash", passwordHash).Error
}

func (r *UserRepository) UpdateWalletAddress(userID uint, address string) error {
	return r.database.Model(&models.User{}).
		Where("id = ?", userID).
		Update("wallet_address", strings.TrimSpace(address)).Error
}

// ListWithWallet returns every user whose account is linked to a wallet,
// for the background refresh loop to poll.
func (r *UserRepository) ListWithWallet() ([]models.User, error) {
	var users []models.User
	err := r.database.
		Where("wallet_address <> ''").
		Order("id ASC").
		Find(&users).Error
	return users, err
}
