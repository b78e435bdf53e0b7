package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeremiapane/bar-pos/models"
	"github.com/yeremiapane/bar-pos/store"
	"github.com/yeremiapane/bar-pos/utils"
)

var ErrUserNotFound = errors.New("user not found")

// UserService mengelola record user di store. Login/akses bukan urusan
// engine; yang dipakai core cuma lookup saldo VIP.
type UserService struct {
	store *store.Store
}

func NewUserService(st *store.Store) *UserService {
	return &UserService{store: st}
}

// Register user baru dengan password yang di-hash.
func (s *UserService) Register(name, email, password, role string) (*models.User, error) {
	if name == "" || email == "" || password == "" || role == "" {
		return nil, fmt.Errorf("%w: missing required field", ErrInvalidDraft)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.ErrorLogger.Printf("Register: failed to hash password: %v", err)
		return nil, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.store.SaveUser(&user); err != nil {
		utils.ErrorLogger.Printf("Register: failed to save user %s: %v", email, err)
		return nil, err
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s)", user.Email, user.Role)
	return &user, nil
}

// GetUserByID -> satu user
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.store.FindUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrUserNotFound, id)
		}
		return nil, err
	}
	return user, nil
}

// AdjustBalance menambah (atau mengurangi, delta negatif) saldo VIP.
func (s *UserService) AdjustBalance(id uint, delta float64) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		utils.ErrorLogger.Printf("AdjustBalance: %v", err)
		return nil, err
	}

	user.Balance += delta
	if err := s.store.SaveUser(user); err != nil {
		utils.ErrorLogger.Printf("AdjustBalance: failed to save user %d: %v", id, err)
		return nil, err
	}

	utils.InfoLogger.Printf("User %d balance now %s", user.ID, utils.FormatCurrencySEK(user.Balance))
	return user, nil
}
