package user

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	FindByID(id uuid.UUID) (*User, error)
	EnsureLocalUser() (*User, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(id uuid.UUID) (*User, error) {
	var u User
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) EnsureLocalUser() (*User, error) {
	u := User{
		ID:       LocalUserID,
		Username: "local",
		Email:    "local@localhost",
	}
	if err := r.db.Where("id = ?", LocalUserID).FirstOrCreate(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
