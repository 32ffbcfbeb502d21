package user

import "gorm.io/gorm"

type UserContainer struct {
	Repo Repository
}

func NewUserContainer(db *gorm.DB) *UserContainer {
	return &UserContainer{Repo: NewRepository(db)}
}
