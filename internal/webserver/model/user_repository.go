package model

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (u *UserRepository) Create(user *User) error {
	if result := u.DB.Create(user); result.Error != nil {
		log.Printf("error creating user: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (u *UserRepository) FindByEmail(email string) (*User, error) {
	return u.find("email", email)
}

func (u *UserRepository) FindByUsername(username string) (*User, error) {
	return u.find("username", username)
}

func (u *UserRepository) FindByUuid(uuid string) (*User, error) {
	return u.find("uuid", uuid)
}

func Hash(s string) string {
	h := sha256.New()
	h.Write([]byte(s))
	return string(h.Sum(nil))
}

func (u *UserRepository) find(field, value string) (*User, error) {
	var user User

	result := u.DB.Where(fmt.Sprintf("%s = ?", field), value).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, result.Error
}
