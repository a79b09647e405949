package domain

import (
	"errors"
	"time"
)

var ErrUserExists = errors.New("username already taken")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrFieldsRequired = errors.New("all fields required")
var ErrPasswordMismatch = errors.New("passwords don't match")

// Account models a registered user of the to-do service.
type Account struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	Name         string    `json:"name"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Account) TableName() string { return "user_accounts" }
