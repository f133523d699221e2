package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

// User - учётная запись. Username хранится в нижнем регистре и уникален.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"hash"`
	RouteBin     *string   `json:"route_bin,omitempty" db:"route_bin"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
