package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleOwner    UserRole = "owner"
	RoleWorkshop UserRole = "workshop"
)

type User struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Password  string    `db:"password"`
	Role      UserRole  `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
