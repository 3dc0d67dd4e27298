package domain

import (
	"time"

	"github.com/google/uuid"
)

// Staff is a back-office reviewer account.
type Staff struct {
	ID        uuid.UUID  `db:"id"`
	Email     string     `db:"email"`
	Name      string     `db:"name"`
	Password  string     `db:"password"`
	CreatedAt time.Time  `db:"created_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}
