package entity

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID         int       `json:"id"          bun:"id,pk,autoincrement"`
	Username   *string   `json:"username"    bun:"username"`
	Email      *string   `json:"email"       bun:"email"`
	PositionID *int      `json:"position_id" bun:"position_id"`
	CreatedAt  time.Time `json:"created_at"  bun:"created_at,nullzero"`
}
