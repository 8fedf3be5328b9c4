package entity

import (
	"github.com/uptrace/bun"
)

type Position struct {
	bun.BaseModel `bun:"table:positions,alias:p"`

	ID   int     `json:"id"   bun:"id,pk,autoincrement"`
	Name *string `json:"name" bun:"name"`
}
