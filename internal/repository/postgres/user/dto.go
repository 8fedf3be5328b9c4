package user

import (
	"time"

	"github.com/uptrace/bun"

	"staff/backend/internal/entity"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
}

type GetListResponse struct {
	ID         int       `json:"id"         bun:"id"`
	Username   *string   `json:"username"   bun:"username"`
	Email      *string   `json:"email"      bun:"email"`
	PositionID *int      `json:"positionId" bun:"position_id"`
	Date       time.Time `json:"date"       bun:"created_at"`
}

type GetDetailByIdResponse struct {
	ID         int       `json:"id"`
	Username   *string   `json:"username"`
	Email      *string   `json:"email"`
	PositionID *int      `json:"positionId"`
	Date       time.Time `json:"date"`
}

type CreateRequest struct {
	Username   *string `json:"username"   form:"username"`
	Email      *string `json:"email"      form:"email"`
	PositionID *int    `json:"positionId" form:"positionId"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:users"`

	ID         int       `json:"id"         bun:"id,pk,autoincrement"`
	Username   *string   `json:"username"   bun:"username"`
	Email      *string   `json:"email"      bun:"email"`
	PositionID *int      `json:"positionId" bun:"position_id"`
	CreatedAt  time.Time `json:"date"       bun:"created_at"`
}

type UpdateRequest struct {
	ID         int     `json:"id"         form:"id"`
	Username   *string `json:"username"   form:"username"`
	Email      *string `json:"email"      form:"email"`
	PositionID *int    `json:"positionId" form:"positionId"`
}

// toGetDetailByIdResponse flattens the stored user into its wire shape: the
// position relation travels as the bare positionId.
func toGetDetailByIdResponse(detail entity.User) GetDetailByIdResponse {
	return GetDetailByIdResponse{
		ID:         detail.ID,
		Username:   detail.Username,
		Email:      detail.Email,
		PositionID: detail.PositionID,
		Date:       detail.CreatedAt,
	}
}
