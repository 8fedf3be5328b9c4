package position

import (
	"context"

	"staff/backend/internal/repository/postgres/position"
)

type Position interface {
	GetList(ctx context.Context) ([]position.GetListResponse, error)
}
