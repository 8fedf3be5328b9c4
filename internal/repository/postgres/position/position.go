package position

import (
	"context"
	"log"
	"net/http"

	"github.com/pkg/errors"

	"staff/backend/foundation/web"
	"staff/backend/internal/entity"
	"staff/backend/internal/pkg/repository/postgresql"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetList returns every position ordered by id. Positions are seeded out of
// band and only read here.
func (r Repository) GetList(ctx context.Context) ([]GetListResponse, error) {
	log.Println("position list requested")

	var list []entity.Position
	err := r.NewSelect().Model(&list).OrderExpr("p.id ASC").Scan(ctx)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting positions"), http.StatusInternalServerError)
	}

	return toGetListResponse(list), nil
}
