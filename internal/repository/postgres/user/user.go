package user

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"staff/backend/foundation/web"
	"staff/backend/internal/entity"
	"staff/backend/internal/pkg/repository/postgresql"
	"staff/backend/internal/repository/postgres"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetList returns one page of users ordered by id plus the total row count.
// Out-of-range paging input is clamped to the defaults rather than rejected.
func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	page := defaultPage
	if filter.Page != nil && *filter.Page > 0 {
		page = *filter.Page
	}

	limit := defaultLimit
	if filter.Limit != nil && *filter.Limit > 0 {
		limit = *filter.Limit
	}

	offset := (page - 1) * limit
	if filter.Offset != nil && *filter.Offset >= 0 {
		offset = *filter.Offset
	}

	var list []GetListResponse
	count, err := r.NewSelect().
		Model((*entity.User)(nil)).
		Column("id", "username", "email", "position_id", "created_at").
		OrderExpr("u.id ASC").
		Limit(limit).
		Offset(offset).
		ScanAndCount(ctx, &list)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting users"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	var detail entity.User

	err := r.NewSelect().Model(&detail).Where("u.id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrUserNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting user detail"), http.StatusInternalServerError)
	}

	return toGetDetailByIdResponse(detail), nil
}

// Create validates the request, resolves the referenced position and inserts
// the user. The existence checks and the insert share one transaction so a
// concurrent position delete cannot leave a dangling reference.
func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	if err := r.ValidateStruct(&request, "Username", "Email", "PositionID"); err != nil {
		return CreateResponse{}, err
	}

	var response CreateResponse

	err := r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var positionExists bool
		if err := tx.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM positions WHERE id = ?)", *request.PositionID).Scan(&positionExists); err != nil {
			return web.NewRequestError(errors.Wrap(err, "checking position existence"), http.StatusInternalServerError)
		}
		if !positionExists {
			return web.NewRequestError(postgres.ErrPositionNotFound, http.StatusNotFound)
		}

		var usernameTaken bool
		if err := tx.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)", *request.Username).Scan(&usernameTaken); err != nil {
			return web.NewRequestError(errors.Wrap(err, "checking username"), http.StatusInternalServerError)
		}
		if usernameTaken {
			return web.NewRequestError(errors.New("username is used"), http.StatusConflict)
		}

		response.Username = request.Username
		response.Email = request.Email
		response.PositionID = request.PositionID
		response.CreatedAt = time.Now()

		if _, err := tx.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID); err != nil {
			return web.NewRequestError(errors.Wrap(err, "creating user"), http.StatusInternalServerError)
		}

		return nil
	})
	if err != nil {
		return CreateResponse{}, err
	}

	return response, nil
}

// UpdateAll overwrites username, email and position of an existing user.
// id and created_at are never touched.
func (r Repository) UpdateAll(ctx context.Context, request UpdateRequest) error {
	if err := r.ValidateStruct(&request, "ID", "Username", "Email", "PositionID"); err != nil {
		return err
	}

	return r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var detail entity.User
		err := tx.NewSelect().Model(&detail).Where("u.id = ?", request.ID).Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return web.NewRequestError(postgres.ErrUserNotFound, http.StatusNotFound)
		}
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "selecting user"), http.StatusInternalServerError)
		}

		var positionExists bool
		if err := tx.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM positions WHERE id = ?)", *request.PositionID).Scan(&positionExists); err != nil {
			return web.NewRequestError(errors.Wrap(err, "checking position existence"), http.StatusInternalServerError)
		}
		if !positionExists {
			return web.NewRequestError(postgres.ErrPositionNotFound, http.StatusNotFound)
		}

		var usernameTaken bool
		if err := tx.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM users WHERE username = ? AND id != ?)", *request.Username, request.ID).Scan(&usernameTaken); err != nil {
			return web.NewRequestError(errors.Wrap(err, "checking username"), http.StatusInternalServerError)
		}
		if usernameTaken {
			return web.NewRequestError(errors.New("username is used"), http.StatusConflict)
		}

		q := tx.NewUpdate().Table("users").Where("id = ?", request.ID)
		q.Set("username = ?", request.Username)
		q.Set("email = ?", request.Email)
		q.Set("position_id = ?", request.PositionID)

		if _, err := q.Exec(ctx); err != nil {
			return web.NewRequestError(errors.Wrap(err, "updating user"), http.StatusInternalServerError)
		}

		return nil
	})
}

// Delete removes the user by id. An absent id is a silent success.
func (r Repository) Delete(ctx context.Context, id int) error {
	log.Println("deleting user with id:", id)

	return r.DeleteRow(ctx, "users", id)
}
