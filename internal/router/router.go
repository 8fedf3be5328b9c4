package router

import (
	"staff/backend/foundation/web"
	"staff/backend/internal/middleware"
	"staff/backend/internal/pkg/repository/postgresql"
	"staff/backend/internal/repository/postgres/position"
	"staff/backend/internal/repository/postgres/user"

	position_controller "staff/backend/internal/controller/http/v1/position"
	user_controller "staff/backend/internal/controller/http/v1/user"
)

type Router struct {
	*web.App
	postgresDB  *postgresql.Database
	port        string
	corsOrigins []string
}

func NewRouter(
	app *web.App,
	postgresDB *postgresql.Database,
	port string,
	corsOrigins []string,
) *Router {
	return &Router{
		app,
		postgresDB,
		port,
		corsOrigins,
	}
}

func (r Router) Init() error {
	r.HandleMethodNotAllowed = true
	r.Use(middleware.CorsMiddleware(r.corsOrigins))

	// - postgresql
	userPostgres := user.NewRepository(r.postgresDB)
	positionPostgres := position.NewRepository(r.postgresDB)

	// controller
	userController := user_controller.NewController(userPostgres)
	positionController := position_controller.NewController(positionPostgres)

	// #position
	r.Get("/api/v1/positions", positionController.GetList)

	// #user
	r.Get("/api/v1/users", userController.GetUserList)
	r.Get("/api/v1/users/:id", userController.GetUserDetailById)
	r.Post("/api/v1/users", userController.CreateUser)
	r.Put("/api/v1/users/:id", userController.UpdateUserAll)
	r.Delete("/api/v1/users/:id", userController.DeleteUser)

	return r.Run(r.port)
}
