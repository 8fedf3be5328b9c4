package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler is the signature every route handler implements. Returned errors
// that were not already written by the handler are rendered by RespondError.
type Handler func(c *Context) error

type App struct {
	*gin.Engine
}

func NewApp() *App {
	return &App{Engine: gin.New()}
}

func (a *App) handle(method, path string, handler Handler, middlewares ...gin.HandlerFunc) {
	handlers := make([]gin.HandlerFunc, 0, len(middlewares)+1)
	handlers = append(handlers, middlewares...)
	handlers = append(handlers, func(c *gin.Context) {
		ctx := NewContext(c)
		if err := handler(ctx); err != nil {
			_ = ctx.RespondError(err)
		}
	})

	a.Handle(method, path, handlers...)
}

func (a *App) Get(path string, handler Handler, middlewares ...gin.HandlerFunc) {
	a.handle(http.MethodGet, path, handler, middlewares...)
}

func (a *App) Post(path string, handler Handler, middlewares ...gin.HandlerFunc) {
	a.handle(http.MethodPost, path, handler, middlewares...)
}

func (a *App) Put(path string, handler Handler, middlewares ...gin.HandlerFunc) {
	a.handle(http.MethodPut, path, handler, middlewares...)
}

func (a *App) Patch(path string, handler Handler, middlewares ...gin.HandlerFunc) {
	a.handle(http.MethodPatch, path, handler, middlewares...)
}

func (a *App) Delete(path string, handler Handler, middlewares ...gin.HandlerFunc) {
	a.handle(http.MethodDelete, path, handler, middlewares...)
}
