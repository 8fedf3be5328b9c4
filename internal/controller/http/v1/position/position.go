package position

import (
	"net/http"

	"staff/backend/foundation/web"
)

type Controller struct {
	position Position
}

func NewController(position Position) *Controller {
	return &Controller{position}
}

// position

func (pc Controller) GetList(c *web.Context) error {
	list, err := pc.position.GetList(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   list,
		"status": true,
	}, http.StatusOK)
}
