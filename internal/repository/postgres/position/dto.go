package position

import (
	"staff/backend/internal/entity"
)

type GetListResponse struct {
	ID   int     `json:"id"`
	Name *string `json:"name"`
}

func toGetListResponse(list []entity.Position) []GetListResponse {
	responses := make([]GetListResponse, 0, len(list))
	for _, detail := range list {
		responses = append(responses, GetListResponse{
			ID:   detail.ID,
			Name: detail.Name,
		})
	}

	return responses
}
