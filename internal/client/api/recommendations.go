package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/bookarc/internal/client/client"
	"github.com/dmitrijs2005/bookarc/internal/client/models"
)

// GetRecommendations lets the backend pick the count when numResults is 0.
func (c *Client) GetRecommendations(ctx context.Context, numResults int) (*models.Recommendations, error) {
	return get[models.Recommendations](ctx, c.req, "/recommendations", client.NewQuery().SetInt("num_results", numResults))
}

func (c *Client) RecordInteraction(ctx context.Context, in models.Interaction) (*models.InteractionResponse, error) {
	if !in.EventType.Valid() {
		return nil, ErrInvalidEventType
	}
	return send[models.InteractionResponse](ctx, c.req, http.MethodPost, "/interactions", in)
}
