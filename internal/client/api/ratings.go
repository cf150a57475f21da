package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/bookarc/internal/client/client"
	"github.com/dmitrijs2005/bookarc/internal/client/models"
)

type reviewBody struct {
	ReviewText string `json:"review_text"`
}

func (c *Client) RateAuthor(ctx context.Context, authorID int64, rating int) (*models.RateAuthorResponse, error) {
	if err := validateRating(rating); err != nil {
		return nil, err
	}
	return send[models.RateAuthorResponse](ctx, c.req, http.MethodPost, path("/authors/%d/rating", authorID), map[string]int{"rating_value": rating})
}

// GetUserAuthorRating returns nil, nil when the caller has not rated the
// author yet.
func (c *Client) GetUserAuthorRating(ctx context.Context, authorID int64) (*models.OwnAuthorRating, error) {
	out, err := get[models.OwnAuthorRatingResponse](ctx, c.req, path("/authors/%d/rating", authorID), nil)
	if client.HasKind(err, client.KindNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out.Rating, nil
}

func (c *Client) DeleteAuthorRating(ctx context.Context, authorID int64) (*models.MessageResponse, error) {
	return send[models.MessageResponse](ctx, c.req, http.MethodDelete, path("/authors/%d/rating", authorID), nil)
}

func (c *Client) WriteAuthorReview(ctx context.Context, authorID int64, text string) (*models.AuthorReviewResponse, error) {
	if err := validateReview(text); err != nil {
		return nil, err
	}
	return send[models.AuthorReviewResponse](ctx, c.req, http.MethodPost, path("/authors/%d/review", authorID), reviewBody{ReviewText: text})
}

func (c *Client) UpdateAuthorReview(ctx context.Context, authorID int64, text string) (*models.AuthorReviewUpdateResponse, error) {
	if err := validateReview(text); err != nil {
		return nil, err
	}
	return send[models.AuthorReviewUpdateResponse](ctx, c.req, http.MethodPut, path("/authors/%d/review", authorID), reviewBody{ReviewText: text})
}

// GetUserAuthorReview returns nil, nil when the caller has no review of
// the author.
func (c *Client) GetUserAuthorReview(ctx context.Context, authorID int64) (*models.AuthorReview, error) {
	out, err := get[models.AuthorReviewResponse](ctx, c.req, path("/authors/%d/review", authorID), nil)
	if client.HasKind(err, client.KindNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out.Review, nil
}

func (c *Client) DeleteAuthorReview(ctx context.Context, authorID int64) (*models.MessageResponse, error) {
	return send[models.MessageResponse](ctx, c.req, http.MethodDelete, path("/authors/%d/review", authorID), nil)
}

func (c *Client) GetAuthorReviews(ctx context.Context, authorID int64) (*models.AuthorReviews, error) {
	return getPublic[models.AuthorReviews](ctx, c.req, path("/authors/%d/reviews", authorID), nil)
}

func (c *Client) GetAuthorProfile(ctx context.Context, authorID int64) (*models.AuthorProfile, error) {
	return getPublic[models.AuthorProfile](ctx, c.req, path("/author/%d", authorID), nil)
}
