package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/bookarc/internal/client/client"
	"github.com/dmitrijs2005/bookarc/internal/client/models"
)

// GetBooks lists the public catalogue.
func (c *Client) GetBooks(ctx context.Context, f models.BookFilter) ([]models.Book, error) {
	q := client.NewQuery().Set("genre", f.Genre).Set("search", f.Search)
	out, err := getPublic[[]models.Book](ctx, c.req, "/books", q)
	if err != nil {
		return nil, err
	}
	if *out == nil {
		return []models.Book{}, nil
	}
	return *out, nil
}

func (c *Client) GetBook(ctx context.Context, bookID int64) (*models.Book, error) {
	return getPublic[models.Book](ctx, c.req, path("/books/%d", bookID), nil)
}

// GetBookReviews returns an empty slice when the book has no review
// collection yet.
func (c *Client) GetBookReviews(ctx context.Context, bookID int64) ([]models.BookReview, error) {
	out, err := getPublic[[]models.BookReview](ctx, c.req, path("/books/%d/reviews", bookID), nil)
	if client.HasKind(err, client.KindNotFound) {
		return []models.BookReview{}, nil
	}
	if err != nil {
		return nil, err
	}
	if *out == nil {
		return []models.BookReview{}, nil
	}
	return *out, nil
}

func (c *Client) RateBook(ctx context.Context, bookID int64, rating int) (*models.MessageResponse, error) {
	if err := validateRating(rating); err != nil {
		return nil, err
	}
	return send[models.MessageResponse](ctx, c.req, http.MethodPost, path("/books/%d/ratings", bookID), map[string]int{"rating": rating})
}

// GetUserBookRating returns nil, nil when the caller has not rated the
// book.
func (c *Client) GetUserBookRating(ctx context.Context, bookID int64) (*models.BookRating, error) {
	out, err := get[models.BookRatingResponse](ctx, c.req, path("/books/%d/ratings", bookID), nil)
	if client.HasKind(err, client.KindNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out.Rating, nil
}

func (c *Client) SubmitBookReview(ctx context.Context, bookID int64, r models.BookReviewSubmission) (*models.MessageResponse, error) {
	if err := validateRating(r.Rating); err != nil {
		return nil, err
	}
	if err := validateReview(r.ReviewText); err != nil {
		return nil, err
	}
	return send[models.MessageResponse](ctx, c.req, http.MethodPost, path("/books/%d/reviews", bookID), r)
}

func (c *Client) DeleteBookReview(ctx context.Context, bookID, reviewID int64) (*models.MessageResponse, error) {
	return send[models.MessageResponse](ctx, c.req, http.MethodDelete, path("/books/%d/reviews/%d", bookID, reviewID), nil)
}

func (c *Client) SubmitBook(ctx context.Context, b models.BookSubmission) (*models.BookSubmissionResponse, error) {
	return send[models.BookSubmissionResponse](ctx, c.req, http.MethodPost, "/author/books", b)
}

func (c *Client) GetAuthorBooks(ctx context.Context) (*models.AuthorBooks, error) {
	return get[models.AuthorBooks](ctx, c.req, "/author/books", nil)
}

// UpdatePendingBook only succeeds while the book awaits approval.
func (c *Client) UpdatePendingBook(ctx context.Context, bookID int64, u models.BookUpdate) (*models.BookUpdateResponse, error) {
	return send[models.BookUpdateResponse](ctx, c.req, http.MethodPut, path("/author/books/%d", bookID), u)
}

func (c *Client) DeletePendingBook(ctx context.Context, bookID int64) (*models.BookDeleteResponse, error) {
	return send[models.BookDeleteResponse](ctx, c.req, http.MethodDelete, path("/author/books/%d", bookID), nil)
}

func (c *Client) GetAuthorBookStats(ctx context.Context) (*models.AuthorBookStats, error) {
	return get[models.AuthorBookStats](ctx, c.req, "/author/books/stats", nil)
}

func (c *Client) GetAdminPendingBooks(ctx context.Context, p models.PageParams) (*models.PendingBooksPage, error) {
	return get[models.PendingBooksPage](ctx, c.req, "/admin/books/pending", pageQuery(p))
}

func (c *Client) ApproveBook(ctx context.Context, bookID int64) (*models.BookReviewResponse, error) {
	return send[models.BookReviewResponse](ctx, c.req, http.MethodPost, path("/admin/books/%d/approve", bookID), nil)
}

// RejectBook requires a non-blank reason.
func (c *Client) RejectBook(ctx context.Context, bookID int64, reason string) (*models.BookReviewResponse, error) {
	if err := requireReason(reason); err != nil {
		return nil, err
	}
	return send[models.BookReviewResponse](ctx, c.req, http.MethodPost, path("/admin/books/%d/reject", bookID), map[string]string{"rejection_reason": reason})
}
