package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/bookarc/internal/client/client"
	"github.com/dmitrijs2005/bookarc/internal/client/models"
)

func (c *Client) SubmitAuthorVerification(ctx context.Context, s models.VerificationSubmission) (*models.VerificationSubmitted, error) {
	return send[models.VerificationSubmitted](ctx, c.req, http.MethodPost, "/author/verification", s)
}

func (c *Client) GetVerificationStatus(ctx context.Context) (*models.VerificationStatus, error) {
	return get[models.VerificationStatus](ctx, c.req, "/author/verification", nil)
}

func (c *Client) GetAdminVerificationRequests(ctx context.Context, f models.VerificationFilter) (*models.VerificationRequests, error) {
	q := client.NewQuery().
		Set("status", f.Status).
		SetInt("page", f.Page).
		SetInt("limit", f.Limit)
	return get[models.VerificationRequests](ctx, c.req, "/admin/verification-requests", q)
}

func (c *Client) ApproveAuthorVerification(ctx context.Context, requestID int64) (*models.VerificationDecision, error) {
	return send[models.VerificationDecision](ctx, c.req, http.MethodPost, path("/admin/verification-requests/%d/approve", requestID), nil)
}

func (c *Client) RejectAuthorVerification(ctx context.Context, requestID int64, reason string) (*models.VerificationDecision, error) {
	if err := requireReason(reason); err != nil {
		return nil, err
	}
	return send[models.VerificationDecision](ctx, c.req, http.MethodPost, path("/admin/verification-requests/%d/reject", requestID), map[string]string{"rejection_reason": reason})
}
