package client

import (
	"context"
	"fmt"
	"net/url"

	"promanager_backend/internal/models"
	"promanager_backend/internal/services/dto"
)

// CreateAffiliation inserts an affiliation row. The server does not check
// that the application exists or is accepted.
func (c *Client) CreateAffiliation(ctx context.Context, applicationID, coachID, athleteID string) error {
	return c.do(ctx, "POST", "/affiliation/create", &dto.CreateAffiliationRequest{
		ApplicationID: applicationID,
		CoachID:       coachID,
		AthleteID:     athleteID,
	}, nil)
}

// FetchAllAffiliations lists every affiliation on the server.
func (c *Client) FetchAllAffiliations(ctx context.Context) ([]models.Affiliation, error) {
	var resp struct {
		Affiliations []models.Affiliation `json:"affiliations"`
	}
	if err := c.do(ctx, "GET", "/affiliation/all", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Affiliations, nil
}

// FetchUserAffiliations lists a user's affiliations, 404 mapping to an empty
// slice. Role works as in FetchUserApplications.
func (c *Client) FetchUserAffiliations(ctx context.Context, userID, role string) ([]models.Affiliation, error) {
	path := "/affiliation/" + url.PathEscape(userID)
	if role != "" {
		path += "?role=" + url.QueryEscape(role)
	}
	var resp struct {
		Affiliations []models.Affiliation `json:"affiliations"`
	}
	if err := c.do(ctx, "GET", path, nil, &resp); err != nil {
		if IsNotFound(err) {
			return []models.Affiliation{}, nil
		}
		return nil, err
	}
	return resp.Affiliations, nil
}

// DeleteAffiliation removes the affiliation for an application. Deleting a
// missing one is a 404, not an idempotent success.
func (c *Client) DeleteAffiliation(ctx context.Context, applicationID string) error {
	return c.do(ctx, "DELETE", "/affiliation/"+url.PathEscape(applicationID), nil, nil)
}

// Terminate invokes the atomic server-side termination: affiliation delete
// and status update in one transaction.
func (c *Client) Terminate(ctx context.Context, applicationID string) error {
	return c.do(ctx, "POST", "/affiliation/"+url.PathEscape(applicationID)+"/terminate", nil, nil)
}

// TerminateAffiliation is the legacy two-call termination: set the status to
// terminated, then delete the affiliation. No rollback; a failure on the
// second call leaves a terminated application with a live affiliation row.
func (c *Client) TerminateAffiliation(ctx context.Context, applicationID string) error {
	if err := c.UpdateApplicationStatus(ctx, applicationID, string(models.ApplicationStatusTerminated)); err != nil {
		return fmt.Errorf("status update failed: %w", err)
	}
	if err := c.DeleteAffiliation(ctx, applicationID); err != nil {
		return fmt.Errorf("status updated but affiliation delete failed: %w", err)
	}
	return nil
}
