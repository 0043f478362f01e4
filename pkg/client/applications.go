package client

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"
	"sort"
	"time"

	"promanager_backend/internal/models"
	"promanager_backend/internal/services/dto"
)

// PageSize is the number of applications shown per page in the original UI.
const PageSize = 5

// NewApplicationID builds an application id the way the original client did:
// coach id, a random integer, athlete id, concatenated. Collisions are
// possible and handled server-side as a failed insert.
func NewApplicationID(coachID, athleteID string) string {
	return fmt.Sprintf("%s%d%s", coachID, rand.Intn(1_000_000), athleteID)
}

// CreateApplication submits a new hire request with a pending status.
func (c *Client) CreateApplication(ctx context.Context, coachID, athleteID, description string) (*models.Application, error) {
	req := &dto.CreateApplicationRequest{
		ApplicationID:         NewApplicationID(coachID, athleteID),
		CoachID:               coachID,
		AthleteID:             athleteID,
		Description:           description,
		DateTimeOfApplication: time.Now().UTC(),
		Status:                string(models.ApplicationStatusPending),
	}
	var resp struct {
		Application models.Application `json:"application"`
	}
	if err := c.do(ctx, "POST", "/application/create", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Application, nil
}

// UpdateApplicationStatus overwrites the status with the given string.
func (c *Client) UpdateApplicationStatus(ctx context.Context, applicationID, status string) error {
	return c.do(ctx, "PUT", "/application/update", &dto.UpdateApplicationStatusRequest{
		ApplicationID: applicationID,
		Status:        status,
	}, nil)
}

// FetchAllApplications lists every application on the server.
func (c *Client) FetchAllApplications(ctx context.Context) ([]models.Application, error) {
	var resp struct {
		Applications []models.Application `json:"applications"`
	}
	if err := c.do(ctx, "GET", "/application/all", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Applications, nil
}

// FetchUserApplications lists the applications a user participates in. An
// empty role keeps the server's coach-column-first guessing; "coach" or
// "athlete" pins the column. A 404 means the user has none and maps to an
// empty slice, matching the original client.
func (c *Client) FetchUserApplications(ctx context.Context, userID, role string) ([]models.Application, error) {
	path := "/application/" + url.PathEscape(userID)
	if role != "" {
		path += "?role=" + url.QueryEscape(role)
	}
	var resp struct {
		Applications []models.Application `json:"applications"`
	}
	if err := c.do(ctx, "GET", path, nil, &resp); err != nil {
		if IsNotFound(err) {
			return []models.Application{}, nil
		}
		return nil, err
	}
	return resp.Applications, nil
}

// FetchApplication gets one application scoped to a user.
func (c *Client) FetchApplication(ctx context.Context, userID, applicationID string) (*models.Application, error) {
	var resp struct {
		Application models.Application `json:"application"`
	}
	path := "/application/" + url.PathEscape(userID) + "/" + url.PathEscape(applicationID)
	if err := c.do(ctx, "GET", path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Application, nil
}

// DeleteApplication removes an application by id.
func (c *Client) DeleteApplication(ctx context.Context, applicationID string) error {
	return c.do(ctx, "DELETE", "/application/"+url.PathEscape(applicationID), nil, nil)
}

// Accept invokes the atomic server-side accept: status update and affiliation
// creation happen in one transaction.
func (c *Client) Accept(ctx context.Context, applicationID string) (*models.Affiliation, error) {
	var resp struct {
		Affiliation models.Affiliation `json:"affiliation"`
	}
	if err := c.do(ctx, "POST", "/application/"+url.PathEscape(applicationID)+"/accept", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Affiliation, nil
}

// AcceptAndAffiliate is the legacy two-call accept flow: set the status to
// accepted, then create the affiliation. There is no rollback; if the second
// call fails the application stays accepted without an affiliation, and the
// returned error says so.
func (c *Client) AcceptAndAffiliate(ctx context.Context, applicationID, coachID, athleteID string) error {
	if err := c.UpdateApplicationStatus(ctx, applicationID, string(models.ApplicationStatusAccepted)); err != nil {
		return fmt.Errorf("status update failed: %w", err)
	}
	if err := c.CreateAffiliation(ctx, applicationID, coachID, athleteID); err != nil {
		return fmt.Errorf("status updated but affiliation create failed: %w", err)
	}
	return nil
}

// SortApplications orders by status priority (pending first, terminated last)
// in place, keeping the incoming order within equal statuses.
func SortApplications(apps []models.Application) {
	sort.SliceStable(apps, func(i, j int) bool {
		return models.PriorityOf(apps[i].Status) < models.PriorityOf(apps[j].Status)
	})
}

// Page returns the given zero-based page of apps, PageSize entries at a time.
// Out-of-range pages return an empty slice.
func Page(apps []models.Application, page int) []models.Application {
	if page < 0 {
		return []models.Application{}
	}
	start := page * PageSize
	if start >= len(apps) {
		return []models.Application{}
	}
	end := start + PageSize
	if end > len(apps) {
		end = len(apps)
	}
	return apps[start:end]
}
