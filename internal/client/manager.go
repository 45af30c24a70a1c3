package client

import (
	"context"
	"net/http"

	"github.com/wolfeidau/orgctl/internal/models"
)

// Employees fetches the employees of organization orgID.
func (c *Client) Employees(ctx context.Context, orgID int64) ([]models.EmployeeRow, error) {
	data, err := c.do(ctx, call{
		op:     "list employees",
		method: http.MethodGet,
		url:    endpoint(c.serverURL, nil, "organizations", formatID(orgID), "employees"),
	})
	if err != nil {
		return nil, err
	}
	rows, err := c.decoder.Employees(data, orgID)
	return rows, c.decoded(ctx, "list employees", err)
}

// FireAll dismisses every employee of organization orgID and returns how
// many were dismissed.
func (c *Client) FireAll(ctx context.Context, orgID int64) (int64, error) {
	data, err := c.do(ctx, call{
		op:     "fire all employees",
		method: http.MethodPost,
		url:    endpoint(c.managerURL, nil, "fire", "all", formatID(orgID)),
	})
	if err != nil {
		return 0, err
	}
	return c.decoder.EmployeeCount(data), nil
}

// Acquire merges organization acquiredID into acquirerID, moving its
// employees.
func (c *Client) Acquire(ctx context.Context, acquirerID, acquiredID int64) (models.AcquisitionResult, error) {
	data, err := c.do(ctx, call{
		op:     "acquire organization",
		method: http.MethodPost,
		url:    endpoint(c.managerURL, nil, "acquire", formatID(acquirerID), formatID(acquiredID)),
	})
	if err != nil {
		return models.AcquisitionResult{}, err
	}
	res, err := c.decoder.Acquiring(data)
	return res, c.decoded(ctx, "acquire organization", err)
}
