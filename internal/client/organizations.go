package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/wolfeidau/orgctl/internal/models"
	"github.com/wolfeidau/orgctl/internal/query"
	"github.com/wolfeidau/orgctl/internal/validation"
	"github.com/wolfeidau/orgctl/internal/xmlcodec"
)

// Page defaults applied by PageRequest.normalize.
const (
	DefaultPage = 1
	DefaultSize = 20
)

// PageRequest selects a 1-based page of results.
type PageRequest struct {
	Page int
	Size int
}

func (p PageRequest) normalize() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Size < 1 {
		p.Size = DefaultSize
	}
	return p
}

func (p PageRequest) values() url.Values {
	return url.Values{
		"page": []string{strconv.Itoa(p.Page)},
		"size": []string{strconv.Itoa(p.Size)},
	}
}

// ListOrganizations fetches one page in server order.
func (c *Client) ListOrganizations(ctx context.Context, p PageRequest) (models.OrganizationsPage, error) {
	p = p.normalize()
	data, err := c.do(ctx, call{
		op:     "list organizations",
		method: http.MethodGet,
		url:    endpoint(c.serverURL, p.values(), "organizations"),
	})
	if err != nil {
		return models.OrganizationsPage{}, err
	}
	page, err := c.decoder.OrganizationsPage(data, p.Page, p.Size)
	return page, c.decoded(ctx, "list organizations", err)
}

// ListOrganizationsSorted fetches one page ordered by sorts, without
// filtering. With no sorts it still goes through the query endpoint.
func (c *Client) ListOrganizationsSorted(ctx context.Context, p PageRequest, sorts ...query.Sort) (models.OrganizationsPage, error) {
	return c.QueryOrganizations(ctx, query.SortOnly(sorts...), p)
}

// QueryOrganizations fetches one page of organizations matching q.
func (c *Client) QueryOrganizations(ctx context.Context, q query.Query, p PageRequest) (models.OrganizationsPage, error) {
	body, err := query.Compile(q)
	if err != nil {
		return models.OrganizationsPage{}, fmt.Errorf("failed to compile query: %w", err)
	}

	p = p.normalize()
	data, err := c.do(ctx, call{
		op:     "query organizations",
		method: http.MethodPost,
		url:    endpoint(c.serverURL, p.values(), "organizations", "query"),
		body:   body,
	})
	if err != nil {
		return models.OrganizationsPage{}, err
	}
	page, err := c.decoder.OrganizationsPage(data, p.Page, p.Size)
	return page, c.decoded(ctx, "query organizations", err)
}

// GetOrganization fetches one organization by id.
func (c *Client) GetOrganization(ctx context.Context, id int64) (models.Organization, error) {
	data, err := c.do(ctx, call{
		op:     "get organization",
		method: http.MethodGet,
		url:    endpoint(c.serverURL, nil, "organizations", formatID(id)),
	})
	if err != nil {
		return models.Organization{}, err
	}
	org, err := c.decoder.Organization(data)
	return org, c.decoded(ctx, "get organization", err)
}

// CreateOrganization validates req and creates it. An invalid request is
// returned as validation.FieldErrors and nothing is sent.
func (c *Client) CreateOrganization(ctx context.Context, req models.OrganizationRequest) error {
	if err := c.validate(ctx, "create organization", req); err != nil {
		return err
	}
	body, err := c.encoder.Organization(req)
	if err != nil {
		return fmt.Errorf("failed to encode organization: %w", err)
	}
	_, err = c.do(ctx, call{
		op:     "create organization",
		method: http.MethodPost,
		url:    endpoint(c.serverURL, nil, "organizations"),
		body:   body,
	})
	return err
}

// UpdateOrganization validates req and replaces organization id with it.
func (c *Client) UpdateOrganization(ctx context.Context, id int64, req models.OrganizationRequest) error {
	if err := c.validate(ctx, "update organization", req); err != nil {
		return err
	}
	body, err := c.encoder.Organization(req)
	if err != nil {
		return fmt.Errorf("failed to encode organization: %w", err)
	}
	_, err = c.do(ctx, call{
		op:     "update organization",
		method: http.MethodPut,
		url:    endpoint(c.serverURL, nil, "organizations", formatID(id)),
		body:   body,
	})
	return err
}

// DeleteOrganization removes organization id.
func (c *Client) DeleteOrganization(ctx context.Context, id int64) error {
	_, err := c.do(ctx, call{
		op:     "delete organization",
		method: http.MethodDelete,
		url:    endpoint(c.serverURL, nil, "organizations", formatID(id)),
	})
	return err
}

// TotalTurnover fetches the turnover sum over all organizations.
func (c *Client) TotalTurnover(ctx context.Context) (models.TurnoverSummary, error) {
	data, err := c.do(ctx, call{
		op:     "total turnover",
		method: http.MethodGet,
		url:    endpoint(c.serverURL, nil, "organizations", "turnover"),
	})
	if err != nil {
		return models.TurnoverSummary{}, err
	}
	sum, err := c.decoder.Turnover(data)
	return sum, c.decoded(ctx, "total turnover", err)
}

// TypeCounts fetches the number of organizations of each type.
func (c *Client) TypeCounts(ctx context.Context) ([]models.TypeCount, error) {
	data, err := c.do(ctx, call{
		op:     "type counts",
		method: http.MethodGet,
		url:    endpoint(c.serverURL, nil, "organizations", "types"),
	})
	if err != nil {
		return nil, err
	}
	counts, err := c.decoder.TypeCounts(data)
	return counts, c.decoded(ctx, "type counts", err)
}

// OrganizationsLessThanFullName fetches a page of organizations whose full
// name orders before value.
func (c *Client) OrganizationsLessThanFullName(ctx context.Context, value string, p PageRequest) (models.OrganizationsPage, error) {
	body, err := xmlcodec.FullNameValue(value)
	if err != nil {
		return models.OrganizationsPage{}, fmt.Errorf("failed to encode full name: %w", err)
	}

	p = p.normalize()
	data, err := c.do(ctx, call{
		op:     "less than full name",
		method: http.MethodPost,
		url:    endpoint(c.serverURL, p.values(), "organizations", "lt-full-name"),
		body:   body,
	})
	if err != nil {
		return models.OrganizationsPage{}, err
	}
	page, err := c.decoder.OrganizationsPage(data, p.Page, p.Size)
	return page, c.decoded(ctx, "less than full name", err)
}

func (c *Client) validate(ctx context.Context, op string, req models.OrganizationRequest) error {
	err := validation.Organization(req)
	if err == nil {
		return nil
	}
	c.metrics.ValidationErrors.Add(ctx, 1)
	c.log.Debug().Str("operation", op).Err(err).Msg("request rejected")
	return err
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
