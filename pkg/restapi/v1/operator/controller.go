/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -package operator_test -source=controller.go

package operator

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velocitynetwork/credential-agent/pkg/restapi/v1/util"
	"github.com/velocitynetwork/credential-agent/pkg/service/exchange"
	"github.com/velocitynetwork/credential-agent/pkg/tenant"
)

type exchangeService interface {
	CreateExchange(ctx context.Context, req *exchange.CreateRequest) (*exchange.Exchange, error)
	GetExchange(ctx context.Context, tenantID, id string) (*exchange.Exchange, error)
}

type disclosureStore interface {
	Put(ctx context.Context, disc *tenant.Disclosure) error
	Get(ctx context.Context, tenantID, id string) (*tenant.Disclosure, error)
	List(ctx context.Context, tenantID string) ([]*tenant.Disclosure, error)
}

// Config holds the operator API dependencies.
type Config struct {
	ExchangeService exchangeService
	DisclosureStore disclosureStore
}

// Controller for the vendor-operator API. Tenancy comes from the path; the
// API key middleware authenticates the caller.
type Controller struct {
	exchangeService exchangeService
	disclosureStore disclosureStore
}

// NewController creates the operator API controller.
func NewController(cfg *Config) *Controller {
	return &Controller{
		exchangeService: cfg.ExchangeService,
		disclosureStore: cfg.DisclosureStore,
	}
}

// CreateExchangeRequest is the body of POST .../exchanges.
type CreateExchangeRequest struct {
	DisclosureID          string                 `json:"disclosureId"`
	Type                  exchange.Type          `json:"type"`
	Protocol              exchange.Protocol      `json:"protocol"`
	HolderDID             string                 `json:"holderDid,omitempty"`
	IdentityMatcherValues []string               `json:"identityMatcherValues,omitempty"`
	PushDelegate          *exchange.PushDelegate `json:"pushDelegate,omitempty"`
}

// CreateExchange creates a new exchange under a disclosure.
// POST /operator/tenants/{tenantID}/exchanges.
func (c *Controller) CreateExchange(ctx echo.Context) error {
	tenantID := ctx.Param("tenantID")

	var body CreateExchangeRequest

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	if body.DisclosureID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "disclosureId is required")
	}

	if body.Type == "" {
		body.Type = exchange.TypeDisclosure
	}

	if body.Protocol == "" {
		body.Protocol = exchange.ProtocolDirect
	}

	return util.WriteOutputWithCode(http.StatusCreated, ctx)(c.exchangeService.CreateExchange(
		ctx.Request().Context(), &exchange.CreateRequest{
			TenantID:              tenantID,
			DisclosureID:          body.DisclosureID,
			Type:                  body.Type,
			Protocol:              body.Protocol,
			HolderDID:             body.HolderDID,
			IdentityMatcherValues: body.IdentityMatcherValues,
			PushDelegate:          body.PushDelegate,
		}))
}

// GetExchange returns one exchange with its full event history.
// GET /operator/tenants/{tenantID}/exchanges/{exchangeID}.
func (c *Controller) GetExchange(ctx echo.Context) error {
	return util.WriteOutput(ctx)(c.exchangeService.GetExchange(
		ctx.Request().Context(), ctx.Param("tenantID"), ctx.Param("exchangeID")))
}

// PutDisclosure creates or replaces a disclosure configuration.
// PUT /operator/tenants/{tenantID}/disclosures/{disclosureID}.
func (c *Controller) PutDisclosure(ctx echo.Context) error {
	var disc tenant.Disclosure

	if err := util.ReadBody(ctx, &disc); err != nil {
		return err
	}

	disc.ID = ctx.Param("disclosureID")
	disc.TenantID = ctx.Param("tenantID")

	if err := disc.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.disclosureStore.Put(ctx.Request().Context(), &disc); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, &disc)
}

// GetDisclosure returns one disclosure configuration.
// GET /operator/tenants/{tenantID}/disclosures/{disclosureID}.
func (c *Controller) GetDisclosure(ctx echo.Context) error {
	return util.WriteOutput(ctx)(c.disclosureStore.Get(
		ctx.Request().Context(), ctx.Param("tenantID"), ctx.Param("disclosureID")))
}

// ListDisclosures returns all disclosures of a tenant.
// GET /operator/tenants/{tenantID}/disclosures.
func (c *Controller) ListDisclosures(ctx echo.Context) error {
	return util.WriteOutput(ctx)(c.disclosureStore.List(
		ctx.Request().Context(), ctx.Param("tenantID")))
}
