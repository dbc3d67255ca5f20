/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -package holder_test -source=controller.go

package holder

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velocitynetwork/credential-agent/pkg/restapi/v1/util"
	"github.com/velocitynetwork/credential-agent/pkg/service/exchange"
)

type exchangeService interface {
	SubmitPresentation(ctx context.Context, req *exchange.SubmitRequest) (*exchange.SubmitResult, error)
	SubmitIdentification(ctx context.Context, req *exchange.SubmitRequest) (*exchange.SubmitResult, error)
}

type nonceResolver interface {
	GetAndDelete(ctx context.Context, nonce string) (string, bool, error)
}

// Config holds the holder API dependencies.
type Config struct {
	ExchangeService exchangeService
	NonceResolver   nonceResolver
}

// Controller for the holder-facing submission API.
type Controller struct {
	exchangeService exchangeService
	nonceResolver   nonceResolver
}

// NewController creates the holder API controller.
func NewController(cfg *Config) *Controller {
	return &Controller{
		exchangeService: cfg.ExchangeService,
		nonceResolver:   cfg.NonceResolver,
	}
}

// SubmitPresentationRequest is the body of a holder submission. The exchange
// is addressed either directly by id or, for protocol-bound submissions,
// through the one-time nonce issued at exchange creation.
type SubmitPresentationRequest struct {
	ExchangeID string `json:"exchange_id,omitempty"`
	Nonce      string `json:"nonce,omitempty"`
	JWTVP      string `json:"jwt_vp,omitempty"`
	// VPJWT is an accepted alias of jwt_vp kept for older wallets.
	VPJWT string `json:"vp_jwt,omitempty"`
}

// ExchangeView is the exchange status snippet returned to the holder.
type ExchangeView struct {
	ID                 string `json:"id"`
	Type               string `json:"type"`
	DisclosureComplete bool   `json:"disclosureComplete"`
	ExchangeComplete   bool   `json:"exchangeComplete"`
}

// SubmitPresentationResponse is the success body of a submission.
type SubmitPresentationResponse struct {
	Exchange ExchangeView `json:"exchange"`
	Token    string       `json:"token,omitempty"`
}

// SubmitPresentation accepts a verifiable presentation for an inspection
// exchange.
// POST /oidc/holder/inspect/submit-presentation.
func (c *Controller) SubmitPresentation(ctx echo.Context) error {
	return c.submit(ctx, c.exchangeService.SubmitPresentation)
}

// SubmitIdentification accepts a verifiable presentation for an issuing
// identification exchange.
// POST /oidc/holder/issue/submit-identification.
func (c *Controller) SubmitIdentification(ctx echo.Context) error {
	return c.submit(ctx, c.exchangeService.SubmitIdentification)
}

func (c *Controller) submit(
	ctx echo.Context,
	op func(ctx context.Context, req *exchange.SubmitRequest) (*exchange.SubmitResult, error),
) error {
	var body SubmitPresentationRequest

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	rawVP := body.JWTVP
	if rawVP == "" {
		rawVP = body.VPJWT
	}

	if rawVP == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "jwt_vp is required")
	}

	requestCtx := ctx.Request().Context()

	exchangeID := body.ExchangeID
	if exchangeID == "" {
		if body.Nonce == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "either exchange_id or nonce is required")
		}

		resolved, found, err := c.nonceResolver.GetAndDelete(requestCtx, body.Nonce)
		if err != nil {
			return err
		}

		if !found {
			return echo.NewHTTPError(http.StatusNotFound, "unknown or already used nonce")
		}

		exchangeID = resolved
	}

	result, err := op(requestCtx, &exchange.SubmitRequest{
		ExchangeID:  exchangeID,
		RawVP:       rawVP,
		BearerToken: util.BearerToken(ctx),
	})

	return util.WriteOutput(ctx)(toResponse(result), err)
}

func toResponse(result *exchange.SubmitResult) *SubmitPresentationResponse {
	if result == nil {
		return nil
	}

	return &SubmitPresentationResponse{
		Exchange: ExchangeView{
			ID:                 result.Exchange.ID,
			Type:               string(result.Exchange.Type),
			DisclosureComplete: result.Exchange.DisclosureComplete(),
			ExchangeComplete:   result.Exchange.Complete(),
		},
		Token: result.Token,
	}
}
