/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthcheck

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthCheckResponse is the body of GET /healthcheck.
type HealthCheckResponse struct {
	Status      string     `json:"status"`
	CurrentTime *time.Time `json:"currentTime,omitempty"`
}

// Controller for health check API.
type Controller struct{}

// GetHealthcheck returns the health check status.
// GET /healthcheck.
func (c *Controller) GetHealthcheck(ctx echo.Context) error {
	currentTime := time.Now()

	return ctx.JSON(http.StatusOK, HealthCheckResponse{Status: "success", CurrentTime: &currentTime})
}
