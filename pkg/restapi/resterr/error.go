/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrDataNotFound = errors.New("data not found")

// Code is a registered protocol error code. Every code maps to exactly one
// HTTP status; unknown codes are rejected at construction time.
type Code string

const (
	CodePresentationMalformed      Code = "presentation_malformed"
	CodePresentationInvalid        Code = "presentation_invalid"
	CodeDisclosureNotActive        Code = "disclosure_not_active"
	CodeJSONPathEmpty              Code = "presentation_credential_jsonpath_empty"
	CodeCredentialTampered         Code = "presentation_credential_tampered"
	CodeCredentialBadIssuer        Code = "presentation_credential_bad_issuer"
	CodeCredentialBadHolder        Code = "presentation_credential_bad_holder"
	CodeCredentialRevoked          Code = "presentation_credential_revoked"
	CodeCredentialExpired          Code = "presentation_credential_expired"
	CodePresentationRequestInvalid Code = "presentation_request_invalid"
	CodeIntegratedUserNotFound     Code = "integrated_identification_user_not_found"
	CodeUserNotFound               Code = "user_not_found"
	CodeUnauthorized               Code = "unauthorized"
	CodePresentationDuplicate      Code = "presentation_duplicate"
	CodeExchangeNotFound           Code = "exchange_not_found"
	CodeUpstreamWebhookError       Code = "vendor_webhook_error"
)

//nolint:gochecknoglobals
var statusByCode = map[Code]int{
	CodePresentationMalformed:      http.StatusBadRequest,
	CodePresentationInvalid:        http.StatusBadRequest,
	CodeDisclosureNotActive:        http.StatusBadRequest,
	CodeJSONPathEmpty:              http.StatusBadRequest,
	CodeCredentialTampered:         http.StatusUnauthorized,
	CodeCredentialBadIssuer:        http.StatusUnauthorized,
	CodeCredentialBadHolder:        http.StatusUnauthorized,
	CodeCredentialRevoked:          http.StatusUnauthorized,
	CodeCredentialExpired:          http.StatusUnauthorized,
	CodePresentationRequestInvalid: http.StatusUnauthorized,
	CodeIntegratedUserNotFound:     http.StatusUnauthorized,
	CodeUserNotFound:               http.StatusUnauthorized,
	CodeUnauthorized:               http.StatusUnauthorized,
	CodePresentationDuplicate:      http.StatusConflict,
	CodeExchangeNotFound:           http.StatusNotFound,
	CodeUpstreamWebhookError:       http.StatusBadGateway,
}

// CustomError is a protocol failure with a registered code.
type CustomError struct {
	Code      Code
	Component Component
	Err       error
}

// NewCustomError creates a CustomError with a registered code. An unknown
// code is a programmer error and panics during construction rather than
// producing an unmappable response at request time.
func NewCustomError(code Code, err error) *CustomError {
	if _, ok := statusByCode[code]; !ok {
		panic(fmt.Sprintf("unregistered error code %q", code))
	}

	return &CustomError{Code: code, Err: err}
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func (e *CustomError) WithComponent(component Component) *CustomError {
	e.Component = component

	return e
}

// HTTPCodeMsg maps the error onto the wire response.
func (e *CustomError) HTTPCodeMsg() (int, interface{}) {
	return statusByCode[e.Code], map[string]interface{}{
		"code":    string(e.Code),
		"message": e.Err.Error(),
	}
}

// SystemError is an internal fault in a named component. Configuration
// mistakes (for example an unsupported identity matcher rule) surface here.
type SystemError struct {
	Component       Component
	FailedOperation string
	Err             error
}

func NewSystemError(component Component, failedOperation string, err error) *SystemError {
	return &SystemError{
		Component:       component,
		FailedOperation: failedOperation,
		Err:             err,
	}
}

func (e *SystemError) Error() string {
	return fmt.Sprintf("system error: component: %s, operation: %s, error: %v",
		e.Component, e.FailedOperation, e.Err)
}

func (e *SystemError) Unwrap() error {
	return e.Err
}

// HTTPCodeMsg always reports 500; the component and operation are kept out of
// the response body and only logged.
func (e *SystemError) HTTPCodeMsg() (int, interface{}) {
	return http.StatusInternalServerError, map[string]interface{}{
		"code":    "system_error",
		"message": e.Err.Error(),
	}
}

// StatusOf returns the HTTP status a registered code maps to.
func StatusOf(code Code) int {
	return statusByCode[code]
}
