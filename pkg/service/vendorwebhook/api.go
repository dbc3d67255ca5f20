/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vendorwebhook

import (
	"fmt"

	"github.com/velocitynetwork/credential-agent/pkg/doc/vc"
	"github.com/velocitynetwork/credential-agent/pkg/service/credentialcheck"
)

// RejectionError is a vendor 4xx: the vendor understood the callback and
// said no. Identification flows treat it as "user not found".
type RejectionError struct {
	StatusCode int
	Message    string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("vendor rejected webhook call: status %d: %s", e.StatusCode, e.Message)
}

// UpstreamError is a vendor 5xx or a transport failure. The agent does not
// retry; the holder is told the gateway failed and may resubmit.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vendor webhook unreachable: %v", e.Err)
	}

	return fmt.Sprintf("vendor webhook failed: status %d", e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// DisclosureEvent carries one checked presentation to the vendor.
// Credentials, RawCredentials, and Checks are index-aligned.
type DisclosureEvent struct {
	ExchangeID             string
	PresentationID         string
	VendorDisclosureID     string
	SendPushOnVerification bool
	Credentials            []*vc.Credential
	RawCredentials         []string
	Checks                 []*credentialcheck.Checks
	PaymentRequired        bool
	VendorOriginContext    string
}

// IdentifyEvent carries an identification presentation to the vendor.
type IdentifyEvent struct {
	ExchangeID          string
	Credentials         []*vc.Credential
	RawCredentials      []string
	Checks              []*credentialcheck.Checks
	VendorOriginContext string
}

// IdentifyResult is the vendor's answer to an identify callback.
type IdentifyResult struct {
	VendorUserID string `json:"vendorUserId"`
}
