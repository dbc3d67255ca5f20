/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package presentation

import (
	"github.com/velocitynetwork/credential-agent/pkg/doc/vc"
)

// Binding is what an exchange pins the submitted presentation to.
type Binding struct {
	ExchangeID string

	// Nonce, when set, must equal the token's nonce claim.
	Nonce string

	// HolderDID, when set, must equal the presentation signer.
	HolderDID string
}

// Submission is the presentation_submission block of a verifiable
// presentation: the holder's mapping of requested inputs to credentials.
type Submission struct {
	ID            string            `json:"id"`
	DefinitionID  string            `json:"definition_id"`
	DescriptorMap []*DescriptorItem `json:"descriptor_map"`
}

// DescriptorItem locates one submitted credential inside the presentation.
type DescriptorItem struct {
	ID     string `json:"id"`
	Format string `json:"format"`
	Path   string `json:"path"`
}

// Result is a fully validated presentation ready for checking and dispatch.
// Credentials and RawCredentials are index-aligned and follow descriptor_map
// order.
type Result struct {
	// PresentationID is the vp id when the holder supplied one, otherwise a
	// digest of the compact JWS. It drives duplicate-submission detection.
	PresentationID string

	HolderDID string

	Credentials    []*vc.Credential
	RawCredentials []string

	// VendorOriginContext is the opaque preauth token the holder obtained
	// from the vendor out of band, when present.
	VendorOriginContext string
}
