/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credentialcheck

// Value is the outcome of one credential check.
type Value string

const (
	ValuePass          Value = "PASS"
	ValueFail          Value = "FAIL"
	ValueNotChecked    Value = "NOT_CHECKED"
	ValueNotApplicable Value = "NOT_APPLICABLE"
	// ValueVoucherReserveExhausted means the network would have performed the
	// check but the tenant has no voucher balance left to pay for it.
	ValueVoucherReserveExhausted Value = "VOUCHER_RESERVE_EXHAUSTED"
)

// Checks is the per-credential verification verdict set.
type Checks struct {
	Untampered    Value `json:"UNTAMPERED"`
	TrustedIssuer Value `json:"TRUSTED_ISSUER"`
	TrustedHolder Value `json:"TRUSTED_HOLDER"`
	Unrevoked     Value `json:"UNREVOKED"`
	Unexpired     Value `json:"UNEXPIRED"`
}

// Verdict summarizes the checks of a whole presentation.
type Verdict struct {
	// PaymentRequired is set when any check was skipped for lack of voucher
	// balance; the vendor decides whether to top up and retry.
	PaymentRequired bool
}
