/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

type Component string

const (
	ExchangeSvcComponent        Component = "exchange-service"
	PresentationSvcComponent    Component = "presentation-validator"
	CredentialCheckSvcComponent Component = "credential-check-service"
	IdentityMatcherSvcComponent Component = "identity-matcher"
	VendorWebhookSvcComponent   Component = "vendor-webhook"
	PushSvcComponent            Component = "push-delegate"
	ExchangeStoreComponent      Component = "exchange-store"
	DisclosureStoreComponent    Component = "disclosure-store"
	VendorUserStoreComponent    Component = "vendor-user-store"
	FeedStoreComponent          Component = "feed-store"
	NonceStoreComponent         Component = "nonce-store"
	TokenSignerComponent        Component = "token-signer"
	TenantRegistryComponent     Component = "tenant-registry"
)
