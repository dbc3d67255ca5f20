/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tenant

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/velocitynetwork/credential-agent/pkg/restapi/resterr"
)

// Registry reads tenants from a JSON config file at startup and serves them
// by id. Tenant material changes require a restart.
type Registry struct {
	tenants map[string]*Tenant
}

type tenantsFile struct {
	Tenants []*tenantEntry `json:"tenants"`
}

type tenantEntry struct {
	Tenant *Tenant     `json:"tenant"`
	Keys   []*keyEntry `json:"keys,omitempty"`
}

// keyEntry carries hex-encoded private keys so the config file stays textual.
type keyEntry struct {
	ID            string       `json:"id"`
	Purposes      []KeyPurpose `json:"purposes"`
	PrivateKeyHex string       `json:"privateKeyHex"`
}

// NewRegistry loads the tenants file.
func NewRegistry(path string) (*Registry, error) {
	jsonBytes, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read tenants file: %w", err)
	}

	var f tenantsFile
	if err = json.Unmarshal(jsonBytes, &f); err != nil {
		return nil, fmt.Errorf("unmarshal tenants file: %w", err)
	}

	r := &Registry{tenants: make(map[string]*Tenant)}

	for _, entry := range f.Tenants {
		if entry.Tenant == nil {
			return nil, fmt.Errorf("tenants file entry missing tenant")
		}

		for _, ke := range entry.Keys {
			privKey, decErr := hex.DecodeString(ke.PrivateKeyHex)
			if decErr != nil {
				return nil, fmt.Errorf("decode private key for tenant %s: %w", entry.Tenant.ID, decErr)
			}

			entry.Tenant.Keys = append(entry.Tenant.Keys, &Key{
				ID:         ke.ID,
				Purposes:   ke.Purposes,
				PrivateKey: privKey,
			})
		}

		r.tenants[entry.Tenant.ID] = entry.Tenant
	}

	return r, nil
}

// NewStaticRegistry builds a registry from already assembled tenants.
func NewStaticRegistry(tenants ...*Tenant) *Registry {
	r := &Registry{tenants: make(map[string]*Tenant)}
	for _, t := range tenants {
		r.tenants[t.ID] = t
	}

	return r
}

// GetTenant returns the tenant with the given id.
func (r *Registry) GetTenant(id ID) (*Tenant, error) {
	t, ok := r.tenants[id]
	if !ok {
		return nil, resterr.ErrDataNotFound
	}

	return t, nil
}
