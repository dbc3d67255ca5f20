/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/velocitynetwork/credential-agent/cmd/common"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLFlagUsage     = "URL to run the credential-agent instance on. Format: HostName:Port."
	hostURLEnvKey        = "CREDENTIAL_AGENT_HOST_URL"

	internalHostURLFlagName  = "internal-host-url"
	internalHostURLFlagUsage = "Internal URL serving the readiness and metrics endpoints. Format: HostName:Port. " +
		"Defaults to host-url port + 1 when not set. " + commonEnvVarUsageText + internalHostURLEnvKey
	internalHostURLEnvKey = "CREDENTIAL_AGENT_INTERNAL_HOST_URL"

	mongoDBURLFlagName      = "mongodb-url"
	mongoDBURLFlagShorthand = "m"
	mongoDBURLFlagUsage     = "The URL of the MongoDB deployment. Format: mongodb://mongodb.example.com:27017. " +
		commonEnvVarUsageText + mongoDBURLEnvKey
	mongoDBURLEnvKey = "CREDENTIAL_AGENT_MONGODB_URL"

	databaseNameFlagName  = "database-name"
	databaseNameFlagUsage = "The name of the MongoDB database holding exchanges, disclosures, vendor user " +
		"mappings and feeds. " + commonEnvVarUsageText + databaseNameEnvKey
	databaseNameEnvKey = "CREDENTIAL_AGENT_DATABASE_NAME"

	redisURLFlagName  = "redis-url"
	redisURLFlagUsage = "Comma-separated list of Redis addresses holding exchange nonces. " +
		commonEnvVarUsageText + redisURLEnvKey
	redisURLEnvKey = "CREDENTIAL_AGENT_REDIS_URL"

	redisPasswordFlagName  = "redis-password"                    //nolint: gosec
	redisPasswordEnvKey    = "CREDENTIAL_AGENT_REDIS_PASSWORD"   //nolint: gosec
	redisPasswordFlagUsage = "Optional password for Redis auth. " +
		commonEnvVarUsageText + redisPasswordEnvKey

	tenantsFilePathFlagName  = "tenants-file-path"
	tenantsFilePathFlagUsage = "Path to the JSON file with tenant configurations and exchange signing keys. " +
		commonEnvVarUsageText + tenantsFilePathEnvKey
	tenantsFilePathEnvKey = "CREDENTIAL_AGENT_TENANTS_FILE_PATH"

	apiKeyFlagName  = "operator-api-key"               //nolint: gosec
	apiKeyEnvKey    = "CREDENTIAL_AGENT_OPERATOR_API_KEY" //nolint: gosec
	apiKeyFlagUsage = "API key protecting the vendor operator endpoints. " +
		commonEnvVarUsageText + apiKeyEnvKey

	credentialCheckURLFlagName  = "credential-check-url"
	credentialCheckURLFlagUsage = "URL of the network credential check service. " +
		commonEnvVarUsageText + credentialCheckURLEnvKey
	credentialCheckURLEnvKey = "CREDENTIAL_AGENT_CREDENTIAL_CHECK_URL"

	defaultVendorBaseURLFlagName  = "default-vendor-base-url"
	defaultVendorBaseURLFlagUsage = "Base URL used for tenants that did not configure a webhook URL of their own. " +
		commonEnvVarUsageText + defaultVendorBaseURLEnvKey
	defaultVendorBaseURLEnvKey = "CREDENTIAL_AGENT_DEFAULT_VENDOR_BASE_URL"

	autoIdentityCheckFlagName  = "auto-identity-check"
	autoIdentityCheckFlagUsage = "Gate identification flows on credential check outcomes. Possible values: " +
		"true, false (default: true). " + commonEnvVarUsageText + autoIdentityCheckEnvKey
	autoIdentityCheckEnvKey = "CREDENTIAL_AGENT_AUTO_IDENTITY_CHECK"

	nonceTTLFlagName  = "nonce-ttl"
	nonceTTLFlagUsage = "Lifetime of exchange nonces issued for wallet-initiated flows, " +
		"as a Go duration (default: 15m). " + commonEnvVarUsageText + nonceTTLEnvKey
	nonceTTLEnvKey = "CREDENTIAL_AGENT_NONCE_TTL"

	metricsProviderFlagName         = "metrics-provider-name"
	allowedMetricsProviderFlagUsage = "The metrics provider name (for example: prometheus). " +
		commonEnvVarUsageText + metricsProviderEnvKey
	metricsProviderEnvKey = "CREDENTIAL_AGENT_METRICS_PROVIDER_NAME"
)

const (
	defaultDatabaseName = "credential-agent"
	defaultNonceTTL     = 15 * time.Minute

	metricsProviderPrometheus = "prometheus"
)

type agentParameters struct {
	hostURL         string
	internalHostURL string

	mongoDBURL   string
	databaseName string

	redisURLs     []string
	redisPassword string

	tenantsFilePath string
	apiKey          string

	credentialCheckURL   string
	defaultVendorBaseURL string

	autoIdentityCheck bool
	nonceTTL          time.Duration

	metricsProviderName string

	logLevel string
}

func getParameters(cmd *cobra.Command) (*agentParameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	internalHostURL := cmdutils.GetUserSetOptionalVarFromString(cmd, internalHostURLFlagName, internalHostURLEnvKey)

	mongoDBURL, err := cmdutils.GetUserSetVarFromString(cmd, mongoDBURLFlagName, mongoDBURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	databaseName := cmdutils.GetUserSetOptionalVarFromString(cmd, databaseNameFlagName, databaseNameEnvKey)
	if databaseName == "" {
		databaseName = defaultDatabaseName
	}

	redisURLs := cmdutils.GetUserSetOptionalCSVVar(cmd, redisURLFlagName, redisURLEnvKey)
	if len(redisURLs) == 0 {
		return nil, fmt.Errorf("%s is required", redisURLFlagName)
	}

	redisPassword := cmdutils.GetUserSetOptionalVarFromString(cmd, redisPasswordFlagName, redisPasswordEnvKey)

	tenantsFilePath, err := cmdutils.GetUserSetVarFromString(cmd, tenantsFilePathFlagName, tenantsFilePathEnvKey, false)
	if err != nil {
		return nil, err
	}

	apiKey, err := cmdutils.GetUserSetVarFromString(cmd, apiKeyFlagName, apiKeyEnvKey, false)
	if err != nil {
		return nil, err
	}

	credentialCheckURL, err := cmdutils.GetUserSetVarFromString(cmd, credentialCheckURLFlagName,
		credentialCheckURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	defaultVendorBaseURL := cmdutils.GetUserSetOptionalVarFromString(cmd, defaultVendorBaseURLFlagName,
		defaultVendorBaseURLEnvKey)

	autoIdentityCheck, err := getAutoIdentityCheck(cmd)
	if err != nil {
		return nil, err
	}

	nonceTTL, err := getNonceTTL(cmd)
	if err != nil {
		return nil, err
	}

	metricsProviderName := cmdutils.GetUserSetOptionalVarFromString(cmd, metricsProviderFlagName,
		metricsProviderEnvKey)

	logLevel := cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey)

	return &agentParameters{
		hostURL:              hostURL,
		internalHostURL:      internalHostURL,
		mongoDBURL:           mongoDBURL,
		databaseName:         databaseName,
		redisURLs:            redisURLs,
		redisPassword:        redisPassword,
		tenantsFilePath:      tenantsFilePath,
		apiKey:               apiKey,
		credentialCheckURL:   credentialCheckURL,
		defaultVendorBaseURL: defaultVendorBaseURL,
		autoIdentityCheck:    autoIdentityCheck,
		nonceTTL:             nonceTTL,
		metricsProviderName:  metricsProviderName,
		logLevel:             logLevel,
	}, nil
}

func getAutoIdentityCheck(cmd *cobra.Command) (bool, error) {
	autoIdentityCheckStr := cmdutils.GetUserSetOptionalVarFromString(cmd, autoIdentityCheckFlagName,
		autoIdentityCheckEnvKey)

	if autoIdentityCheckStr == "" {
		return true, nil
	}

	autoIdentityCheck, err := strconv.ParseBool(autoIdentityCheckStr)
	if err != nil {
		return false, fmt.Errorf("invalid value for %s: %w", autoIdentityCheckFlagName, err)
	}

	return autoIdentityCheck, nil
}

func getNonceTTL(cmd *cobra.Command) (time.Duration, error) {
	nonceTTLStr := cmdutils.GetUserSetOptionalVarFromString(cmd, nonceTTLFlagName, nonceTTLEnvKey)

	if nonceTTLStr == "" {
		return defaultNonceTTL, nil
	}

	nonceTTL, err := time.ParseDuration(nonceTTLStr)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", nonceTTLFlagName, err)
	}

	return nonceTTL, nil
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringP(internalHostURLFlagName, "", "", internalHostURLFlagUsage)
	startCmd.Flags().StringP(mongoDBURLFlagName, mongoDBURLFlagShorthand, "", mongoDBURLFlagUsage)
	startCmd.Flags().StringP(databaseNameFlagName, "", "", databaseNameFlagUsage)
	startCmd.Flags().StringSliceP(redisURLFlagName, "", []string{}, redisURLFlagUsage)
	startCmd.Flags().StringP(redisPasswordFlagName, "", "", redisPasswordFlagUsage)
	startCmd.Flags().StringP(tenantsFilePathFlagName, "", "", tenantsFilePathFlagUsage)
	startCmd.Flags().StringP(apiKeyFlagName, "", "", apiKeyFlagUsage)
	startCmd.Flags().StringP(credentialCheckURLFlagName, "", "", credentialCheckURLFlagUsage)
	startCmd.Flags().StringP(defaultVendorBaseURLFlagName, "", "", defaultVendorBaseURLFlagUsage)
	startCmd.Flags().StringP(autoIdentityCheckFlagName, "", "", autoIdentityCheckFlagUsage)
	startCmd.Flags().StringP(nonceTTLFlagName, "", "", nonceTTLFlagUsage)
	startCmd.Flags().StringP(metricsProviderFlagName, "", "", allowedMetricsProviderFlagUsage)
	startCmd.Flags().StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "", common.LogLevelFlagUsage)
}
