// Package config holds the votingd daemon configuration
package config

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Config contains all necessary votingd configurations
type Config struct {
	// LedgerURL is the JSON-RPC endpoint of the chain carrying the voting contract
	LedgerURL string `mapstructure:"ledger_url"`
	// ContractAddress is the deployed voting contract
	ContractAddress common.Address `mapstructure:"contract_address"`
	// ClefEndpoint is the clef external signer socket or url
	ClefEndpoint string `mapstructure:"clef_endpoint"`

	// PollInterval is the fixed interval of the pull-based snapshot refresh.
	// The push-based refresh runs in addition whenever the endpoint supports
	// log subscriptions.
	PollInterval time.Duration `mapstructure:"poll_interval"`
	// DialRetries is how often connecting to the ledger endpoint is retried at startup
	DialRetries int `mapstructure:"dial_retries"`

	AuthConfig `mapstructure:"auth"`
}

// AuthConfig is the configuration of the login collaborator
type AuthConfig struct {
	Token     string `mapstructure:"token"`
	Principal string `mapstructure:"principal"`
}

// DefaultConfig returns a configuration populated with default values
func DefaultConfig() Config {
	return Config{
		LedgerURL:    "ws://localhost:8546",
		ClefEndpoint: "http://localhost:8550",
		PollInterval: 3 * time.Second,
		DialRetries:  3,
	}
}
