package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names for the required API credentials.
const (
	MistralKeyVar  = "MISTRAL_API_KEY"
	TogetherKeyVar = "TOGETHER_API_KEY"
)

// Credentials holds the API keys read from the environment. Keys are kept
// out of Config so they never round-trip through config files or logs.
type Credentials struct {
	MistralKey  string
	TogetherKey string
}

// LoadCredentials reads both API keys from the environment. A .env file in
// the working directory is loaded first when present; already-set variables
// win over .env entries.
func LoadCredentials() (*Credentials, error) {
	// A missing .env is fine; deployments usually export variables directly.
	_ = godotenv.Load()

	creds := &Credentials{
		MistralKey:  os.Getenv(MistralKeyVar),
		TogetherKey: os.Getenv(TogetherKeyVar),
	}
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return creds, nil
}

// Validate checks that both required keys are present.
func (c *Credentials) Validate() error {
	if c.MistralKey == "" {
		return fmt.Errorf("%s environment variable is not set", MistralKeyVar)
	}
	if c.TogetherKey == "" {
		return fmt.Errorf("%s environment variable is not set", TogetherKeyVar)
	}
	return nil
}
