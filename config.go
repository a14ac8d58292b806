package lexer

import (
	"fmt"
	"os"

	"github.com/cnf/structhash"
	"sigs.k8s.io/yaml"
)

// TokenDef pairs a token category name with the regular expression matching
// it. "Identifier-like" categories would be configured along the lines of
//
//    - token: ID
//      regex: (a|b)(a|b|0|1)*
//
// Declaration order is significant: when two categories produce a match of
// equal length, the one declared first wins.
type TokenDef struct {
	Token string `json:"token"`
	Regex string `json:"regex"`
}

// Config is an ordered list of token definitions. Configurations are lists
// rather than maps on purpose: a map would lose the declaration order which
// encodes matching priority.
type Config []TokenDef

// ParseConfig reads a token configuration in YAML (or JSON) format.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("cannot parse token configuration: %w", err)
	}
	if len(cfg) == 0 {
		return nil, fmt.Errorf("token configuration is empty")
	}
	for i, def := range cfg {
		if def.Token == "" {
			return nil, fmt.Errorf("token configuration entry #%d has no token name", i)
		}
		if def.Regex == "" {
			return nil, fmt.Errorf("token %q has no regular expression", def.Token)
		}
	}
	return cfg, nil
}

// LoadConfig reads a token configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// Fingerprint returns a stable hash over a configuration, fit for telling
// two lexer builds apart in logs and tooling.
func (c Config) Fingerprint() string {
	return fmt.Sprintf("%x", structhash.Sha1(c, 1))
}
