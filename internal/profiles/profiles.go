// Package profiles loads named credentials from the authroute CLI's YAML
// credentials file.
package profiles

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/omarluq/authroute/credential"
)

// Profile is one named credential in the credentials file.
type Profile struct {
	Scheme   string `yaml:"scheme"`
	Token    string `yaml:"token,omitempty"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
}

// Store holds the named credentials loaded from the YAML file.
type Store struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// Load reads and parses a YAML credentials file from the given path.
// Environment variables in the format ${VAR_NAME} are expanded before
// parsing, so secrets can stay out of the file itself.
func Load(path string) (*Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open credentials file %s: %w", path, err)
	}
	defer file.Close()

	return LoadFromReader(file)
}

// LoadFromReader reads and parses YAML credentials from an io.Reader.
func LoadFromReader(r io.Reader) (*Store, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	expanded := os.ExpandEnv(string(content))

	var store Store
	if err := yaml.Unmarshal([]byte(expanded), &store); err != nil {
		return nil, fmt.Errorf("failed to parse credentials YAML: %w", err)
	}

	return &store, nil
}

// Credential builds the credential value for a named profile.
func (s *Store) Credential(name string) (credential.Credential, error) {
	profile, ok := s.Profiles[name]
	if !ok {
		return nil, fmt.Errorf("profile %q not found", name)
	}

	switch credential.Scheme(profile.Scheme) {
	case credential.SchemeBasic:
		return credential.NewBasic(profile.Username, profile.Password), nil
	case credential.SchemeBearer:
		cred, err := credential.NewBearer(profile.Token)
		if err != nil {
			return nil, err
		}
		return cred, nil
	default:
		return nil, fmt.Errorf("profile %q has unknown scheme %q", name, profile.Scheme)
	}
}

// DefaultPath returns the conventional credentials file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "credentials.yaml"
	}
	return filepath.Join(home, ".config", "authroute", "credentials.yaml")
}
