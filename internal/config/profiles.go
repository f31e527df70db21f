package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"logsift/internal/errors"
)

// Profiles maps profile names to keyword lists so recurring filter sets
// don't have to be retyped on every invocation.
type Profiles struct {
	Profiles map[string][]string `yaml:"profiles"`
}

// DefaultProfilesPath returns the fixed profiles location
// (~/.config/logsift/profiles.yaml).
func DefaultProfilesPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "logsift", "profiles.yaml"), nil
}

// LoadProfiles reads the profiles file. A missing file yields an empty
// profile set rather than an error.
func LoadProfiles(path string) (*Profiles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Profiles{Profiles: map[string][]string{}}, nil
		}
		return nil, errors.NewConfigError("cannot read profiles file", path, errors.ConfigInvalid, err)
	}

	var p Profiles
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.NewConfigError("cannot parse profiles file", path, errors.ConfigInvalid, err)
	}
	if p.Profiles == nil {
		p.Profiles = map[string][]string{}
	}
	return &p, nil
}

// Lookup returns the keyword list stored under name.
func (p *Profiles) Lookup(name string) ([]string, bool) {
	keywords, ok := p.Profiles[name]
	if !ok || len(keywords) == 0 {
		return nil, false
	}
	return keywords, true
}
