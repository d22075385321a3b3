package resolver

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest declares the filesystem roots backing each import scope. A
// scope may bind more than one root, tried in order, for example when a
// vendored copy and a local override both carry the same scope name:
//
//	scopes:
//	  proto-indo-european: [./lang/pie, ./vendor/lang/pie]
//	  common-germanic: [./lang/germanic]
type Manifest struct {
	Scopes map[string][]string `yaml:"scopes"`
}

// LoadManifest reads and parses a scope manifest from path.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("resolver: reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("resolver: parsing manifest %s: %w", path, err)
	}
	return m, nil
}
