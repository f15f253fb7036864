// Package scenario models a parsed host-server configuration as a YAML
// document: the main server block, its virtual hosts, and the nested
// location tree of each, all carrying flat directive lists. It is the
// fixture format the appgate-conf tooling feeds into the dispatch layer; it
// is not the host server's own configuration syntax.
package scenario

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Directive is one declared directive. Two YAML spellings are accepted:
//
//	- name: max_pool_size
//	  value: "10"
//
//	- max_pool_size: "10"
type Directive struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

func (d *Directive) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("directive must be a mapping, got %s", value.Tag)
	}
	// Shorthand form: a single key that is not "name"/"value".
	if len(value.Content) == 2 {
		key := strings.TrimSpace(value.Content[0].Value)
		if key != "name" && key != "value" {
			d.Name = key
			d.Value = strings.TrimSpace(value.Content[1].Value)
			return nil
		}
	}
	type rawDirective struct {
		Name  string `yaml:"name"`
		Value string `yaml:"value"`
	}
	var raw rawDirective
	if err := value.Decode(&raw); err != nil {
		return err
	}
	d.Name = strings.TrimSpace(raw.Name)
	d.Value = strings.TrimSpace(raw.Value)
	return nil
}

// Location is one directory/location block with its nested children.
type Location struct {
	Path       string      `yaml:"path"`
	Directives []Directive `yaml:"directives"`
	Locations  []Location  `yaml:"locations"`
}

// Server is one server block: the main server or a virtual host.
type Server struct {
	Name       string      `yaml:"name"`
	Directives []Directive `yaml:"directives"`
	Locations  []Location  `yaml:"locations"`
}

// Scenario is a full configuration to resolve.
type Scenario struct {
	Main         Server   `yaml:"main"`
	VirtualHosts []Server `yaml:"virtual_hosts"`
}

// Load reads and structurally validates a scenario file. Directive-level
// validation (unknown names, bad values, wrong context) happens later, at
// dispatch time.
func Load(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	sc.applyDefaults()
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) applyDefaults() {
	if strings.TrimSpace(sc.Main.Name) == "" {
		sc.Main.Name = "main"
	}
	for i := range sc.VirtualHosts {
		if strings.TrimSpace(sc.VirtualHosts[i].Name) == "" {
			sc.VirtualHosts[i].Name = fmt.Sprintf("vhost%d", i+1)
		}
	}
}

func (sc *Scenario) validate() error {
	seen := map[string]bool{sc.Main.Name: true}
	for _, vh := range sc.VirtualHosts {
		if seen[vh.Name] {
			return fmt.Errorf("duplicate server name %q", vh.Name)
		}
		seen[vh.Name] = true
	}
	servers := append([]Server{sc.Main}, sc.VirtualHosts...)
	for _, srv := range servers {
		if err := validateDirectives(srv.Name, srv.Directives); err != nil {
			return err
		}
		if err := validateLocations(srv.Name, srv.Locations); err != nil {
			return err
		}
	}
	return nil
}

func validateLocations(server string, locs []Location) error {
	seen := map[string]bool{}
	for _, loc := range locs {
		path := strings.TrimSpace(loc.Path)
		if path == "" {
			return fmt.Errorf("server %q: location with empty path", server)
		}
		if !strings.HasPrefix(path, "/") {
			return fmt.Errorf("server %q: location path %q must start with '/'", server, path)
		}
		if seen[path] {
			return fmt.Errorf("server %q: duplicate location path %q", server, path)
		}
		seen[path] = true
		if err := validateDirectives(server, loc.Directives); err != nil {
			return err
		}
		if err := validateLocations(server, loc.Locations); err != nil {
			return err
		}
	}
	return nil
}

func validateDirectives(server string, ds []Directive) error {
	for _, d := range ds {
		if strings.TrimSpace(d.Name) == "" {
			return fmt.Errorf("server %q: directive with empty name", server)
		}
	}
	return nil
}
