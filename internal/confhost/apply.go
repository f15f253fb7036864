// Package confhost drives the gateconf core the way the host server's
// configuration loader would: it creates scope records inside a lifecycle
// scope, dispatches each declared directive through the registry, cascades
// locations against their ancestors and virtual hosts against the main
// block, and runs the cross-server normalization exactly once at the end.
package confhost

import (
	"fmt"
	"log/slog"

	"github.com/hostbridge/appgate/internal/scenario"
	"github.com/hostbridge/appgate/pkg/gateconf"
	"github.com/hostbridge/appgate/pkg/lifescope"
)

// Apply resolves a scenario into its effective configuration. The first
// directive failure aborts the load; the returned error carries the fixed
// validation message plus the scope it occurred in. diag may be nil.
func Apply(sc *scenario.Scenario, diag *slog.Logger) (*Result, error) {
	if diag == nil {
		diag = slog.Default()
	}
	ls := lifescope.New()
	defer ls.Close()

	warn := func(msg string) { diag.Warn(msg) }

	type block struct {
		src    *scenario.Server
		config *gateconf.ServerConfig
		root   *gateconf.DirConfig
	}

	// Main server block first, then each virtual host merged against it.
	main := block{
		src:    &sc.Main,
		config: gateconf.NewServerConfig(ls),
		root:   gateconf.NewDirConfig(ls),
	}
	if err := applyDirectives(main.src.Name, "", main.config, main.root, main.src.Directives, gateconf.ServerContext, warn); err != nil {
		return nil, err
	}

	blocks := []block{main}
	for i := range sc.VirtualHosts {
		vh := &sc.VirtualHosts[i]
		cfg := gateconf.NewServerConfig(ls)
		root := gateconf.NewDirConfig(ls)
		if err := applyDirectives(vh.Name, "", cfg, root, vh.Directives, gateconf.ServerContext, warn); err != nil {
			return nil, err
		}
		blocks = append(blocks, block{
			src:    vh,
			config: gateconf.MergeServer(ls, main.config, cfg),
			root:   gateconf.MergeDir(ls, main.root, root),
		})
	}

	// Location trees resolve before normalization; they only depend on
	// directory-scope state.
	trees := make([]DirReport, len(blocks))
	for i, b := range blocks {
		children, err := resolveLocations(ls, b.src.Name, b.config, b.root, b.src.Locations, warn)
		if err != nil {
			return nil, err
		}
		trees[i] = DirReport{
			Path:     "/",
			Config:   snapshotDir(b.root),
			Children: children,
		}
	}

	servers := make([]*gateconf.ServerConfig, len(blocks))
	for i, b := range blocks {
		servers[i] = b.config
	}
	gateconf.NormalizeServers(servers)

	reports := make([]ServerReport, 0, len(blocks))
	for i, b := range blocks {
		reports = append(reports, ServerReport{
			Name:   b.src.Name,
			Config: snapshotServer(b.config),
			Root:   trees[i],
		})
	}
	return &Result{Servers: reports}, nil
}

func resolveLocations(ls *lifescope.Scope, server string, srvCfg *gateconf.ServerConfig, parent *gateconf.DirConfig, locs []scenario.Location, warn func(string)) ([]DirReport, error) {
	if len(locs) == 0 {
		return nil, nil
	}
	out := make([]DirReport, 0, len(locs))
	for i := range locs {
		loc := &locs[i]
		local := gateconf.NewDirConfig(ls)
		if err := applyDirectives(server, loc.Path, srvCfg, local, loc.Directives, gateconf.LocationContext, warn); err != nil {
			return nil, err
		}
		resolved := gateconf.MergeDir(ls, parent, local)
		children, err := resolveLocations(ls, server, srvCfg, resolved, loc.Locations, warn)
		if err != nil {
			return nil, err
		}
		out = append(out, DirReport{
			Path:     loc.Path,
			Config:   snapshotDir(resolved),
			Children: children,
		})
	}
	return out, nil
}

func applyDirectives(server, location string, srvCfg *gateconf.ServerConfig, dirCfg *gateconf.DirConfig, ds []scenario.Directive, where gateconf.Context, warn func(string)) error {
	target := &gateconf.Target{
		Server: srvCfg,
		Dir:    dirCfg,
		Warn:   warn,
	}
	for _, d := range ds {
		reg, ok := gateconf.Lookup(d.Name)
		if !ok {
			return scopeError(server, location, fmt.Errorf("unknown directive '%s'", d.Name))
		}
		if !reg.Contexts.Allows(where) {
			return scopeError(server, location,
				fmt.Errorf("'%s' is not allowed in a %s context (allowed: %s)", d.Name, where, reg.Contexts))
		}
		if err := reg.Invoke(target, d.Value); err != nil {
			return scopeError(server, location, err)
		}
	}
	return nil
}

func scopeError(server, location string, err error) error {
	if location != "" {
		return fmt.Errorf("server %q, location %q: %w", server, location, err)
	}
	return fmt.Errorf("server %q: %w", server, err)
}
