package gateconf

import (
	"fmt"
	"strings"
)

// ArgKind describes a directive's arity.
type ArgKind int8

const (
	// TakeOne directives receive exactly one string argument.
	TakeOne ArgKind = iota
	// FlagArg directives receive an on/off argument.
	FlagArg
)

// Context is a bitmask of the configuration contexts a directive may be
// declared in.
type Context uint8

const (
	// ServerContext covers the main server block and virtual-host blocks.
	ServerContext Context = 1 << iota
	// LocationContext covers directory/location blocks nested in a server.
	LocationContext
)

func (c Context) Allows(where Context) bool {
	return c&where != 0
}

func (c Context) String() string {
	parts := make([]string, 0, 2)
	if c&ServerContext != 0 {
		parts = append(parts, "server")
	}
	if c&LocationContext != 0 {
		parts = append(parts, "location")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

// Target is the pair of records a directive invocation writes to: the
// top-level server record of the enclosing block and the innermost
// directory record. Server-scope setters always write through Server, so a
// server-scope directive can never leak into a local directory record.
type Target struct {
	Server *ServerConfig
	Dir    *DirConfig

	// Warn receives diagnostics for obsolete directives. Optional.
	Warn func(msg string)
}

func (t *Target) warnf(format string, args ...any) {
	if t.Warn != nil {
		t.Warn(fmt.Sprintf(format, args...))
	}
}

// Directive is one entry of the declarative directive table.
type Directive struct {
	Name     string
	Kind     ArgKind
	Contexts Context
	Help     string

	// AliasFor names the current directive a legacy alias resolves to.
	// Alias entries reuse the target's setter unchanged.
	AliasFor string

	// Obsolete directives accept their argument, mutate nothing and warn.
	Obsolete bool

	set     func(t *Target, arg string) error
	setFlag func(t *Target, on bool) error
}

// Invoke validates and applies one raw argument to the target records. For
// FlagArg directives the argument must be a recognized on/off literal. A nil
// return means the directive was applied; a non-nil return is a
// *DirectiveError whose message the host displays before aborting the load.
func (d *Directive) Invoke(t *Target, arg string) error {
	if d.Kind == FlagArg {
		on, err := parseFlagArg(d.Name, arg)
		if err != nil {
			return err
		}
		return d.setFlag(t, on)
	}
	return d.set(t, arg)
}

func parseFlagArg(directive, arg string) (bool, error) {
	switch strings.ToLower(arg) {
	case "on", "yes", "true":
		return true, nil
	case "off", "no", "false":
		return false, nil
	default:
		return false, directiveError(directive, "Value for '%s' must be 'on' or 'off'.", directive)
	}
}

// table lists every recognized directive in presentation order: module
// settings, Rails settings, Rack settings, WSGI settings, legacy aliases,
// obsolete directives.
var table = []*Directive{
	{
		Name:     "root",
		Kind:     TakeOne,
		Contexts: ServerContext,
		Help:     "The appgate installation root folder.",
		set:      setRoot,
	},
	{
		Name:     "log_level",
		Kind:     TakeOne,
		Contexts: ServerContext,
		Help:     "Log verbosity, 0 (quiet) to 9 (very verbose).",
		set:      setLogLevel,
	},
	{
		Name:     "ruby",
		Kind:     TakeOne,
		Contexts: ServerContext,
		Help:     "The Ruby interpreter command to run applications with.",
		set:      setRuby,
	},
	{
		Name:     "max_pool_size",
		Kind:     TakeOne,
		Contexts: ServerContext,
		Help:     "The maximum number of simultaneously alive application instances.",
		set:      setMaxPoolSize,
	},
	{
		Name:     "max_instances_per_app",
		Kind:     TakeOne,
		Contexts: ServerContext,
		Help:     "The maximum number of instances a single application may occupy.",
		set:      setMaxInstancesPerApp,
	},
	{
		Name:     "pool_idle_time",
		Kind:     TakeOne,
		Contexts: ServerContext,
		Help:     "Seconds an application instance may be idle before it is terminated.",
		set:      setPoolIdleTime,
	},
	{
		Name:     "use_global_queue",
		Kind:     FlagArg,
		Contexts: ServerContext | LocationContext,
		Help:     "Enable or disable global queuing mode.",
		setFlag:  setUseGlobalQueue,
	},
	{
		Name:     "user_switching",
		Kind:     FlagArg,
		Contexts: ServerContext,
		Help:     "Whether to enable user switching support.",
		setFlag:  setUserSwitching,
	},
	{
		Name:     "default_user",
		Kind:     TakeOne,
		Contexts: ServerContext,
		Help:     "The user applications run as when user switching fails or is disabled.",
		set:      setDefaultUser,
	},
	{
		Name:     "max_requests",
		Kind:     TakeOne,
		Contexts: ServerContext | LocationContext,
		Help:     "The maximum number of requests an application instance may process.",
		set:      setMaxRequests,
	},
	{
		Name:     "high_performance",
		Kind:     FlagArg,
		Contexts: ServerContext | LocationContext,
		Help:     "Enable or disable high performance mode.",
		setFlag:  setHighPerformance,
	},
	{
		Name:     "enabled",
		Kind:     FlagArg,
		Contexts: ServerContext | LocationContext,
		Help:     "Enable or disable appgate for this scope.",
		setFlag:  setEnabled,
	},

	// Rails settings.
	{
		Name:     "rails_base_uri",
		Kind:     TakeOne,
		Contexts: ServerContext | LocationContext,
		Help:     "Reserve the given URI for a Rails application.",
		set:      setRailsBaseURI,
	},
	{
		Name:     "rails_auto_detect",
		Kind:     FlagArg,
		Contexts: ServerContext,
		Help:     "Whether auto-detection of Rails applications is enabled.",
		setFlag:  setRailsAutoDetect,
	},
	{
		Name:     "rails_allow_rewrite",
		Kind:     FlagArg,
		Contexts: ServerContext,
		Help:     "Whether custom rewrite rules are allowed for Rails scopes.",
		setFlag:  setRailsAllowRewrite,
	},
	{
		Name:     "rails_env",
		Kind:     TakeOne,
		Contexts: ServerContext | LocationContext,
		Help:     "The environment Rails applications must run in.",
		set:      setRailsEnv,
	},
	{
		Name:     "rails_app_root",
		Kind:     TakeOne,
		Contexts: ServerContext | LocationContext,
		Help:     "Overrides the detected Rails application root.",
		set:      setRailsAppRoot,
	},
	{
		Name:     "spawn_method",
		Kind:     TakeOne,
		Contexts: ServerContext,
		Help:     "The application spawn method to use.",
		set:      setSpawnMethod,
	},
	{
		Name:     "framework_spawner_idle_time",
		Kind:     TakeOne,
		Contexts: ServerContext,
		Help:     "Seconds a framework spawner may be idle before it shuts down.",
		set:      setFrameworkSpawnerIdleTime,
	},
	{
		Name:     "app_spawner_idle_time",
		Kind:     TakeOne,
		Contexts: ServerContext,
		Help:     "Seconds an application spawner may be idle before it shuts down.",
		set:      setAppSpawnerIdleTime,
	},

	// Rack settings.
	{
		Name:     "rack_base_uri",
		Kind:     TakeOne,
		Contexts: ServerContext | LocationContext,
		Help:     "Reserve the given URI for a Rack application.",
		set:      setRackBaseURI,
	},
	{
		Name:     "rack_auto_detect",
		Kind:     FlagArg,
		Contexts: ServerContext,
		Help:     "Whether auto-detection of Rack applications is enabled.",
		setFlag:  setRackAutoDetect,
	},
	{
		Name:     "rack_env",
		Kind:     TakeOne,
		Contexts: ServerContext | LocationContext,
		Help:     "The environment Rack applications must run in.",
		set:      setRackEnv,
	},

	// WSGI settings.
	{
		Name:     "wsgi_auto_detect",
		Kind:     FlagArg,
		Contexts: ServerContext,
		Help:     "Whether auto-detection of WSGI applications is enabled.",
		setFlag:  setWSGIAutoDetect,
	},

	// Legacy aliases kept for configurations written against old releases.
	{
		Name:     "rails_ruby",
		Kind:     TakeOne,
		Contexts: ServerContext,
		Help:     "Deprecated alias of 'ruby'.",
		AliasFor: "ruby",
		set:      setRuby,
	},
	{
		Name:     "rails_max_pool_size",
		Kind:     TakeOne,
		Contexts: ServerContext,
		Help:     "Deprecated alias of 'max_pool_size'.",
		AliasFor: "max_pool_size",
		set:      setMaxPoolSize,
	},
	{
		Name:     "rails_max_instances_per_app",
		Kind:     TakeOne,
		Contexts: ServerContext,
		Help:     "Deprecated alias of 'max_instances_per_app'.",
		AliasFor: "max_instances_per_app",
		set:      setMaxInstancesPerApp,
	},
	{
		Name:     "rails_pool_idle_time",
		Kind:     TakeOne,
		Contexts: ServerContext,
		Help:     "Deprecated alias of 'pool_idle_time'.",
		AliasFor: "pool_idle_time",
		set:      setPoolIdleTime,
	},
	{
		Name:     "rails_user_switching",
		Kind:     FlagArg,
		Contexts: ServerContext,
		Help:     "Deprecated alias of 'user_switching'.",
		AliasFor: "user_switching",
		setFlag:  setUserSwitching,
	},
	{
		Name:     "rails_default_user",
		Kind:     TakeOne,
		Contexts: ServerContext,
		Help:     "Deprecated alias of 'default_user'.",
		AliasFor: "default_user",
		set:      setDefaultUser,
	},

	// Obsolete directives.
	{
		Name:     "spawn_server",
		Kind:     TakeOne,
		Contexts: ServerContext,
		Help:     "Obsolete; has no effect.",
		Obsolete: true,
		set:      setSpawnServer,
	},
}

var byName = func() map[string]*Directive {
	m := make(map[string]*Directive, len(table))
	for _, d := range table {
		m[d.Name] = d
	}
	return m
}()

// Lookup returns the directive registered under name.
func Lookup(name string) (*Directive, bool) {
	d, ok := byName[name]
	return d, ok
}

// Directives returns the full table in presentation order. Callers must not
// modify the returned entries.
func Directives() []*Directive {
	out := make([]*Directive, len(table))
	copy(out, table)
	return out
}
