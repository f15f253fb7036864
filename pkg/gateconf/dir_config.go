package gateconf

import "github.com/hostbridge/appgate/pkg/lifescope"

// Defaults applied by the Effective* accessors when the full cascade still
// leaves a field unspecified.
const (
	DefaultRailsEnv                 = "production"
	DefaultRackEnv                  = "production"
	DefaultFrameworkSpawnerIdleTime = 1800
	DefaultAppSpawnerIdleTime       = 600
)

// DirConfig holds the configuration declared for one directory/location
// scope. A record starts with every field unset and is populated by setter
// handlers while the host parses that scope's directives; nested scopes
// obtain their resolved view through MergeDir, which never mutates the
// inputs.
type DirConfig struct {
	Enabled Tristate

	AutoDetectRails Tristate
	AutoDetectRack  Tristate
	AutoDetectWSGI  Tristate

	// AllowRewriteRules controls whether custom host-server rewrite rules
	// may apply inside this scope.
	AllowRewriteRules Tristate

	// RailsEnv, RackEnv and AppRoot are nil until specified; nil inherits
	// from the ancestor scope.
	RailsEnv *string
	RackEnv  *string
	AppRoot  *string

	SpawnMethod SpawnMethod

	// Spawner idle times in seconds; -1 inherits.
	FrameworkSpawnerIdleTime int64
	AppSpawnerIdleTime       int64

	MaxRequests    uint
	MaxRequestsSet bool

	// MemoryLimit (MB) participates in merging but has no registered
	// directive in this release.
	MemoryLimit    uint
	MemoryLimitSet bool

	HighPerformance Tristate
	UseGlobalQueue  Tristate

	RailsBaseURIs StringSet
	RackBaseURIs  StringSet
}

// NewDirConfig creates an empty directory-scope record owned by sc. The
// record's release is registered against the scope so teardown of the
// configuration generation releases it deterministically.
func NewDirConfig(sc *lifescope.Scope) *DirConfig {
	c := &DirConfig{
		FrameworkSpawnerIdleTime: -1,
		AppSpawnerIdleTime:       -1,
		RailsBaseURIs:            NewStringSet(),
		RackBaseURIs:             NewStringSet(),
	}
	if sc != nil {
		sc.OnCleanup(c.release)
	}
	return c
}

func (c *DirConfig) release() {
	c.RailsBaseURIs = nil
	c.RackBaseURIs = nil
	c.RailsEnv = nil
	c.RackEnv = nil
	c.AppRoot = nil
}

// Effective accessors below resolve remaining Unset values to documented
// defaults so that no sentinel leaks into downstream consumers.

func (c *DirConfig) EffectiveEnabled() bool         { return c.Enabled.Bool(true) }
func (c *DirConfig) EffectiveAutoDetectRails() bool { return c.AutoDetectRails.Bool(true) }
func (c *DirConfig) EffectiveAutoDetectRack() bool  { return c.AutoDetectRack.Bool(true) }
func (c *DirConfig) EffectiveAutoDetectWSGI() bool  { return c.AutoDetectWSGI.Bool(true) }

func (c *DirConfig) EffectiveAllowRewriteRules() bool { return c.AllowRewriteRules.Bool(false) }
func (c *DirConfig) EffectiveHighPerformance() bool   { return c.HighPerformance.Bool(false) }
func (c *DirConfig) EffectiveUseGlobalQueue() bool    { return c.UseGlobalQueue.Bool(false) }

func (c *DirConfig) EffectiveRailsEnv() string {
	if c.RailsEnv != nil {
		return *c.RailsEnv
	}
	return DefaultRailsEnv
}

func (c *DirConfig) EffectiveRackEnv() string {
	if c.RackEnv != nil {
		return *c.RackEnv
	}
	return DefaultRackEnv
}

// EffectiveAppRoot returns the application-root override, or "" when the
// application root should be derived from the document root.
func (c *DirConfig) EffectiveAppRoot() string {
	if c.AppRoot != nil {
		return *c.AppRoot
	}
	return ""
}

func (c *DirConfig) EffectiveSpawnMethod() SpawnMethod {
	if c.SpawnMethod == SpawnUnset {
		return SpawnSmartLV2
	}
	return c.SpawnMethod
}

func (c *DirConfig) EffectiveFrameworkSpawnerIdleTime() int64 {
	if c.FrameworkSpawnerIdleTime < 0 {
		return DefaultFrameworkSpawnerIdleTime
	}
	return c.FrameworkSpawnerIdleTime
}

func (c *DirConfig) EffectiveAppSpawnerIdleTime() int64 {
	if c.AppSpawnerIdleTime < 0 {
		return DefaultAppSpawnerIdleTime
	}
	return c.AppSpawnerIdleTime
}

// EffectiveMaxRequests returns the per-instance request limit; 0 means
// unlimited.
func (c *DirConfig) EffectiveMaxRequests() uint { return c.MaxRequests }

// EffectiveMemoryLimit returns the per-instance memory limit in MB; 0 means
// unlimited.
func (c *DirConfig) EffectiveMemoryLimit() uint { return c.MemoryLimit }
