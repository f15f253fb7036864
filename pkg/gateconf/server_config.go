package gateconf

import "github.com/hostbridge/appgate/pkg/lifescope"

const (
	DefaultLogLevel           = 0
	DefaultMaxPoolSize        = 6
	DefaultPoolIdleTime       = 300
	DefaultMaxInstancesPerApp = 0
	DefaultUserName           = "nobody"
	DefaultRubyCommand        = "ruby"
)

// ServerConfig holds the configuration of one server/virtual-host block.
// Directives of this kind bind to the top-level server record only: their
// setters write through Target.Server and never into the local directory
// record. After every block is parsed and pairwise-merged, NormalizeServers
// folds all records into one effective configuration and broadcasts it back.
type ServerConfig struct {
	// Ruby is the interpreter command; nil until specified.
	Ruby *string
	// Root is the module installation root; nil until specified.
	Root *string

	// LogLevel carries its own explicit-set flag so that an explicit
	// "log_level 0" is distinguishable from the default.
	LogLevel    int
	LogLevelSet bool

	MaxPoolSize    uint
	MaxPoolSizeSet bool

	MaxInstancesPerApp    uint
	MaxInstancesPerAppSet bool

	// PoolIdleTime is the idle shutdown timeout in seconds.
	PoolIdleTime    uint
	PoolIdleTimeSet bool

	UserSwitching    bool
	UserSwitchingSet bool

	DefaultUser *string
}

// NewServerConfig creates a server-scope record with documented defaults,
// owned by sc.
func NewServerConfig(sc *lifescope.Scope) *ServerConfig {
	c := &ServerConfig{
		LogLevel:           DefaultLogLevel,
		MaxPoolSize:        DefaultMaxPoolSize,
		MaxInstancesPerApp: DefaultMaxInstancesPerApp,
		PoolIdleTime:       DefaultPoolIdleTime,
		UserSwitching:      true,
	}
	if sc != nil {
		sc.OnCleanup(c.release)
	}
	return c
}

func (c *ServerConfig) release() {
	c.Ruby = nil
	c.Root = nil
	c.DefaultUser = nil
}

func (c *ServerConfig) EffectiveRuby() string {
	if c.Ruby != nil {
		return *c.Ruby
	}
	return DefaultRubyCommand
}

// EffectiveRoot returns the installation root, or "" when the root directive
// was never given. The host treats an empty root as a startup error outside
// this core.
func (c *ServerConfig) EffectiveRoot() string {
	if c.Root != nil {
		return *c.Root
	}
	return ""
}

func (c *ServerConfig) EffectiveDefaultUser() string {
	if c.DefaultUser != nil {
		return *c.DefaultUser
	}
	return DefaultUserName
}
