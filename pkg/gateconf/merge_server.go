package gateconf

import "github.com/hostbridge/appgate/pkg/lifescope"

// MergeServer resolves a virtual-host block against the main server block.
// The result is a fresh record owned by sc; base and override are never
// mutated.
//
// Nullable strings inherit unless the override specified them. Every
// numeric field and the user-switching boolean follow the explicit-set
// pattern: the override's value wins only when its flag is set, and flags
// OR so "was specified" is monotonic. LogLevel deliberately uses its
// explicit-set flag rather than treating level 0 as "unset".
func MergeServer(sc *lifescope.Scope, base, override *ServerConfig) *ServerConfig {
	c := NewServerConfig(sc)

	c.Ruby = mergeString(base.Ruby, override.Ruby)
	c.Root = mergeString(base.Root, override.Root)

	if override.LogLevelSet {
		c.LogLevel = override.LogLevel
	} else {
		c.LogLevel = base.LogLevel
	}
	c.LogLevelSet = base.LogLevelSet || override.LogLevelSet

	if override.MaxPoolSizeSet {
		c.MaxPoolSize = override.MaxPoolSize
	} else {
		c.MaxPoolSize = base.MaxPoolSize
	}
	c.MaxPoolSizeSet = base.MaxPoolSizeSet || override.MaxPoolSizeSet

	if override.MaxInstancesPerAppSet {
		c.MaxInstancesPerApp = override.MaxInstancesPerApp
	} else {
		c.MaxInstancesPerApp = base.MaxInstancesPerApp
	}
	c.MaxInstancesPerAppSet = base.MaxInstancesPerAppSet || override.MaxInstancesPerAppSet

	if override.PoolIdleTimeSet {
		c.PoolIdleTime = override.PoolIdleTime
	} else {
		c.PoolIdleTime = base.PoolIdleTime
	}
	c.PoolIdleTimeSet = base.PoolIdleTimeSet || override.PoolIdleTimeSet

	if override.UserSwitchingSet {
		c.UserSwitching = override.UserSwitching
	} else {
		c.UserSwitching = base.UserSwitching
	}
	c.UserSwitchingSet = base.UserSwitchingSet || override.UserSwitchingSet

	c.DefaultUser = mergeString(base.DefaultUser, override.DefaultUser)

	return c
}
