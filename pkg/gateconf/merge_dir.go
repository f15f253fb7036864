package gateconf

import "github.com/hostbridge/appgate/pkg/lifescope"

// MergeDir resolves a nested directory scope against its ancestor. The
// result is a fresh record owned by sc; base and override are never
// mutated. Field rules:
//
//   - tri-state, nullable-string, enum and -1-sentinel fields: override
//     wins when specified, else the base value is inherited;
//   - reserved-URI sets: union, so every ancestor's reservations stay
//     active in the narrower scope;
//   - explicit-set-flagged integers: the override's value wins only when
//     the override actually specified it, and the flags OR so "was
//     specified" is monotonic down the cascade.
func MergeDir(sc *lifescope.Scope, base, override *DirConfig) *DirConfig {
	c := NewDirConfig(sc)

	c.Enabled = mergeTristate(base.Enabled, override.Enabled)

	c.RailsBaseURIs = base.RailsBaseURIs.Union(override.RailsBaseURIs)
	c.RackBaseURIs = base.RackBaseURIs.Union(override.RackBaseURIs)

	c.AutoDetectRails = mergeTristate(base.AutoDetectRails, override.AutoDetectRails)
	c.AutoDetectRack = mergeTristate(base.AutoDetectRack, override.AutoDetectRack)
	c.AutoDetectWSGI = mergeTristate(base.AutoDetectWSGI, override.AutoDetectWSGI)
	c.AllowRewriteRules = mergeTristate(base.AllowRewriteRules, override.AllowRewriteRules)

	c.RailsEnv = mergeString(base.RailsEnv, override.RailsEnv)
	c.RackEnv = mergeString(base.RackEnv, override.RackEnv)
	c.AppRoot = mergeString(base.AppRoot, override.AppRoot)

	c.SpawnMethod = mergeSpawnMethod(base.SpawnMethod, override.SpawnMethod)

	if override.FrameworkSpawnerIdleTime == -1 {
		c.FrameworkSpawnerIdleTime = base.FrameworkSpawnerIdleTime
	} else {
		c.FrameworkSpawnerIdleTime = override.FrameworkSpawnerIdleTime
	}
	if override.AppSpawnerIdleTime == -1 {
		c.AppSpawnerIdleTime = base.AppSpawnerIdleTime
	} else {
		c.AppSpawnerIdleTime = override.AppSpawnerIdleTime
	}

	if override.MaxRequestsSet {
		c.MaxRequests = override.MaxRequests
	} else {
		c.MaxRequests = base.MaxRequests
	}
	c.MaxRequestsSet = base.MaxRequestsSet || override.MaxRequestsSet

	if override.MemoryLimitSet {
		c.MemoryLimit = override.MemoryLimit
	} else {
		c.MemoryLimit = base.MemoryLimit
	}
	c.MemoryLimitSet = base.MemoryLimitSet || override.MemoryLimitSet

	c.HighPerformance = mergeTristate(base.HighPerformance, override.HighPerformance)
	c.UseGlobalQueue = mergeTristate(base.UseGlobalQueue, override.UseGlobalQueue)

	return c
}
