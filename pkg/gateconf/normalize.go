package gateconf

// NormalizeServers folds the ordered server-block records into one
// synthesized effective record and broadcasts it back to every element.
// It runs exactly once, after all blocks are parsed and pairwise-merged.
//
// Fold rules, walking the list in declaration order:
//
//   - nullable strings keep the first specified value;
//   - explicit-set-flagged fields keep the first explicitly set value,
//     while the flags OR across all servers;
//   - user-switching alone takes the LAST server that explicitly set it.
//     Later blocks override earlier ones for this one field; end-to-end
//     behavior depends on it, so it must stay asymmetric.
//
// After the broadcast every virtual host shares the same effective
// server-scope configuration: per-host overrides of server-level settings
// only matter during the fold. The operation is idempotent.
func NormalizeServers(servers []*ServerConfig) {
	final := NewServerConfig(nil)

	for _, c := range servers {
		if final.Ruby == nil {
			final.Ruby = c.Ruby
		}
		if final.Root == nil {
			final.Root = c.Root
		}
		if !final.LogLevelSet && c.LogLevelSet {
			final.LogLevel = c.LogLevel
		}
		final.LogLevelSet = final.LogLevelSet || c.LogLevelSet
		if !final.MaxPoolSizeSet {
			final.MaxPoolSize = c.MaxPoolSize
		}
		final.MaxPoolSizeSet = final.MaxPoolSizeSet || c.MaxPoolSizeSet
		if !final.MaxInstancesPerAppSet {
			final.MaxInstancesPerApp = c.MaxInstancesPerApp
		}
		final.MaxInstancesPerAppSet = final.MaxInstancesPerAppSet || c.MaxInstancesPerAppSet
		if !final.PoolIdleTimeSet {
			final.PoolIdleTime = c.PoolIdleTime
		}
		final.PoolIdleTimeSet = final.PoolIdleTimeSet || c.PoolIdleTimeSet
		if c.UserSwitchingSet {
			final.UserSwitching = c.UserSwitching
		}
		final.UserSwitchingSet = final.UserSwitchingSet || c.UserSwitchingSet
		if final.DefaultUser == nil {
			final.DefaultUser = c.DefaultUser
		}
	}

	for _, c := range servers {
		*c = *final
	}
}
