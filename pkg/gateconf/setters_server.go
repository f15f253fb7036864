package gateconf

import "strconv"

// parseNumber parses the entire argument as a base-10 integer; any trailing
// non-numeric character is a validation failure.
func parseNumber(directive, arg string) (int64, error) {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, directiveError(directive, "Invalid number specified for '%s'.", directive)
	}
	return n, nil
}

func setRoot(t *Target, arg string) error {
	t.Server.Root = &arg
	return nil
}

func setLogLevel(t *Target, arg string) error {
	n, err := parseNumber("log_level", arg)
	if err != nil {
		return err
	}
	if n < 0 || n > 9 {
		return directiveError("log_level", "Value for 'log_level' must be between 0 and 9.")
	}
	t.Server.LogLevel = int(n)
	t.Server.LogLevelSet = true
	return nil
}

func setRuby(t *Target, arg string) error {
	t.Server.Ruby = &arg
	return nil
}

func setMaxPoolSize(t *Target, arg string) error {
	n, err := parseNumber("max_pool_size", arg)
	if err != nil {
		return err
	}
	if n <= 0 {
		return directiveError("max_pool_size", "Value for 'max_pool_size' must be greater than 0.")
	}
	t.Server.MaxPoolSize = uint(n)
	t.Server.MaxPoolSizeSet = true
	return nil
}

func setMaxInstancesPerApp(t *Target, arg string) error {
	n, err := parseNumber("max_instances_per_app", arg)
	if err != nil {
		return err
	}
	if n < 0 {
		return directiveError("max_instances_per_app",
			"Value for 'max_instances_per_app' must be greater than or equal to 0.")
	}
	t.Server.MaxInstancesPerApp = uint(n)
	t.Server.MaxInstancesPerAppSet = true
	return nil
}

func setPoolIdleTime(t *Target, arg string) error {
	n, err := parseNumber("pool_idle_time", arg)
	if err != nil {
		return err
	}
	if n <= 0 {
		return directiveError("pool_idle_time", "Value for 'pool_idle_time' must be greater than 0.")
	}
	t.Server.PoolIdleTime = uint(n)
	t.Server.PoolIdleTimeSet = true
	return nil
}

func setUserSwitching(t *Target, on bool) error {
	t.Server.UserSwitching = on
	t.Server.UserSwitchingSet = true
	return nil
}

func setDefaultUser(t *Target, arg string) error {
	t.Server.DefaultUser = &arg
	return nil
}

func setSpawnServer(t *Target, arg string) error {
	t.warnf("The 'spawn_server' option is obsolete; specify 'root' instead. " +
		"The correct value was reported by the appgate installer.")
	return nil
}
