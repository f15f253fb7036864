package gateconf

func setUseGlobalQueue(t *Target, on bool) error {
	t.Dir.UseGlobalQueue = TristateFromBool(on)
	return nil
}

func setMaxRequests(t *Target, arg string) error {
	n, err := parseNumber("max_requests", arg)
	if err != nil {
		return err
	}
	if n < 0 {
		return directiveError("max_requests",
			"Value for 'max_requests' must be greater than or equal to 0.")
	}
	t.Dir.MaxRequests = uint(n)
	t.Dir.MaxRequestsSet = true
	return nil
}

func setHighPerformance(t *Target, on bool) error {
	t.Dir.HighPerformance = TristateFromBool(on)
	return nil
}

func setEnabled(t *Target, on bool) error {
	t.Dir.Enabled = TristateFromBool(on)
	return nil
}

func setRailsBaseURI(t *Target, arg string) error {
	t.Dir.RailsBaseURIs.Add(arg)
	return nil
}

func setRailsAutoDetect(t *Target, on bool) error {
	t.Dir.AutoDetectRails = TristateFromBool(on)
	return nil
}

func setRailsAllowRewrite(t *Target, on bool) error {
	t.Dir.AllowRewriteRules = TristateFromBool(on)
	return nil
}

func setRailsEnv(t *Target, arg string) error {
	t.Dir.RailsEnv = &arg
	return nil
}

func setRailsAppRoot(t *Target, arg string) error {
	t.Dir.AppRoot = &arg
	return nil
}

func setSpawnMethod(t *Target, arg string) error {
	switch arg {
	case "smart":
		t.Dir.SpawnMethod = SpawnSmart
	case "smart-lv2":
		t.Dir.SpawnMethod = SpawnSmartLV2
	case "conservative":
		t.Dir.SpawnMethod = SpawnConservative
	default:
		return directiveError("spawn_method",
			"'spawn_method' may only be 'smart', 'smart-lv2' or 'conservative'.")
	}
	return nil
}

func setFrameworkSpawnerIdleTime(t *Target, arg string) error {
	n, err := parseNumber("framework_spawner_idle_time", arg)
	if err != nil {
		return err
	}
	if n < 0 {
		return directiveError("framework_spawner_idle_time",
			"Value for 'framework_spawner_idle_time' must be at least 0.")
	}
	t.Dir.FrameworkSpawnerIdleTime = n
	return nil
}

func setAppSpawnerIdleTime(t *Target, arg string) error {
	n, err := parseNumber("app_spawner_idle_time", arg)
	if err != nil {
		return err
	}
	if n < 0 {
		return directiveError("app_spawner_idle_time",
			"Value for 'app_spawner_idle_time' must be at least 0.")
	}
	t.Dir.AppSpawnerIdleTime = n
	return nil
}

func setRackBaseURI(t *Target, arg string) error {
	t.Dir.RackBaseURIs.Add(arg)
	return nil
}

func setRackAutoDetect(t *Target, on bool) error {
	t.Dir.AutoDetectRack = TristateFromBool(on)
	return nil
}

func setRackEnv(t *Target, arg string) error {
	t.Dir.RackEnv = &arg
	return nil
}

func setWSGIAutoDetect(t *Target, on bool) error {
	t.Dir.AutoDetectWSGI = TristateFromBool(on)
	return nil
}
