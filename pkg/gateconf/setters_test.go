package gateconf

import (
	"errors"
	"strings"
	"testing"
)

func newTarget() *Target {
	return &Target{
		Server: NewServerConfig(nil),
		Dir:    NewDirConfig(nil),
	}
}

func invoke(t *testing.T, target *Target, name, arg string) error {
	t.Helper()
	d, ok := Lookup(name)
	if !ok {
		t.Fatalf("directive %q not registered", name)
	}
	return d.Invoke(target, arg)
}

func mustInvoke(t *testing.T, target *Target, name, arg string) {
	t.Helper()
	if err := invoke(t, target, name, arg); err != nil {
		t.Fatalf("%s %q: unexpected error %v", name, arg, err)
	}
}

func wantMessage(t *testing.T, err error, want string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %q, got nil", want)
	}
	if err.Error() != want {
		t.Fatalf("error message = %q, want %q", err.Error(), want)
	}
	var de *DirectiveError
	if !errors.As(err, &de) {
		t.Fatalf("error should be a *DirectiveError, got %T", err)
	}
}

func TestLogLevelBounds(t *testing.T) {
	target := newTarget()

	mustInvoke(t, target, "log_level", "0")
	if !target.Server.LogLevelSet || target.Server.LogLevel != 0 {
		t.Fatalf("explicit log_level 0 must be recorded as set: %+v", target.Server)
	}
	mustInvoke(t, target, "log_level", "9")
	if target.Server.LogLevel != 9 {
		t.Fatalf("log_level = %d, want 9", target.Server.LogLevel)
	}

	wantMessage(t, invoke(t, target, "log_level", "-1"),
		"Value for 'log_level' must be between 0 and 9.")
	wantMessage(t, invoke(t, target, "log_level", "10"),
		"Value for 'log_level' must be between 0 and 9.")
	wantMessage(t, invoke(t, target, "log_level", "5x"),
		"Invalid number specified for 'log_level'.")
	if target.Server.LogLevel != 9 {
		t.Fatalf("failed invocations must leave the field untouched, got %d", target.Server.LogLevel)
	}
}

func TestMaxPoolSizeBounds(t *testing.T) {
	target := newTarget()
	wantMessage(t, invoke(t, target, "max_pool_size", "0"),
		"Value for 'max_pool_size' must be greater than 0.")
	if target.Server.MaxPoolSizeSet {
		t.Fatalf("rejected directive must not set the explicit-set flag")
	}
	mustInvoke(t, target, "max_pool_size", "1")
	if target.Server.MaxPoolSize != 1 || !target.Server.MaxPoolSizeSet {
		t.Fatalf("max_pool_size not applied: %+v", target.Server)
	}
}

func TestPoolIdleTimeBounds(t *testing.T) {
	target := newTarget()
	wantMessage(t, invoke(t, target, "pool_idle_time", "0"),
		"Value for 'pool_idle_time' must be greater than 0.")
	mustInvoke(t, target, "pool_idle_time", "1")
	if target.Server.PoolIdleTime != 1 || !target.Server.PoolIdleTimeSet {
		t.Fatalf("pool_idle_time not applied: %+v", target.Server)
	}
}

func TestMaxRequestsBounds(t *testing.T) {
	target := newTarget()
	mustInvoke(t, target, "max_requests", "0")
	if !target.Dir.MaxRequestsSet || target.Dir.MaxRequests != 0 {
		t.Fatalf("max_requests 0 is valid and must be recorded as set")
	}
	wantMessage(t, invoke(t, target, "max_requests", "-1"),
		"Value for 'max_requests' must be greater than or equal to 0.")
	wantMessage(t, invoke(t, target, "max_requests", "12three"),
		"Invalid number specified for 'max_requests'.")
}

func TestSpawnMethodChoices(t *testing.T) {
	target := newTarget()

	err := invoke(t, target, "spawn_method", "turbo")
	wantMessage(t, err, "'spawn_method' may only be 'smart', 'smart-lv2' or 'conservative'.")
	if target.Dir.SpawnMethod != SpawnUnset {
		t.Fatalf("rejected spawn_method must leave the field at its prior value")
	}

	for arg, want := range map[string]SpawnMethod{
		"smart":        SpawnSmart,
		"smart-lv2":    SpawnSmartLV2,
		"conservative": SpawnConservative,
	} {
		target := newTarget()
		mustInvoke(t, target, "spawn_method", arg)
		if target.Dir.SpawnMethod != want {
			t.Fatalf("spawn_method %q = %v, want %v", arg, target.Dir.SpawnMethod, want)
		}
	}
}

func TestSpawnerIdleTimes(t *testing.T) {
	target := newTarget()
	mustInvoke(t, target, "framework_spawner_idle_time", "0")
	if target.Dir.FrameworkSpawnerIdleTime != 0 {
		t.Fatalf("framework_spawner_idle_time = %d, want 0", target.Dir.FrameworkSpawnerIdleTime)
	}
	wantMessage(t, invoke(t, target, "framework_spawner_idle_time", "-5"),
		"Value for 'framework_spawner_idle_time' must be at least 0.")
	wantMessage(t, invoke(t, target, "app_spawner_idle_time", "-1"),
		"Value for 'app_spawner_idle_time' must be at least 0.")
	mustInvoke(t, target, "app_spawner_idle_time", "120")
	if target.Dir.AppSpawnerIdleTime != 120 {
		t.Fatalf("app_spawner_idle_time = %d, want 120", target.Dir.AppSpawnerIdleTime)
	}
}

func TestBaseURIInsertionIsIdempotent(t *testing.T) {
	target := newTarget()
	mustInvoke(t, target, "rails_base_uri", "/app1")
	mustInvoke(t, target, "rails_base_uri", "/app1")
	mustInvoke(t, target, "rails_base_uri", "/app2")
	if got := target.Dir.RailsBaseURIs.Values(); len(got) != 2 {
		t.Fatalf("rails base URIs = %v, want two entries", got)
	}
	mustInvoke(t, target, "rack_base_uri", "/sinatra")
	if !target.Dir.RackBaseURIs.Contains("/sinatra") {
		t.Fatalf("rack base URI not inserted")
	}
	if target.Dir.RailsBaseURIs.Contains("/sinatra") {
		t.Fatalf("rack reservation leaked into the rails set")
	}
}

func TestFlagDirectives(t *testing.T) {
	target := newTarget()
	mustInvoke(t, target, "enabled", "off")
	mustInvoke(t, target, "high_performance", "on")
	mustInvoke(t, target, "use_global_queue", "yes")
	mustInvoke(t, target, "rails_auto_detect", "no")
	mustInvoke(t, target, "rack_auto_detect", "true")
	mustInvoke(t, target, "wsgi_auto_detect", "false")
	mustInvoke(t, target, "rails_allow_rewrite", "on")

	d := target.Dir
	if d.Enabled != Disabled || d.HighPerformance != Enabled || d.UseGlobalQueue != Enabled {
		t.Fatalf("flag tri-states wrong: %+v", d)
	}
	if d.AutoDetectRails != Disabled || d.AutoDetectRack != Enabled || d.AutoDetectWSGI != Disabled {
		t.Fatalf("auto-detect tri-states wrong: %+v", d)
	}
	if d.AllowRewriteRules != Enabled {
		t.Fatalf("rails_allow_rewrite not applied")
	}

	wantMessage(t, invoke(t, target, "enabled", "banana"),
		"Value for 'enabled' must be 'on' or 'off'.")
}

func TestUserSwitchingTracksExplicitSet(t *testing.T) {
	target := newTarget()
	if target.Server.UserSwitchingSet {
		t.Fatalf("fresh record must not report user_switching as set")
	}
	mustInvoke(t, target, "user_switching", "off")
	if target.Server.UserSwitching || !target.Server.UserSwitchingSet {
		t.Fatalf("user_switching off not recorded: %+v", target.Server)
	}
}

func TestServerStringDirectives(t *testing.T) {
	target := newTarget()
	mustInvoke(t, target, "root", "/opt/appgate")
	mustInvoke(t, target, "ruby", "/usr/bin/ruby1.8")
	mustInvoke(t, target, "default_user", "www-data")
	s := target.Server
	if s.Root == nil || *s.Root != "/opt/appgate" {
		t.Fatalf("root not applied: %+v", s)
	}
	if s.Ruby == nil || *s.Ruby != "/usr/bin/ruby1.8" {
		t.Fatalf("ruby not applied: %+v", s)
	}
	if s.DefaultUser == nil || *s.DefaultUser != "www-data" {
		t.Fatalf("default_user not applied: %+v", s)
	}
}

func TestDirStringDirectives(t *testing.T) {
	target := newTarget()
	mustInvoke(t, target, "rails_env", "staging")
	mustInvoke(t, target, "rack_env", "development")
	mustInvoke(t, target, "rails_app_root", "/srv/app")
	d := target.Dir
	if d.RailsEnv == nil || *d.RailsEnv != "staging" {
		t.Fatalf("rails_env not applied")
	}
	if d.RackEnv == nil || *d.RackEnv != "development" {
		t.Fatalf("rack_env not applied")
	}
	if d.AppRoot == nil || *d.AppRoot != "/srv/app" {
		t.Fatalf("rails_app_root not applied")
	}
}

func TestLegacyAliasesReuseCurrentSetters(t *testing.T) {
	target := newTarget()
	mustInvoke(t, target, "rails_ruby", "/usr/bin/ruby")
	mustInvoke(t, target, "rails_max_pool_size", "8")
	mustInvoke(t, target, "rails_max_instances_per_app", "2")
	mustInvoke(t, target, "rails_pool_idle_time", "60")
	mustInvoke(t, target, "rails_user_switching", "off")
	mustInvoke(t, target, "rails_default_user", "deploy")

	s := target.Server
	if s.Ruby == nil || *s.Ruby != "/usr/bin/ruby" {
		t.Fatalf("rails_ruby alias did not write the ruby field")
	}
	if s.MaxPoolSize != 8 || !s.MaxPoolSizeSet {
		t.Fatalf("rails_max_pool_size alias not applied: %+v", s)
	}
	if s.MaxInstancesPerApp != 2 || !s.MaxInstancesPerAppSet {
		t.Fatalf("rails_max_instances_per_app alias not applied: %+v", s)
	}
	if s.PoolIdleTime != 60 || !s.PoolIdleTimeSet {
		t.Fatalf("rails_pool_idle_time alias not applied: %+v", s)
	}
	if s.UserSwitching || !s.UserSwitchingSet {
		t.Fatalf("rails_user_switching alias not applied: %+v", s)
	}
	if s.DefaultUser == nil || *s.DefaultUser != "deploy" {
		t.Fatalf("rails_default_user alias not applied: %+v", s)
	}

	// Alias validation reuses the target's messages verbatim.
	wantMessage(t, invoke(t, target, "rails_max_pool_size", "0"),
		"Value for 'max_pool_size' must be greater than 0.")
}

func TestObsoleteSpawnServerWarnsAndSucceeds(t *testing.T) {
	var warnings []string
	target := newTarget()
	target.Warn = func(msg string) { warnings = append(warnings, msg) }

	before := *target.Server
	mustInvoke(t, target, "spawn_server", "/usr/bin/spawn-server")
	if *target.Server != before {
		t.Fatalf("obsolete directive must not mutate the record")
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "obsolete") {
		t.Fatalf("expected one obsolete warning, got %v", warnings)
	}
}
