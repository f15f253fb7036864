package gateconf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func strptr(s string) *string { return &s }

func TestMergeDir_ChildInheritsEverythingUnlessOverridden(t *testing.T) {
	base := NewDirConfig(nil)
	base.Enabled = Enabled
	base.AutoDetectRails = Disabled
	base.RailsEnv = strptr("staging")
	base.SpawnMethod = SpawnConservative
	base.FrameworkSpawnerIdleTime = 900
	base.HighPerformance = Enabled

	override := NewDirConfig(nil)

	got := MergeDir(nil, base, override)
	if got == base || got == override {
		t.Fatalf("merge must produce a fresh record")
	}
	if got.Enabled != Enabled || got.AutoDetectRails != Disabled {
		t.Fatalf("tri-states not inherited: %+v", got)
	}
	if got.RailsEnv == nil || *got.RailsEnv != "staging" {
		t.Fatalf("rails env not inherited")
	}
	if got.SpawnMethod != SpawnConservative {
		t.Fatalf("spawn method not inherited")
	}
	if got.FrameworkSpawnerIdleTime != 900 {
		t.Fatalf("sentinel timeout must inherit, got %d", got.FrameworkSpawnerIdleTime)
	}
	if got.HighPerformance != Enabled {
		t.Fatalf("high performance not inherited")
	}
}

func TestMergeDir_OverrideWins(t *testing.T) {
	base := NewDirConfig(nil)
	base.Enabled = Enabled
	base.RailsEnv = strptr("production")
	base.AppRoot = strptr("/srv/old")
	base.SpawnMethod = SpawnSmart
	base.AppSpawnerIdleTime = 600
	base.UseGlobalQueue = Disabled

	override := NewDirConfig(nil)
	override.Enabled = Disabled
	override.RailsEnv = strptr("test")
	override.SpawnMethod = SpawnSmartLV2
	override.AppSpawnerIdleTime = 30
	override.UseGlobalQueue = Enabled

	got := MergeDir(nil, base, override)
	if got.Enabled != Disabled || got.UseGlobalQueue != Enabled {
		t.Fatalf("tri-state override lost: %+v", got)
	}
	if *got.RailsEnv != "test" {
		t.Fatalf("rails env override lost")
	}
	if *got.AppRoot != "/srv/old" {
		t.Fatalf("app root must inherit when override is nil")
	}
	if got.SpawnMethod != SpawnSmartLV2 || got.AppSpawnerIdleTime != 30 {
		t.Fatalf("enum/sentinel override lost: %+v", got)
	}
}

func TestMergeDir_SetUnion(t *testing.T) {
	base := NewDirConfig(nil)
	base.RailsBaseURIs = NewStringSet("/app1", "/shared")
	override := NewDirConfig(nil)
	override.RailsBaseURIs = NewStringSet("/shared", "/app2")

	got := MergeDir(nil, base, override)
	want := []string{"/app1", "/app2", "/shared"}
	if diff := cmp.Diff(want, got.RailsBaseURIs.Values()); diff != "" {
		t.Fatalf("union mismatch (-want +got):\n%s", diff)
	}

	// Commutative and idempotent for set fields.
	swapped := MergeDir(nil, override, base)
	if diff := cmp.Diff(got.RailsBaseURIs.Values(), swapped.RailsBaseURIs.Values()); diff != "" {
		t.Fatalf("set union must be commutative (-a +b):\n%s", diff)
	}
	self := MergeDir(nil, base, base)
	if diff := cmp.Diff(base.RailsBaseURIs.Values(), self.RailsBaseURIs.Values()); diff != "" {
		t.Fatalf("merge(X, X) must equal X for set fields (-want +got):\n%s", diff)
	}
}

func TestMergeDir_ExplicitSetFlagsAreMonotonic(t *testing.T) {
	base := NewDirConfig(nil)
	base.MaxRequests = 100
	base.MaxRequestsSet = true

	child := NewDirConfig(nil)
	merged := MergeDir(nil, base, child)
	if merged.MaxRequests != 100 || !merged.MaxRequestsSet {
		t.Fatalf("request limit must survive an empty child: %+v", merged)
	}

	grandchild := NewDirConfig(nil)
	grandchild.MaxRequests = 5
	grandchild.MaxRequestsSet = true
	merged = MergeDir(nil, merged, grandchild)
	if merged.MaxRequests != 5 || !merged.MaxRequestsSet {
		t.Fatalf("explicit override must win while the flag stays set: %+v", merged)
	}

	// Once set anywhere in the ancestry, the flag never clears again.
	deeper := MergeDir(nil, merged, NewDirConfig(nil))
	if !deeper.MaxRequestsSet {
		t.Fatalf("explicit-set flag must be monotonic down the cascade")
	}
}

func TestMergeDir_MemoryLimitFollowsExplicitSetPattern(t *testing.T) {
	base := NewDirConfig(nil)
	base.MemoryLimit = 256
	base.MemoryLimitSet = true
	override := NewDirConfig(nil)

	got := MergeDir(nil, base, override)
	if got.MemoryLimit != 256 || !got.MemoryLimitSet {
		t.Fatalf("memory limit merge wrong: %+v", got)
	}
}

func TestMergeDir_DoesNotMutateInputs(t *testing.T) {
	base := NewDirConfig(nil)
	base.RailsBaseURIs = NewStringSet("/a")
	base.Enabled = Enabled
	baseCopy := *base
	baseURIs := base.RailsBaseURIs.Values()

	override := NewDirConfig(nil)
	override.RailsBaseURIs = NewStringSet("/b")
	override.Enabled = Disabled

	_ = MergeDir(nil, base, override)

	if base.Enabled != baseCopy.Enabled {
		t.Fatalf("base mutated")
	}
	if diff := cmp.Diff(baseURIs, base.RailsBaseURIs.Values()); diff != "" {
		t.Fatalf("base set mutated (-want +got):\n%s", diff)
	}
	if override.RailsBaseURIs.Contains("/a") {
		t.Fatalf("override set mutated")
	}
}
