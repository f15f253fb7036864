package confhost

import "github.com/hostbridge/appgate/pkg/gateconf"

// Result is the fully resolved configuration: one globally uniform
// server-scope configuration (after normalization all servers share it) and
// the per-server location trees. Every field is definite — sentinels never
// appear here.
type Result struct {
	Servers []ServerReport `json:"servers"`
}

// ServerReport is the resolved view of one server block.
type ServerReport struct {
	Name   string          `json:"name"`
	Config EffectiveServer `json:"config"`
	Root   DirReport       `json:"root"`
}

// DirReport is the resolved view of one directory/location scope.
type DirReport struct {
	Path     string       `json:"path"`
	Config   EffectiveDir `json:"config"`
	Children []DirReport  `json:"children,omitempty"`
}

// EffectiveServer snapshots a normalized server record with defaults
// applied.
type EffectiveServer struct {
	Ruby               string `json:"ruby"`
	Root               string `json:"root,omitempty"`
	LogLevel           int    `json:"log_level"`
	MaxPoolSize        uint   `json:"max_pool_size"`
	MaxInstancesPerApp uint   `json:"max_instances_per_app"`
	PoolIdleTime       uint   `json:"pool_idle_time"`
	UserSwitching      bool   `json:"user_switching"`
	DefaultUser        string `json:"default_user"`
}

// EffectiveDir snapshots a resolved directory record with defaults applied.
type EffectiveDir struct {
	Enabled                  bool     `json:"enabled"`
	AutoDetectRails          bool     `json:"rails_auto_detect"`
	AutoDetectRack           bool     `json:"rack_auto_detect"`
	AutoDetectWSGI           bool     `json:"wsgi_auto_detect"`
	AllowRewriteRules        bool     `json:"rails_allow_rewrite"`
	RailsEnv                 string   `json:"rails_env"`
	RackEnv                  string   `json:"rack_env"`
	AppRoot                  string   `json:"app_root,omitempty"`
	SpawnMethod              string   `json:"spawn_method"`
	FrameworkSpawnerIdleTime int64    `json:"framework_spawner_idle_time"`
	AppSpawnerIdleTime       int64    `json:"app_spawner_idle_time"`
	MaxRequests              uint     `json:"max_requests"`
	MemoryLimit              uint     `json:"memory_limit"`
	HighPerformance          bool     `json:"high_performance"`
	UseGlobalQueue           bool     `json:"use_global_queue"`
	RailsBaseURIs            []string `json:"rails_base_uris"`
	RackBaseURIs             []string `json:"rack_base_uris"`
}

func snapshotServer(c *gateconf.ServerConfig) EffectiveServer {
	return EffectiveServer{
		Ruby:               c.EffectiveRuby(),
		Root:               c.EffectiveRoot(),
		LogLevel:           c.LogLevel,
		MaxPoolSize:        c.MaxPoolSize,
		MaxInstancesPerApp: c.MaxInstancesPerApp,
		PoolIdleTime:       c.PoolIdleTime,
		UserSwitching:      c.UserSwitching,
		DefaultUser:        c.EffectiveDefaultUser(),
	}
}

func snapshotDir(c *gateconf.DirConfig) EffectiveDir {
	return EffectiveDir{
		Enabled:                  c.EffectiveEnabled(),
		AutoDetectRails:          c.EffectiveAutoDetectRails(),
		AutoDetectRack:           c.EffectiveAutoDetectRack(),
		AutoDetectWSGI:           c.EffectiveAutoDetectWSGI(),
		AllowRewriteRules:        c.EffectiveAllowRewriteRules(),
		RailsEnv:                 c.EffectiveRailsEnv(),
		RackEnv:                  c.EffectiveRackEnv(),
		AppRoot:                  c.EffectiveAppRoot(),
		SpawnMethod:              c.EffectiveSpawnMethod().String(),
		FrameworkSpawnerIdleTime: c.EffectiveFrameworkSpawnerIdleTime(),
		AppSpawnerIdleTime:       c.EffectiveAppSpawnerIdleTime(),
		MaxRequests:              c.EffectiveMaxRequests(),
		MemoryLimit:              c.EffectiveMemoryLimit(),
		HighPerformance:          c.EffectiveHighPerformance(),
		UseGlobalQueue:           c.EffectiveUseGlobalQueue(),
		RailsBaseURIs:            c.RailsBaseURIs.Values(),
		RackBaseURIs:             c.RackBaseURIs.Values(),
	}
}
