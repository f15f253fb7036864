package gateconf

// SpawnMethod selects the application spawn strategy for a directory scope.
type SpawnMethod int8

const (
	SpawnUnset SpawnMethod = iota
	SpawnSmart
	SpawnSmartLV2
	SpawnConservative
)

func (m SpawnMethod) String() string {
	switch m {
	case SpawnSmart:
		return "smart"
	case SpawnSmartLV2:
		return "smart-lv2"
	case SpawnConservative:
		return "conservative"
	default:
		return "unset"
	}
}

// mergeSpawnMethod follows the same projection rule as tri-state fields.
func mergeSpawnMethod(base, override SpawnMethod) SpawnMethod {
	if override == SpawnUnset {
		return base
	}
	return override
}
