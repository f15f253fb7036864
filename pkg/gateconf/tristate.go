package gateconf

// Tristate is a boolean-like value with an explicit "not specified" state.
// Records are created with every tri-state field Unset; setter handlers only
// ever assign Enabled or Disabled.
type Tristate int8

const (
	Unset Tristate = iota
	Enabled
	Disabled
)

// TristateFromBool maps a flag argument to Enabled or Disabled.
func TristateFromBool(on bool) Tristate {
	if on {
		return Enabled
	}
	return Disabled
}

// Bool resolves the tri-state to a definite value, falling back to def when
// the field was never specified.
func (t Tristate) Bool(def bool) bool {
	switch t {
	case Enabled:
		return true
	case Disabled:
		return false
	default:
		return def
	}
}

func (t Tristate) String() string {
	switch t {
	case Enabled:
		return "enabled"
	case Disabled:
		return "disabled"
	default:
		return "unset"
	}
}

// mergeTristate is the cascade rule for every tri-state field: the override
// wins unless it is Unset.
func mergeTristate(base, override Tristate) Tristate {
	if override == Unset {
		return base
	}
	return override
}

// mergeString is the cascade rule for nullable string fields: the override
// wins if it was specified (non-nil), else the base value is inherited.
func mergeString(base, override *string) *string {
	if override == nil {
		return base
	}
	return override
}
