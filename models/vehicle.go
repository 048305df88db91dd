package models

// ═══════════════════════════════════════════════════════════
// Van Database Models
// ═══════════════════════════════════════════════════════════

// Van is one row of the van database. (year, make, model) is not unique:
// trims sharing all three may differ in model_number, roof or wheelbase.
type Van struct {
	Year        int    `json:"year"`
	Make        string `json:"make"`
	Model       string `json:"model"`
	ModelNumber string `json:"model_number"`
	Type        string `json:"type,omitempty"`
	Roof        string `json:"roof,omitempty"`
	Wheelbase   string `json:"wheelbase,omitempty"`
	Engine      string `json:"engine,omitempty"`
}

// VansDocument mirrors the raw vans.json layout.
type VansDocument struct {
	Vans []Van `json:"vans"`
}

// VanSpec is a partial van description. Zero-valued fields are wildcards.
type VanSpec struct {
	Year      int    `json:"year,omitempty" form:"year"`
	Make      string `json:"make,omitempty" form:"make"`
	Model     string `json:"model,omitempty" form:"model"`
	Type      string `json:"type,omitempty" form:"type"`
	Roof      string `json:"roof,omitempty" form:"roof"`
	Wheelbase string `json:"wheelbase,omitempty" form:"wheelbase"`
	Engine    string `json:"engine,omitempty" form:"engine"`
}

// IsZero reports whether no field of the spec is set.
func (s VanSpec) IsZero() bool {
	return s == VanSpec{}
}

// Matches reports whether the van satisfies every set field of the spec.
// Comparison is exact equality; absent fields are wildcards.
func (s VanSpec) Matches(v Van) bool {
	if s.Year != 0 && v.Year != s.Year {
		return false
	}
	if s.Make != "" && v.Make != s.Make {
		return false
	}
	if s.Model != "" && v.Model != s.Model {
		return false
	}
	if s.Type != "" && v.Type != s.Type {
		return false
	}
	if s.Roof != "" && v.Roof != s.Roof {
		return false
	}
	if s.Wheelbase != "" && v.Wheelbase != s.Wheelbase {
		return false
	}
	if s.Engine != "" && v.Engine != s.Engine {
		return false
	}
	return true
}

// ModelOption is one entry of the model selector: a model name plus the
// model number of the first trim encountered in load order for that model.
type ModelOption struct {
	Model       string `json:"model"`
	ModelNumber string `json:"modelNumber,omitempty"`
}
