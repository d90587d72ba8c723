package schema

// CrimeSubArea is a named area under a city with its own raw score.
type CrimeSubArea struct {
	Name  string `yaml:"name"`
	Score int    `yaml:"score"`
}

// CrimeCity is a city entry of the reference table.
type CrimeCity struct {
	Name     string         `yaml:"name"`
	Score    int            `yaml:"score"`
	SubAreas []CrimeSubArea `yaml:"sub_areas,omitempty"`
}

// CrimeState groups cities under a state.
type CrimeState struct {
	Name   string      `yaml:"name"`
	Cities []CrimeCity `yaml:"cities"`
}

// CrimeTable is the static State -> City -> SubArea score reference.
// It is loaded once at startup and never mutated. Slice order is the
// declaration order of the data file and is part of the lookup
// contract: the first matching entry wins.
type CrimeTable struct {
	States []CrimeState `yaml:"states"`
}

// RiskBreakdown is the normalized three-component crime score returned
// for an area. Components are equal thirds of the normalized total;
// consumers combine them as theft + assault*2 + fraud.
type RiskBreakdown struct {
	Theft   int `json:"theft"`
	Assault int `json:"assault"`
	Fraud   int `json:"fraud"`
}
