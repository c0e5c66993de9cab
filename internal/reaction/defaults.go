package reaction

// Defaults returns the built-in methane oxidation chain used when no reaction
// file is available.
func Defaults() []Reaction {
	return []Reaction{
		{Reactant: "CH4", Type: "Oxidation", Product: "CH3OH"},
		{Reactant: "CH3OH", Type: "Oxidation", Product: "HCHO"},
		{Reactant: "HCHO", Type: "Oxidation", Product: "HCOOH"},
		{Reactant: "HCOOH", Type: "Oxidation", Product: "CO2"},
	}
}
