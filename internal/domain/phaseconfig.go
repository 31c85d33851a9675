package domain

// PhaseConfig is the static, per-phase metadata table entry. AcclimationHours
// and CureHours are zero for phases they do not apply to.
type PhaseConfig struct {
	Label          string
	Icon           string
	EstimatedHours int
	// AcclimationHours is the default rest time a material must sit on site
	// before this phase may complete. Individual sessions may override it.
	AcclimationHours int
	// CureHours is the time required after install finishes before the next
	// phase may start.
	CureHours int
}

var phaseConfigs = map[Phase]PhaseConfig{
	PhaseDemo:        {Label: "Demolition", Icon: "🔨", EstimatedHours: 16},
	PhasePrep:        {Label: "Subfloor Prep", Icon: "📐", EstimatedHours: 24},
	PhaseAcclimation: {Label: "Acclimation", Icon: "🌡", EstimatedHours: 48, AcclimationHours: 48},
	PhaseInstall:     {Label: "Installation", Icon: "🪵", EstimatedHours: 40},
	PhaseCure:        {Label: "Cure", Icon: "⏳", EstimatedHours: 24, CureHours: 24},
	PhasePunch:       {Label: "Punch List", Icon: "📋", EstimatedHours: 8},
	PhaseCloseout:    {Label: "Closeout", Icon: "✅", EstimatedHours: 4},
}

// ConfigFor returns the static config for a phase. The second return is false
// for non-canonical phases; callers degrade rather than panic.
func ConfigFor(p Phase) (PhaseConfig, bool) {
	cfg, ok := phaseConfigs[p]
	return cfg, ok
}
