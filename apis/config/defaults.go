package config

// Default returns the baseline configuration every run starts from. Preset
// and user fields are overlaid on top of it, in that order.
func Default() *MOEADConfig {
	return &MOEADConfig{
		Decomposition: DecompositionConfig{Name: "sld", H: 99},
		Neighborhood:  NeighborhoodConfig{Name: "lambda", T: 20, Delta: 0.9},
		Variation: []OperatorConfig{
			{Name: "sbx", Pc: 1.0, EtaX: 20},
			{Name: "polymut", EtaM: 20},
			{Name: "truncate"},
		},
		Aggregation: AggregationConfig{Name: "wt"},
		Scaling:     ScalingConfig{Name: "none"},
		Constraint:  ConstraintConfig{Name: "none", Beta: 100},
		Update:      UpdateConfig{Name: "standard", Nr: 2},
		Resource:    ResourceConfig{Name: "none", Depth: 1},
		Stop:        []StopConfig{{Name: "maxiter", MaxIter: 200}},
		Echo:        EchoConfig{Name: "none", Period: 1},
	}
}

// PresetOriginal configures the run after the original MOEA/D: static
// lambda neighborhoods, SBX plus polynomial mutation, Tchebycheff
// aggregation, standard update.
func PresetOriginal() *MOEADConfig {
	return Default()
}

// PresetDE configures the run after MOEA/D-DE: differential mutation with
// binomial recombination and a bounded-replacement update.
func PresetDE() *MOEADConfig {
	cfg := Default()
	cfg.Variation = []OperatorConfig{
		{Name: "diffmut", Phi: 0.5},
		{Name: "binrec", Rho: 0.8},
		{Name: "polymut", EtaM: 20},
		{Name: "truncate"},
	}
	cfg.Update = UpdateConfig{Name: "best", Nr: 2}
	return cfg
}

// Merge overlays every set field of over onto base and returns base. A field
// counts as set when it differs from its zero value; strategy sub-structs
// replace wholesale once their Name is set, so a preset cannot leak
// parameters into a slot the user reconfigured.
func Merge(base, over *MOEADConfig) *MOEADConfig {
	if over == nil {
		return base
	}
	if over.Seed != 0 {
		base.Seed = over.Seed
	}
	if over.Decomposition.Name != "" || over.Decomposition.W != nil {
		base.Decomposition = over.Decomposition
	}
	if over.Neighborhood.Name != "" {
		base.Neighborhood = over.Neighborhood
	}
	if len(over.Variation) > 0 {
		base.Variation = over.Variation
	}
	if over.Aggregation.Name != "" {
		base.Aggregation = over.Aggregation
	}
	if over.Scaling.Name != "" {
		base.Scaling = over.Scaling
	}
	if over.Constraint.Name != "" {
		base.Constraint = over.Constraint
	}
	if over.Update.Name != "" {
		base.Update = over.Update
	}
	if over.Resource.Name != "" {
		base.Resource = over.Resource
	}
	if len(over.Stop) > 0 {
		base.Stop = over.Stop
	}
	if over.Echo.Name != "" {
		base.Echo = over.Echo
	}
	return base
}
