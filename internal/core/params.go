package core

// HeatParams configures the heatmap kernel.
type HeatParams struct {
	THeater float64
	TCooler float64
	TEnv    float64
	KTemp   float64
}

// TickParams configures the tick kernel.
type TickParams struct {
	PChangeDir float64
	PWall      float64
	PMeet      float64
	MinWait    int
	KStay      float64
	TIdeal     float64
}
