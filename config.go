package plexus

// Config holds the tunable parameters of a simulation. The zero value is not
// usable; start from DefaultConfig. All fields decode from TOML so the cmds
// can overlay a config file onto the defaults.
type Config struct {
	// Population
	InitialCount int // particles created by Reset
	MinCount     int // Remove never drops the population below this

	// Motion
	MaxSpeed float64 // velocity magnitude cap
	Drag     float64 // per-frame multiplicative velocity decay, < 1
	Jitter   float64 // magnitude of the per-frame random perturbation

	// Pointer forcing
	PointerStrength float64 // force scale, divided by distance
	PointerMaxForce float64 // cap on the pointer force magnitude
	PointerEpsilon  float64 // below this distance the pointer force is skipped

	// Appearance
	SizeMin    float64 // smallest base size
	SizeMax    float64 // largest base size
	PulseSpeed float64 // radians per frame added to the size oscillation
	HueStep    float64 // degrees of hue advance per frame

	// Connections
	ConnectionRadius float64 // particles closer than this are linked
	LineWidth        float64 // stroke weight of a zero-distance connection

	// Index
	TreeCapacity int // particles per quadtree node before subdivision
}

// DefaultConfig are the parameters used when no config file is given.
var DefaultConfig = Config{
	InitialCount: 150,
	MinCount:     10,

	MaxSpeed: 2.0,
	Drag:     0.98,
	Jitter:   0.05,

	PointerStrength: 60,
	PointerMaxForce: 1.5,
	PointerEpsilon:  1e-4,

	SizeMin:    2,
	SizeMax:    5,
	PulseSpeed: 0.05,
	HueStep:    0.5,

	ConnectionRadius: 120,
	LineWidth:        2,

	TreeCapacity: 4,
}
