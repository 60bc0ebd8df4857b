package physics

// Reference tuning.
const (
	RepelRadius2   = 90000.0 // 300 units
	RepelStrength  = 1000.0
	MinDist2       = 1e-4
	ShipRadius2    = 1600.0 // 40 units
	ShipStrength   = 100000.0
	ShipGridStep   = 10.0
	ShipGridAcross = 4 // i in [-4, 4)
	ShipGridAlong  = 9 // j in [-9, 9)

	// smoothBand is the outer fraction of the repel radius over which the
	// optional taper runs.
	smoothBand = 0.1
)

// Params tunes inter-particle repulsion.
type Params struct {
	Radius2  float64
	Strength float64
	// MinDist2 floors the squared distance before dividing.
	MinDist2 float64
	// SmoothCutoff tapers the force linearly to zero over the outer band of
	// the radius instead of dropping it at the edge.
	SmoothCutoff bool
}

func DefaultParams() Params {
	return Params{
		Radius2:  RepelRadius2,
		Strength: RepelStrength,
		MinDist2: MinDist2,
	}
}

// ShipParams tunes the hull field.
type ShipParams struct {
	Radius2  float64
	Strength float64
	Step     float64
	Across   int
	Along    int
	MinDist2 float64
}

func DefaultShipParams() ShipParams {
	return ShipParams{
		Radius2:  ShipRadius2,
		Strength: ShipStrength,
		Step:     ShipGridStep,
		Across:   ShipGridAcross,
		Along:    ShipGridAlong,
		MinDist2: MinDist2,
	}
}
