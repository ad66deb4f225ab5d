package config

// LoaderStateID identifies a stage of the loading sequence.
type LoaderStateID int

const (
	LoaderIdle          LoaderStateID = iota // waiting for the start delay
	LoaderCounting                           // stepping toward the target
	LoaderComplete                           // target reached, holding
	LoaderTransitioning                      // fade and cover running
	LoaderNavigated                          // terminal
)

var loaderStateNames = map[LoaderStateID]string{
	LoaderIdle:          "idle",
	LoaderCounting:      "counting",
	LoaderComplete:      "complete",
	LoaderTransitioning: "transitioning",
	LoaderNavigated:     "navigated",
}

func (s LoaderStateID) String() string {
	if name, ok := loaderStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// ProgressBand classifies a counter value by its percentage of the target.
type ProgressBand int

const (
	BandNormal ProgressBand = iota
	BandEdge                // p < 10 or p > 90
	BandMiddle              // 30 < p < 70
)

func (b ProgressBand) String() string {
	switch b {
	case BandEdge:
		return "edge"
	case BandMiddle:
		return "middle"
	default:
		return "normal"
	}
}

// BandFor returns the band of count on a 0..target scale.
func BandFor(count, target int) ProgressBand {
	if target <= 0 {
		return BandNormal
	}
	p := float64(count) / float64(target) * 100
	switch {
	case p < 10 || p > 90:
		return BandEdge
	case p > 30 && p < 70:
		return BandMiddle
	default:
		return BandNormal
	}
}

// Multiplier returns the delay multiplier of the band.
func (b ProgressBand) Multiplier() float64 {
	switch b {
	case BandEdge:
		return Loader.EdgeMultiplier
	case BandMiddle:
		return Loader.MiddleMultiplier
	default:
		return 1.0
	}
}
