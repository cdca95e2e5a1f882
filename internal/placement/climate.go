package placement

// Wide temperature defaults used when no representative creature can be
// resolved, and the fixed rainfall floor. There is no per-species water
// requirement, so rainfall does not vary by population.
const (
	DefaultMinTemp     = -200.0
	DefaultMaxTemp     = 200.0
	DefaultMinRainfall = 700.0
)

// ClimateProfile is the tolerance window for one placement request.
type ClimateProfile struct {
	MinTemp     float64
	MaxTemp     float64
	MinRainfall float64
}

// Rejection says why a candidate was turned down.
type Rejection uint8

const (
	Accepted Rejection = iota
	RejectedByValidator
	RejectedByTemperature
	RejectedByRainfall
)

// String returns a short name for the rejection reason.
func (r Rejection) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case RejectedByValidator:
		return "validator"
	case RejectedByTemperature:
		return "temperature"
	case RejectedByRainfall:
		return "rainfall"
	default:
		return "unknown"
	}
}

// TemperatureAvoidance is the percent chance a tile diff degrees outside the
// comfort band is rejected. It grows quadratically and passes 99 at diff 36.
func TemperatureAvoidance(diff int) int {
	if diff <= 0 {
		return 0
	}
	return diff*diff/15 + diff/2
}

// RainfallAvoidance is the percent chance a riverless tile rainDiff below the
// rainfall floor is rejected.
func RainfallAvoidance(rainDiff, minRainfall int) int {
	if rainDiff <= 0 || minRainfall <= 0 {
		return 0
	}
	return rainDiff * 100 / minRainfall
}

// temperatureDiff is the whole-degree distance of temp outside the band.
func (p ClimateProfile) temperatureDiff(temp float64) int {
	switch {
	case temp < p.MinTemp:
		return int(p.MinTemp - temp)
	case temp > p.MaxTemp:
		return int(temp - p.MaxTemp)
	default:
		return 0
	}
}

// judge rolls the temperature and rainfall checks for t. Each check draws a
// die only when the tile is outside the window.
func (p ClimateProfile) judge(t Tile, dice Dice) Rejection {
	if t.Temperature < p.MinTemp || t.Temperature > p.MaxTemp {
		avoidance := TemperatureAvoidance(p.temperatureDiff(t.Temperature))
		if dice.Intn(100) < avoidance {
			return RejectedByTemperature
		}
	}
	if t.Rainfall < p.MinRainfall && !t.HasRiver() {
		rainDiff := int(p.MinRainfall - t.Rainfall)
		avoidance := RainfallAvoidance(rainDiff, int(p.MinRainfall))
		if dice.Intn(100) < avoidance {
			return RejectedByRainfall
		}
	}
	return Accepted
}
