package emissions

import "math"

const (
	EarthRadiusKm = 6371.0

	// DefaultPassengers is the travelling party size of one squad trip.
	DefaultPassengers = 25

	// EmissionsPerPassengerKm is kilograms of CO2 per passenger-kilometre.
	EmissionsPerPassengerKm = 0.12

	// CostPerKm approximates a chartered flight.
	CostPerKm = 10.0

	// KgAbsorbedPerTree is the yearly CO2 one tree offsets.
	KgAbsorbedPerTree = 25.0

	// OffsetCostPerKg is the carbon-offset price per kilogram.
	OffsetCostPerKg = 0.025

	// HighEmissionThresholdKg flags trips rendered with the warning badge.
	HighEmissionThresholdKg = 10.0

	CruiseSpeedKmh = 800.0

	// Shares of the charter cost; they sum to 1.
	FuelCostShare      = 0.4
	PersonnelCostShare = 0.3
	OtherCostShare     = 0.3
)

// TripEstimate is the travel footprint of one team trip.
type TripEstimate struct {
	DistanceKm  float64
	EmissionsKg float64
	Cost        float64
}

// Distance returns the Haversine great-circle distance in kilometres.
// Inputs are degrees and are not validated.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Emissions returns kilograms of CO2 for the party, rounded to 2 decimals.
func Emissions(distanceKm float64, passengers int) float64 {
	return Round(distanceKm*EmissionsPerPassengerKm*float64(passengers), 2)
}

// Cost returns the estimated charter cost, rounded to 2 decimals.
func Cost(distanceKm float64) float64 {
	return Round(distanceKm*CostPerKm, 2)
}

// Estimate runs the distance, emissions and cost chain between two points.
// Emissions and cost are derived from the unrounded distance.
func Estimate(from, to Coordinates, passengers int) TripEstimate {
	distance := Distance(from.Lat, from.Lon, to.Lat, to.Lon)
	return TripEstimate{
		DistanceKm:  Round(distance, 1),
		EmissionsKg: Emissions(distance, passengers),
		Cost:        Cost(distance),
	}
}

// TreesToOffset is the number of trees needed to absorb the emissions.
func TreesToOffset(emissionsKg float64) int {
	if emissionsKg <= 0 {
		return 0
	}
	return int(math.Ceil(emissionsKg / KgAbsorbedPerTree))
}

func OffsetCost(emissionsKg float64) float64 {
	return Round(emissionsKg*OffsetCostPerKg, 2)
}

func IsHighEmission(emissionsKg float64) bool {
	return emissionsKg > HighEmissionThresholdKg
}

// FlightHours is the airborne time at cruise speed, rounded to 1 decimal.
func FlightHours(distanceKm float64) float64 {
	if distanceKm <= 0 {
		return 0
	}
	return Round(distanceKm/CruiseSpeedKmh, 1)
}

// CostShares splits a charter cost into its fuel, personnel and other parts.
type CostShares struct {
	Fuel      float64
	Personnel float64
	Other     float64
}

func CostBreakdown(cost float64) CostShares {
	return CostShares{
		Fuel:      Round(cost*FuelCostShare, 2),
		Personnel: Round(cost*PersonnelCostShare, 2),
		Other:     Round(cost*OtherCostShare, 2),
	}
}

func toRadians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// Round rounds v half away from zero to the given number of decimals.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
