package table

import "strings"

// Stage identifies one table of the almanac pipeline.
type Stage int

const (
	SeedToSoil Stage = iota
	SoilToFertilizer
	FertilizerToWater
	WaterToLight
	LightToTemperature
	TemperatureToHumidity
	HumidityToLocation
)

const NumStages = 7

// Stages lists every stage in the order values flow through them.
var Stages = [NumStages]Stage{
	SeedToSoil,
	SoilToFertilizer,
	FertilizerToWater,
	WaterToLight,
	LightToTemperature,
	TemperatureToHumidity,
	HumidityToLocation,
}

var stageKeywords = [NumStages]string{
	"seed-to-soil",
	"soil-to-fertilizer",
	"fertilizer-to-water",
	"water-to-light",
	"light-to-temperature",
	"temperature-to-humidity",
	"humidity-to-location",
}

// Keyword is the text identifying the stage's section header in the input.
func (s Stage) Keyword() string {
	if s < 0 || int(s) >= NumStages {
		return "unknown"
	}
	return stageKeywords[s]
}

func (s Stage) String() string {
	return s.Keyword()
}

// stageOf returns the stage whose keyword appears in the header line.
func stageOf(line string) (Stage, bool) {
	for _, s := range Stages {
		if strings.Contains(line, s.Keyword()) {
			return s, true
		}
	}
	return 0, false
}
