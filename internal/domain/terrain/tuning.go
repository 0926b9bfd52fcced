package terrain

// Generation tuning constants. These are fixed by design rather than
// exposed through Options; changing any of them changes every world
// produced from a given seed.
const (
	// Elevation seeds land in [seedElevationMin, 255].
	seedElevationMin  = 100
	seedElevationSpan = 156

	// Noise frequency for the continents style.
	continentsFrequency = 0.05

	// Water depth grows with how far below the threshold a cell sits.
	waterDepthPerUnit = 2
	waterDepthMin     = 1

	// Flow classification by flooded Moore neighbors.
	riverNeighborMin = 4

	// Climate.
	temperatureBase       = 200
	temperatureWaterBonus = 20
	rainfallBase          = 100
	rainfallWaterBonus    = 50
	rainfallHillBonus     = 30
	rainfallHillMinElev   = 120
	rainfallHillMaxElev   = 180
	rainfallPeakPenalty   = 40
	rainfallPeakElev      = 200
	arcticMaxTemperature  = 80
	desertMinTemperature  = 180
	desertMaxRainfall     = 80
	tropicalMinTemp       = 160

	// Biome boundaries.
	mountainMinElevation   = 200
	tropicalLowlandMaxElev = 100
	temperateForestMinElev = 140

	// Soil.
	fertilityWaterBonus    = 40
	fertilityValleyBonus   = 20
	fertilityValleyMinElev = 100
	fertilityValleyMaxElev = 160

	// Resources.
	mineralMinElevation = 160
	mineralChance       = 0.10
	magicJitterSpan     = 5

	// Settlements.
	settlementMaxElevation = 200
	farmlandMinFertility   = 80
	farmlandMaxElevation   = 180
	scoreWaterBonus        = 50.0
	scorePerMineral        = 30.0
	scoreElevationPenalty  = 0.5
	scoreIdealElevation    = 128.0
	townMinScore           = 200.0
	villageMinScore        = 150.0
	hamletMinScore         = 100.0
	townPopulation         = 200
	villagePopulation      = 150
	hamletPopulation       = 100
	farmsteadPopulation    = 60
	farmlandRingPopulation = 40

	// Special features.
	dungeonMinElevation   = 180
	dungeonChance         = 0.7
	denseForestVegetation = 150
	shrineChance          = 0.5
	shrineMinMagic        = 180
	dungeonDangerBoost    = 80
	ruinsDangerBoost      = 40
	shrineDangerBoost     = 50
)
