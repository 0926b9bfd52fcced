package terrain

import (
	"encoding/json"
	"fmt"
	"math/bits"
	"strings"
)

// WaterFlow describes how water moves through a flooded cell.
type WaterFlow uint8

const (
	FlowNone WaterFlow = iota
	FlowStream
	FlowRiver
	FlowLake
)

var waterFlowNames = [...]string{"none", "stream", "river", "lake"}

func (f WaterFlow) String() string { return enumName(waterFlowNames[:], uint8(f)) }

func (f WaterFlow) MarshalJSON() ([]byte, error) { return json.Marshal(f.String()) }

func (f *WaterFlow) UnmarshalJSON(b []byte) error {
	v, err := enumValue("water flow", waterFlowNames[:], b)
	if err != nil {
		return err
	}
	*f = WaterFlow(v)
	return nil
}

// ClimateZone is the coarse climate classification derived from
// temperature and rainfall.
type ClimateZone uint8

const (
	ClimateTemperate ClimateZone = iota
	ClimateArctic
	ClimateTropical
	ClimateDesert
)

var climateZoneNames = [...]string{"temperate", "arctic", "tropical", "desert"}

func (z ClimateZone) String() string { return enumName(climateZoneNames[:], uint8(z)) }

func (z ClimateZone) MarshalJSON() ([]byte, error) { return json.Marshal(z.String()) }

func (z *ClimateZone) UnmarshalJSON(b []byte) error {
	v, err := enumValue("climate zone", climateZoneNames[:], b)
	if err != nil {
		return err
	}
	*z = ClimateZone(v)
	return nil
}

// BiomeType is the dominant biome of a cell. The zero value is ocean,
// which is also what water cells keep throughout generation.
type BiomeType uint8

const (
	BiomeOcean BiomeType = iota
	BiomeGrassland
	BiomeForest
	BiomeDesert
	BiomeMountain
	BiomeTundra
)

var biomeTypeNames = [...]string{"ocean", "grassland", "forest", "desert", "mountain", "tundra"}

func (b BiomeType) String() string { return enumName(biomeTypeNames[:], uint8(b)) }

func (b BiomeType) MarshalJSON() ([]byte, error) { return json.Marshal(b.String()) }

func (b *BiomeType) UnmarshalJSON(raw []byte) error {
	v, err := enumValue("biome type", biomeTypeNames[:], raw)
	if err != nil {
		return err
	}
	*b = BiomeType(v)
	return nil
}

// VegetationType names the dominant plant cover of a cell.
type VegetationType uint8

const (
	VegetationNone VegetationType = iota
	VegetationGrass
	VegetationShrubs
	VegetationDeciduous
	VegetationConiferous
	VegetationTropical
)

var vegetationTypeNames = [...]string{"none", "grass", "shrubs", "deciduous", "coniferous", "tropical"}

func (v VegetationType) String() string { return enumName(vegetationTypeNames[:], uint8(v)) }

func (v VegetationType) MarshalJSON() ([]byte, error) { return json.Marshal(v.String()) }

func (v *VegetationType) UnmarshalJSON(b []byte) error {
	n, err := enumValue("vegetation type", vegetationTypeNames[:], b)
	if err != nil {
		return err
	}
	*v = VegetationType(n)
	return nil
}

// SettlementType ranks inhabited cells from unclaimed wilderness up to
// cities. The ordering is meaningful: larger values are larger
// settlements.
type SettlementType uint8

const (
	SettlementNone SettlementType = iota
	SettlementFarmland
	SettlementHamlet
	SettlementVillage
	SettlementTown
	SettlementCity
)

var settlementTypeNames = [...]string{"none", "farmland", "hamlet", "village", "town", "city"}

func (s SettlementType) String() string { return enumName(settlementTypeNames[:], uint8(s)) }

func (s SettlementType) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

func (s *SettlementType) UnmarshalJSON(b []byte) error {
	v, err := enumValue("settlement type", settlementTypeNames[:], b)
	if err != nil {
		return err
	}
	*s = SettlementType(v)
	return nil
}

// ExplorationStatus tracks how well a cell is known to the world's
// inhabitants. The ordering is meaningful: larger values mean better
// known.
type ExplorationStatus uint8

const (
	ExplorationUnexplored ExplorationStatus = iota
	ExplorationKnown
	ExplorationMapped
	ExplorationSettled
)

var explorationStatusNames = [...]string{"unexplored", "known", "mapped", "settled"}

func (e ExplorationStatus) String() string { return enumName(explorationStatusNames[:], uint8(e)) }

func (e ExplorationStatus) MarshalJSON() ([]byte, error) { return json.Marshal(e.String()) }

func (e *ExplorationStatus) UnmarshalJSON(b []byte) error {
	v, err := enumValue("exploration status", explorationStatusNames[:], b)
	if err != nil {
		return err
	}
	*e = ExplorationStatus(v)
	return nil
}

// MineralSet is a bitmask of mineral deposits present in a cell.
type MineralSet uint8

const (
	MineralIron MineralSet = 1 << iota
	MineralCoal
	MineralGems
	MineralGold
)

var mineralNames = []setName{
	{uint8(MineralIron), "iron"},
	{uint8(MineralCoal), "coal"},
	{uint8(MineralGems), "gems"},
	{uint8(MineralGold), "gold"},
}

func (s MineralSet) Has(m MineralSet) bool { return s&m != 0 }

func (s *MineralSet) Add(m MineralSet) { *s |= m }

func (s MineralSet) Count() int { return bits.OnesCount8(uint8(s)) }

func (s MineralSet) List() []string { return setList(mineralNames, uint8(s)) }

func (s MineralSet) String() string { return setString(mineralNames, uint8(s)) }

func (s MineralSet) MarshalJSON() ([]byte, error) { return json.Marshal(s.List()) }

func (s *MineralSet) UnmarshalJSON(b []byte) error {
	v, err := setValue("mineral", mineralNames, b)
	if err != nil {
		return err
	}
	*s = MineralSet(v)
	return nil
}

// InfrastructureSet is a bitmask of built structures present in a cell.
type InfrastructureSet uint8

const (
	InfraRoad InfrastructureSet = 1 << iota
	InfraBridge
	InfraDock
	InfraWall
)

var infrastructureNames = []setName{
	{uint8(InfraRoad), "road"},
	{uint8(InfraBridge), "bridge"},
	{uint8(InfraDock), "dock"},
	{uint8(InfraWall), "wall"},
}

func (s InfrastructureSet) Has(i InfrastructureSet) bool { return s&i != 0 }

func (s *InfrastructureSet) Add(i InfrastructureSet) { *s |= i }

func (s InfrastructureSet) Count() int { return bits.OnesCount8(uint8(s)) }

func (s InfrastructureSet) List() []string { return setList(infrastructureNames, uint8(s)) }

func (s InfrastructureSet) String() string { return setString(infrastructureNames, uint8(s)) }

func (s InfrastructureSet) MarshalJSON() ([]byte, error) { return json.Marshal(s.List()) }

func (s *InfrastructureSet) UnmarshalJSON(b []byte) error {
	v, err := setValue("infrastructure", infrastructureNames, b)
	if err != nil {
		return err
	}
	*s = InfrastructureSet(v)
	return nil
}

// FeatureSet is a bitmask of special features present in a cell.
type FeatureSet uint8

const (
	FeatureDungeon FeatureSet = 1 << iota
	FeatureRuins
	FeatureShrine
	FeatureTower
	FeatureCave
)

var featureNames = []setName{
	{uint8(FeatureDungeon), "dungeon"},
	{uint8(FeatureRuins), "ruins"},
	{uint8(FeatureShrine), "magic_shrine"},
	{uint8(FeatureTower), "tower"},
	{uint8(FeatureCave), "cave"},
}

func (s FeatureSet) Has(f FeatureSet) bool { return s&f != 0 }

func (s *FeatureSet) Add(f FeatureSet) { *s |= f }

func (s FeatureSet) Count() int { return bits.OnesCount8(uint8(s)) }

func (s FeatureSet) List() []string { return setList(featureNames, uint8(s)) }

func (s FeatureSet) String() string { return setString(featureNames, uint8(s)) }

func (s FeatureSet) MarshalJSON() ([]byte, error) { return json.Marshal(s.List()) }

func (s *FeatureSet) UnmarshalJSON(b []byte) error {
	v, err := setValue("feature", featureNames, b)
	if err != nil {
		return err
	}
	*s = FeatureSet(v)
	return nil
}

// Cell is one grid location with every generated attribute. The zero
// value is a neutral, dry, unclaimed cell. Scalar attributes live in
// [0,255] by construction; writers clamp instead of overflowing.
type Cell struct {
	Elevation         uint8             `json:"elevation"`
	WaterLevel        uint8             `json:"water_level"`
	WaterFlow         WaterFlow         `json:"water_flow"`
	Temperature       uint8             `json:"temperature"`
	Rainfall          uint8             `json:"rainfall"`
	Climate           ClimateZone       `json:"climate_zone"`
	Biome             BiomeType         `json:"biome_type"`
	VegetationDensity uint8             `json:"vegetation_density"`
	Vegetation        VegetationType    `json:"vegetation_type"`
	SoilFertility     uint8             `json:"soil_fertility"`
	Minerals          MineralSet        `json:"mineral_deposits"`
	MagicalEnergy     uint8             `json:"magical_energy"`
	Settlement        SettlementType    `json:"settlement_type"`
	PopulationDensity uint8             `json:"population_density"`
	Infrastructure    InfrastructureSet `json:"infrastructure"`
	Features          FeatureSet        `json:"special_features"`
	DangerLevel       uint8             `json:"danger_level"`
	Exploration       ExplorationStatus `json:"exploration_status"`
}

// IsWater reports whether the cell is flooded: positive water level or
// any flow kind. Generated worlds always carry both together, but
// decoded cells may not.
func (c Cell) IsWater() bool { return c.WaterLevel > 0 || c.WaterFlow != FlowNone }

// IsLand is the complement of IsWater.
func (c Cell) IsLand() bool { return !c.IsWater() }

// SettlementSuitable reports whether a settlement could be founded
// here: dry land at or below elevation 200.
func (c Cell) SettlementSuitable() bool {
	return c.IsLand() && c.Elevation <= settlementMaxElevation
}

// FarmlandSuitable reports whether the cell can carry farmland: dry
// land with workable soil at moderate elevation.
func (c Cell) FarmlandSuitable() bool {
	return c.IsLand() && c.SoilFertility >= farmlandMinFertility && c.Elevation <= farmlandMaxElevation
}

// Clone returns an independent copy of the cell. Every field is a
// value type, so a plain copy is already deep.
func (c Cell) Clone() Cell { return c }

// Describe renders a short human-readable summary of the cell.
func (c Cell) Describe() string {
	var b strings.Builder
	if c.IsWater() {
		fmt.Fprintf(&b, "%s (depth %d)", c.WaterFlow, c.WaterLevel)
	} else {
		fmt.Fprintf(&b, "%s %s", c.Climate, c.Biome)
		if c.Vegetation != VegetationNone {
			fmt.Fprintf(&b, " with %s", c.Vegetation)
		}
	}
	fmt.Fprintf(&b, ", elevation %d", c.Elevation)
	if c.Settlement != SettlementNone {
		fmt.Fprintf(&b, ", %s (pop %d)", c.Settlement, c.PopulationDensity)
	}
	if c.Minerals != 0 {
		fmt.Fprintf(&b, ", deposits: %s", c.Minerals)
	}
	if c.Infrastructure != 0 {
		fmt.Fprintf(&b, ", built: %s", c.Infrastructure)
	}
	if c.Features != 0 {
		fmt.Fprintf(&b, ", features: %s", c.Features)
	}
	if c.DangerLevel > 0 {
		fmt.Fprintf(&b, ", danger %d", c.DangerLevel)
	}
	fmt.Fprintf(&b, ", %s", c.Exploration)
	return b.String()
}

type setName struct {
	bit  uint8
	name string
}

func enumName(names []string, v uint8) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("unknown(%d)", v)
}

func enumValue(kind string, names []string, raw []byte) (uint8, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("decode %s: %w", kind, err)
	}
	for i, name := range names {
		if name == s {
			return uint8(i), nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, s)
}

func setList(names []setName, v uint8) []string {
	out := make([]string, 0, bits.OnesCount8(v))
	for _, n := range names {
		if v&n.bit != 0 {
			out = append(out, n.name)
		}
	}
	return out
}

func setString(names []setName, v uint8) string {
	if v == 0 {
		return "none"
	}
	return strings.Join(setList(names, v), "+")
}

func setValue(kind string, names []setName, raw []byte) (uint8, error) {
	var entries []string
	if err := json.Unmarshal(raw, &entries); err != nil {
		return 0, fmt.Errorf("decode %s set: %w", kind, err)
	}
	var v uint8
	for _, s := range entries {
		found := false
		for _, n := range names {
			if n.name == s {
				v |= n.bit
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown %s %q", kind, s)
		}
	}
	return v, nil
}

// clampByte narrows an int to [0,255].
func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
