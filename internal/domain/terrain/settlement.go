package terrain

import (
	"math"
	"sort"
)

type settlementSite struct {
	idx   int
	x, y  int
	score float64
}

// placeSettlements founds settlements on the best-scoring eligible
// cells. Scoring is fully deterministic, so this pass consumes no
// randomness: the same terrain always produces the same civilization.
func (p *Pipeline) placeSettlements(g *Grid) {
	cells := g.Cells()

	var eligible []settlementSite
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			idx := g.Index(x, y)
			if !cells[idx].SettlementSuitable() {
				continue
			}
			eligible = append(eligible, settlementSite{
				idx:   idx,
				x:     x,
				y:     y,
				score: p.suitabilityScore(g, x, y, &cells[idx]),
			})
		}
	}
	if len(eligible) == 0 {
		return
	}

	// Stable sort over the row-major candidate list: equal scores
	// keep scan order, which pins down tie-breaking.
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].score > eligible[j].score
	})

	count := int(math.Round(float64(len(eligible)) * p.opts.SettlementDensity))
	if count > len(eligible) {
		count = len(eligible)
	}
	founded := eligible[:count]

	for _, site := range founded {
		cell := &cells[site.idx]
		tier := tierForScore(site.score)
		cell.Settlement = tier
		cell.PopulationDensity = populationFor(tier)
		cell.Exploration = ExplorationSettled
	}

	// Working settlements surround themselves with farmland where the
	// soil allows it.
	for _, site := range founded {
		if cells[site.idx].Settlement == SettlementFarmland {
			continue
		}
		g.eachNeighbor(site.x, site.y, func(idx int) {
			n := &cells[idx]
			if n.Settlement != SettlementNone || !n.FarmlandSuitable() {
				return
			}
			n.Settlement = SettlementFarmland
			n.PopulationDensity = farmlandRingPopulation
			n.Exploration = ExplorationSettled
		})
	}
}

// suitabilityScore rates a cell for settlement. Fertile soil, fresh
// water, and mineral wealth attract; extreme elevation and danger
// repel.
func (p *Pipeline) suitabilityScore(g *Grid, x, y int, cell *Cell) float64 {
	score := float64(cell.SoilFertility)
	if g.hasWaterNeighbor(x, y) {
		score += scoreWaterBonus
	}
	score += scorePerMineral * float64(cell.Minerals.Count())
	score -= scoreElevationPenalty * math.Abs(float64(cell.Elevation)-scoreIdealElevation)
	score -= float64(cell.DangerLevel)
	return score
}

func tierForScore(score float64) SettlementType {
	switch {
	case score > townMinScore:
		return SettlementTown
	case score > villageMinScore:
		return SettlementVillage
	case score > hamletMinScore:
		return SettlementHamlet
	default:
		return SettlementFarmland
	}
}

func populationFor(tier SettlementType) uint8 {
	switch tier {
	case SettlementTown:
		return townPopulation
	case SettlementVillage:
		return villagePopulation
	case SettlementHamlet:
		return hamletPopulation
	default:
		return farmsteadPopulation
	}
}
