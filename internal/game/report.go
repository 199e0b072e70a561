package game

import (
	"fmt"
	"slices"

	"github.com/guptarohit/asciigraph"
)

// historyCapacity bounds the energy history kept for the exit chart.
const historyCapacity = 600

func (g *Game) recordEnergy(e float64) {
	g.energy = append(g.energy, e)
	if len(g.energy) > historyCapacity {
		g.energy = g.energy[1:]
	}
}

// EnergyHistory returns a copy of the surface energy of the most recent
// frames, oldest first.
func (g *Game) EnergyHistory() []float64 {
	return slices.Clone(g.energy)
}

// EnergyPlot renders the energy history as a terminal chart. It returns an
// empty string until at least two frames have run.
func (g *Game) EnergyPlot() string {
	if len(g.energy) < 2 {
		return ""
	}
	return asciigraph.Plot(g.energy,
		asciigraph.Height(10),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("surface energy, last %d frames", len(g.energy))),
	)
}
