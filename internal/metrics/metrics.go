// Package metrics provides scalar observations collected while a solve
// runs, implementing the relax.Metric interface.
package metrics

import "github.com/commanderjcc/hotplate/internal/plate"

// CenterTemp tracks the temperature of the plate's center cell after
// the most recent sweep.
type CenterTemp struct {
	value float64
}

func NewCenterTemp() *CenterTemp { return &CenterTemp{} }

func (c *CenterTemp) Name() string { return "center_temp" }

func (c *CenterTemp) Observe(p *plate.Plate, iteration int) {
	c.value = p.At(p.Rows()/2, p.Cols()/2)
}

func (c *CenterTemp) Value() float64 { return c.value }
func (c *CenterTemp) Reset()         { c.value = 0 }

// PeakInterior tracks the hottest interior cell seen across all sweeps.
type PeakInterior struct {
	peak float64
}

func NewPeakInterior() *PeakInterior { return &PeakInterior{} }

func (m *PeakInterior) Name() string { return "peak_interior" }

func (m *PeakInterior) Observe(p *plate.Plate, iteration int) {
	for row := 1; row < p.Rows()-1; row++ {
		for col := 1; col < p.Cols()-1; col++ {
			if v := p.At(row, col); v > m.peak {
				m.peak = v
			}
		}
	}
}

func (m *PeakInterior) Value() float64 { return m.peak }
func (m *PeakInterior) Reset()         { m.peak = 0 }

// MeanInterior tracks the mean interior temperature after the most
// recent sweep.
type MeanInterior struct {
	value float64
}

func NewMeanInterior() *MeanInterior { return &MeanInterior{} }

func (m *MeanInterior) Name() string { return "mean_interior" }

func (m *MeanInterior) Observe(p *plate.Plate, iteration int) {
	m.value = p.MeanInterior()
}

func (m *MeanInterior) Value() float64 { return m.value }
func (m *MeanInterior) Reset()         { m.value = 0 }
