package components

import "github.com/yohamta/donburi"

// HealthData is present only on actors whose life is tracked.
type HealthData struct {
	Current int
	Max     int
}

// Ratio is Current/Max clamped to [0, 1] for drawing.
func (h *HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	r := float64(h.Current) / float64(h.Max)
	return min(max(r, 0), 1)
}

var Health = donburi.NewComponentType[HealthData]()
