package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starjump/common"
)

// Scroller tracks the vertical displacement of the view. It follows a
// target upward and never scrolls back down.
type Scroller struct {
	Displacement float64

	// world height kept between the bottom of the view and the target
	lead float64
	// smoothing factor (0..1). higher -> faster follow. 0 snaps.
	smooth float64
}

func NewScroller(lead, smooth float64) *Scroller {
	s := &Scroller{lead: lead}
	s.SetSmooth(smooth)
	return s
}

func (s *Scroller) SetSmooth(f float64) {
	s.smooth = common.Clamp(f, 0, 1)
}

func (s *Scroller) SetLead(lead float64) {
	s.lead = lead
}

// Follow moves the view toward keeping targetY lead units above its bottom.
func (s *Scroller) Follow(targetY float64) {
	want := targetY - s.lead
	if want <= s.Displacement {
		return
	}
	if s.smooth <= 0 {
		s.Displacement = want
		return
	}
	s.Displacement = common.Lerp(s.Displacement, want, s.smooth)
}

// SnapTo sets the displacement immediately, e.g. on restart.
func (s *Scroller) SnapTo(displacement float64) {
	s.Displacement = displacement
}

// View returns the visible part of the world.
func (s *Scroller) View(w common.World) cp.BB {
	return cp.BB{L: 0, B: s.Displacement, R: w.GameWidth, T: s.Displacement + w.GameHeight}
}
