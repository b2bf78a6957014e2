package appstate

// SplashState tracks the intro splash screen. It advances on discrete
// tick events and reports done after the configured number of ticks,
// or immediately on Skip.
type SplashState struct {
	TotalTicks   int  `json:"total_ticks"`
	ElapsedTicks int  `json:"elapsed_ticks"`
	Skipped      bool `json:"skipped"`
}

func NewSplashState(totalTicks int) *SplashState {
	if totalTicks < 1 {
		totalTicks = 1
	}
	return &SplashState{TotalTicks: totalTicks}
}

// Tick advances the splash by one tick. Ticks past completion are
// ignored.
func (s *SplashState) Tick() {
	if s.Done() {
		return
	}
	s.ElapsedTicks++
}

// Skip ends the splash regardless of elapsed ticks.
func (s *SplashState) Skip() {
	s.Skipped = true
}

func (s *SplashState) Done() bool {
	return s.Skipped || s.ElapsedTicks >= s.TotalTicks
}

// Progress reports completion in [0, 1] for the progress indicator.
func (s *SplashState) Progress() float64 {
	if s.Done() {
		return 1
	}
	return float64(s.ElapsedTicks) / float64(s.TotalTicks)
}
