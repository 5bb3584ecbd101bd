package practicesession

// Effect is a side effect a transition asks its caller to perform.
type Effect int

const (
	EffectNone Effect = iota
	// EffectPersist asks the caller to save a progress snapshot.
	EffectPersist
)

// Event is one user action applied to a Session.
type Event interface {
	apply(s *Session) (Effect, error)
}

// Dispatch applies ev to the session and reports the declared side effect.
// A failed event leaves the session unchanged and declares no effect.
func (s *Session) Dispatch(ev Event) (Effect, error) {
	return ev.apply(s)
}

type Submit struct{ Choice string }

func (e Submit) apply(s *Session) (Effect, error) {
	if _, err := s.SubmitAnswer(e.Choice); err != nil {
		return EffectNone, err
	}
	return EffectPersist, nil
}

type Navigate struct{ Delta int }

func (e Navigate) apply(s *Session) (Effect, error) {
	s.Advance(e.Delta)
	return EffectNone, nil
}

type ToggleFlag struct{ Index int }

func (e ToggleFlag) apply(s *Session) (Effect, error) {
	if _, err := s.ToggleFlag(e.Index); err != nil {
		return EffectNone, err
	}
	return EffectPersist, nil
}

type ToggleFavorite struct{ Index int }

func (e ToggleFavorite) apply(s *Session) (Effect, error) {
	if _, err := s.ToggleFavorite(e.Index); err != nil {
		return EffectNone, err
	}
	return EffectPersist, nil
}

type SetReviewMode struct{ Enabled bool }

func (e SetReviewMode) apply(s *Session) (Effect, error) {
	s.SetReviewMode(e.Enabled)
	return EffectNone, nil
}

type SetExplanation struct{ Visible bool }

func (e SetExplanation) apply(s *Session) (Effect, error) {
	s.SetExplanation(e.Visible)
	return EffectNone, nil
}

type Reset struct{}

func (Reset) apply(s *Session) (Effect, error) {
	s.Reset()
	return EffectPersist, nil
}
