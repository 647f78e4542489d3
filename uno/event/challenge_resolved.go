package event

type ChallengeResolvedPayload struct {
	ChallengerName string
	AccusedName    string
	// Challenged is false when the wild draw four was accepted.
	Challenged    bool
	PlayedLegally bool
	PenalizedName string
	Penalty       int
}

type ChallengeResolvedListener interface {
	OnChallengeResolved(ChallengeResolvedPayload)
}

type challengeResolvedEmitter struct {
	listeners []ChallengeResolvedListener
}

func (e *challengeResolvedEmitter) AddListener(listener ChallengeResolvedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *challengeResolvedEmitter) Emit(payload ChallengeResolvedPayload) {
	for _, listener := range e.listeners {
		listener.OnChallengeResolved(payload)
	}
}
