package event

type DrawPileEmptiedPayload struct {
	// Reshuffled is the number of discards moved back into the draw pile.
	Reshuffled int
}

type DrawPileEmptiedListener interface {
	OnDrawPileEmptied(DrawPileEmptiedPayload)
}

type drawPileEmptiedEmitter struct {
	listeners []DrawPileEmptiedListener
}

func (e *drawPileEmptiedEmitter) AddListener(listener DrawPileEmptiedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *drawPileEmptiedEmitter) Emit(payload DrawPileEmptiedPayload) {
	for _, listener := range e.listeners {
		listener.OnDrawPileEmptied(payload)
	}
}
