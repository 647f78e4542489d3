package msg_test

import (
	"bytes"
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/stretchr/testify/assert"
)

func TestAnnouncer(t *testing.T) {
	var out bytes.Buffer
	emitters := event.NewEmitters()
	emitters.AddListener(msg.NewAnnouncer(&out))

	emitters.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: "Kled"})
	emitters.CardsDrawn.Emit(event.CardsDrawnPayload{PlayerName: "Kled", Cards: []card.Card{card.NewWildCard()}})
	emitters.ColorPicked.Emit(event.ColorPickedPayload{PlayerName: "Kled", Color: color.Red})
	emitters.DrawPileEmptied.Emit(event.DrawPileEmptiedPayload{Reshuffled: 3})
	emitters.WinnerFound.Emit(event.WinnerFoundPayload{PlayerName: "Kled"})

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	assert.Len(t, lines, 5)
	assert.Equal(t, "Kled passed!", string(lines[0]))
	assert.Equal(t, "Kled drew a card!", string(lines[1]))
	assert.Contains(t, string(lines[2]), "red")
	assert.Equal(t, "The draw pile ran out, 3 cards were shuffled back in!", string(lines[3]))
	assert.Equal(t, "Kled wins!", string(lines[4]))
}

func TestAnnouncerImplementsListener(t *testing.T) {
	var _ event.Listener = msg.NewAnnouncer(nil)
}
