package irc

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/irc.v4"
)

type fakeWriter struct {
	messages []*irc.Message
}

func (w *fakeWriter) WriteMessage(m *irc.Message) error {
	w.messages = append(w.messages, m)
	return nil
}

func TestResponder(t *testing.T) {
	w := &fakeWriter{}
	r := &responder{w: w, target: "#hots", sender: "Wobbley"}

	require.NoError(t, r.Say("Free rotation: Li Ming"))
	require.NoError(t, r.Reply("http://heroesofthestorm.github.io/zuna-tierlist"))
	require.NoError(t, r.Msg("Wobbley", "BattleTag added"))

	require.Len(t, w.messages, 3)
	require.Equal(t, []string{"#hots", "Free rotation: Li Ming"}, w.messages[0].Params)
	require.Equal(t, []string{"#hots", "Wobbley: http://heroesofthestorm.github.io/zuna-tierlist"}, w.messages[1].Params)
	require.Equal(t, []string{"Wobbley", "BattleTag added"}, w.messages[2].Params)
	for _, m := range w.messages {
		require.Equal(t, "PRIVMSG", m.Command)
	}
}

func TestResponderStripsLineBreaks(t *testing.T) {
	w := &fakeWriter{}
	r := &responder{w: w, target: "#hots", sender: "Wobbley"}

	require.NoError(t, r.Say("IRC: x Battle.net: y\r\nQUIT :bye"))
	require.Equal(t, "IRC: x Battle.net: y  QUIT :bye", w.messages[0].Params[1])
}

func TestUnderline(t *testing.T) {
	r := &responder{}
	require.Equal(t, "\x1f!rotation\x1f", r.Underline("!rotation"))
}
