package discord

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

type sentMessage struct {
	channelID string
	content   string
}

type fakeSender struct {
	sent   []sentMessage
	dmErr  error
	opened []string
}

func (f *fakeSender) ChannelMessageSend(channelID, content string) error {
	f.sent = append(f.sent, sentMessage{channelID, content})
	return nil
}

func (f *fakeSender) DirectChannel(userID string) (string, error) {
	f.opened = append(f.opened, userID)
	if f.dmErr != nil {
		return "", f.dmErr
	}
	return "dm-" + userID, nil
}

func newResponder(f *fakeSender) *responder {
	return &responder{
		sender:    f,
		channelID: "general",
		author:    &discordgo.User{ID: "42", Username: "Wobbley"},
	}
}

func TestResponder(t *testing.T) {
	f := &fakeSender{}
	r := newResponder(f)

	require.NoError(t, r.Say("Free rotation: Li Ming"))
	require.NoError(t, r.Reply("http://heroesofthestorm.github.io/zuna-tierlist"))
	require.NoError(t, r.Msg("Wobbley", "BattleTag added"))

	require.Equal(t, []sentMessage{
		{"general", "Free rotation: Li Ming"},
		{"general", "<@42> http://heroesofthestorm.github.io/zuna-tierlist"},
		{"dm-42", "BattleTag added"},
	}, f.sent)
	require.Equal(t, []string{"42"}, f.opened)
}

func TestResponderMsgOtherUser(t *testing.T) {
	f := &fakeSender{}
	require.Error(t, newResponder(f).Msg("Someone", "hi"))
	require.Empty(t, f.sent)
}

func TestResponderMsgDMFailure(t *testing.T) {
	f := &fakeSender{dmErr: errors.New("closed DMs")}
	require.Error(t, newResponder(f).Msg("Wobbley", "hi"))
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", maxMessageLength+10)
	got := truncate(long)
	require.Len(t, got, maxMessageTruncation+3)
	require.Equal(t, "short", truncate("short"))
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	long := "a" + strings.Repeat("ё", maxMessageLength)
	got := truncate(long)
	require.True(t, utf8.ValidString(got))
	require.LessOrEqual(t, len(got), maxMessageTruncation+3)
	require.Equal(t, "a"+strings.Repeat("ё", (maxMessageTruncation-1)/2)+"...", got)
}
