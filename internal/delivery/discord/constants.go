package discord

const (
	transportName = "discord"

	// Display limits
	maxMessageLength     = 2000
	maxMessageTruncation = 1990
)
