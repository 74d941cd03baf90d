package commands

const (
	tipsURL     = "http://heroesofthestorm.github.io/tips"
	tierlistURL = "http://heroesofthestorm.github.io/zuna-tierlist"

	msgCommandList     = "Here's a list of my commands:"
	msgTips            = "You can find some great tips here, %s: %s"
	msgTipsNoTarget    = "You can find some great tips here: %s"
	msgFreeRotation    = "Free rotation: "
	msgNoFreeRotation  = "Unable to find the current free rotation"
	msgNoRating        = "Unable to find any rating for player "
	msgRating          = "%s [%s] - %s [%s]"
	msgBattleTagUsage  = `A BattleTag is required, example: "%saddBT Wobbley#2372"`
	msgBattleTagAdded  = "BattleTag added"
	msgBattleTagExists = "You already have a BattleTag, remove it first"
	msgHandleUsage     = `A irc username is required, example: "%sgetBT Wobbley"`
	msgNoBattleTag     = "No BattleTag found for %s "
	msgBattleTag       = "IRC: %s Battle.net: %s"
	msgBattleTagGone   = "Removed your BattleTag"
	msgCommandFailed   = "Sorry, something went wrong while running %s"
)
