package discord

// Friendly message constants for Discord responses
const (
	MsgNotEnoughCoins  = "💰 **Not Enough Coins!**\nFinish a few more quests first."
	MsgAlreadyOwned    = "👕 **Already Yours**\nYou already own that item."
	MsgItemNotOwned    = "🎒 **Not In Your Wardrobe**\nBuy it in the shop before wearing it."
	MsgShopLocked      = "🔒 **Shop Locked**\nComplete more quests to open the shop."
	MsgNoActiveQuest   = "📜 **No Active Quest**\nUse `/quest` to get one."
	MsgUnknownLocation = "🗺️ **Unknown Location**\nPick one of the listed places."
	MsgUnknownItem     = "❓ **Item Not Found**\nCheck `/shop` for what is on sale."
	MsgEmptySaveSlot   = "💾 **Empty Slot**\nThere is nothing saved there yet."
	MsgGenericError    = "❌ Something went wrong."
	MsgServerError     = "Error connecting to game server."
)

// Embed colors
const (
	ColorQuest    = 0x3498db
	ColorReward   = 0xf1c40f
	ColorShop     = 0x2ecc71
	ColorWardrobe = 0x9b59b6
	ColorSave     = 0x95a5a6
	ColorProfile  = 0x00ff00
)

// Embed footer
const FooterQuestTown = "QuestTown"

// Log messages
const (
	LogMsgRetrying          = "Retrying API request"
	LogMsgRequestFailed     = "API request failed"
	LogMsgDeferFailed       = "Failed to send deferred response"
	LogMsgEditFailed        = "Failed to edit interaction response"
	LogMsgActionFailed      = "Command failed"
	LogMsgBotReady          = "Bot is ready"
	LogMsgBotRunning        = "Discord bot is now running. Press CTRL-C to exit."
	LogMsgCheckingCommands  = "Checking Discord commands..."
	LogMsgCommandsUnchanged = "Commands unchanged, skipping registration"
	LogMsgCommandsUpdated   = "Commands updated successfully"
	LogMsgHealthServer      = "Starting Discord health server"
	LogMsgHealthServerError = "Discord health server failed"
)

// PlayerIDPrefix namespaces Discord users among API players
const PlayerIDPrefix = "discord-"
