package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/ludo/internal/models"
	"github.com/KirkDiggler/ludo/internal/rules"
	"github.com/bwmarrin/discordgo"
)

// Button IDs
const (
	ButtonJoin = "join"
	ButtonRoll = "roll"

	// ButtonMovePrefix is followed by the token index, e.g. "move:2"
	ButtonMovePrefix = "move:"
)

// Embed colors
const (
	colorGreen  = 0x00ff00
	colorRed    = 0xff0000
	colorYellow = 0xffcc00
	colorBlue   = 0x3498db
)

var colorEmoji = map[models.Color]string{
	models.ColorRed:    "🔴",
	models.ColorGreen:  "🟢",
	models.ColorYellow: "🟡",
	models.ColorBlue:   "🔵",
}

// moveButtonID returns the custom ID of a move button
func moveButtonID(tokenIndex int) string {
	return ButtonMovePrefix + strconv.Itoa(tokenIndex)
}

// parseMoveButton extracts the token index from a move button ID
func parseMoveButton(customID string) (int, bool) {
	if !strings.HasPrefix(customID, ButtonMovePrefix) {
		return 0, false
	}
	index, err := strconv.Atoi(strings.TrimPrefix(customID, ButtonMovePrefix))
	if err != nil {
		return 0, false
	}
	return index, true
}

// mention formats a user mention
func mention(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}

// playerName returns the display name of a player in the room
func playerName(room *models.RoomSnapshot, userID string) string {
	if room == nil {
		return userID
	}
	for _, p := range room.Players {
		if p.UserID == userID {
			return p.Name
		}
	}
	return userID
}

// describeToken renders one token's position
func describeToken(token models.Token) string {
	switch {
	case token.Finished:
		return "🏁"
	case token.AtHome():
		return "🏠"
	case token.Position >= rules.PathLength:
		return fmt.Sprintf("H%d", token.Position-rules.PathLength+1)
	case rules.IsSafeCell(token.Position):
		return fmt.Sprintf("%d⭐", token.Position)
	default:
		return strconv.Itoa(token.Position)
	}
}

// renderRoomEmbed renders the shared room message
func renderRoomEmbed(room *models.RoomSnapshot, status string) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Status",
			Value:  string(room.Status),
			Inline: true,
		},
		{
			Name:   "Players",
			Value:  fmt.Sprintf("%d/%d", len(room.Players), room.MaxPlayers),
			Inline: true,
		},
		{
			Name:   "Entry Fee",
			Value:  fmt.Sprintf("%d coins", room.EntryFee),
			Inline: true,
		},
	}

	var current string
	if room.State != nil {
		if p := room.State.CurrentPlayer(); p != nil {
			current = p.UserID
		}
	}

	var board strings.Builder
	for _, p := range room.Players {
		tokens := make([]string, len(p.Tokens))
		for i, t := range p.Tokens {
			tokens[i] = describeToken(t)
		}

		line := fmt.Sprintf("%s **%s**: %s", colorEmoji[p.Color], p.Name, strings.Join(tokens, " "))
		if !p.Active {
			line = "~~" + line + "~~"
		}
		if room.Status.IsActive() && p.UserID == current {
			line += " 🎲"
		}
		board.WriteString(line + "\n")
	}

	if board.Len() > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Board",
			Value: board.String(),
		})
	}

	color := colorBlue
	switch room.Status {
	case models.RoomStatusActive:
		color = colorGreen
	case models.RoomStatusFinished:
		color = colorYellow
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Ludo Room %s", room.RoomID),
		Description: status,
		Color:       color,
		Fields:      fields,
	}
}

// roomComponents returns the buttons shown under the shared room message
func roomComponents(room *models.RoomSnapshot) []discordgo.MessageComponent {
	var buttons []discordgo.MessageComponent
	switch room.Status {
	case models.RoomStatusForming:
		buttons = append(buttons, discordgo.Button{
			Label:    "Join",
			Style:    discordgo.SuccessButton,
			CustomID: ButtonJoin,
			Emoji: &discordgo.ComponentEmoji{
				Name: "🙋",
			},
		})
	case models.RoomStatusActive:
		buttons = append(buttons, discordgo.Button{
			Label:    "Roll Dice",
			Style:    discordgo.PrimaryButton,
			CustomID: ButtonRoll,
			Emoji: &discordgo.ComponentEmoji{
				Name: "🎲",
			},
		})
	default:
		return nil
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}

// moveComponents returns one button per movable token, highlighting the suggested one
func moveComponents(player *models.Player, movable []int, suggested int, hasSuggestion bool) []discordgo.MessageComponent {
	if len(movable) == 0 {
		return nil
	}

	buttons := make([]discordgo.MessageComponent, 0, len(movable))
	for _, index := range movable {
		style := discordgo.SecondaryButton
		if hasSuggestion && index == suggested {
			style = discordgo.SuccessButton
		}

		label := fmt.Sprintf("Token %d", index+1)
		if player != nil && index < len(player.Tokens) {
			label = fmt.Sprintf("Token %d (%s)", index+1, describeToken(player.Tokens[index]))
		}

		buttons = append(buttons, discordgo.Button{
			Label:    label,
			Style:    style,
			CustomID: moveButtonID(index),
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}

// findPlayer returns the player with the given ID from a snapshot
func findPlayer(room *models.RoomSnapshot, userID string) *models.Player {
	if room == nil {
		return nil
	}
	for _, p := range room.Players {
		if p.UserID == userID {
			return p
		}
	}
	return nil
}

// renderEvent builds the channel message for a room event. Events that are
// already answered through the interaction response return nil.
func renderEvent(event *models.Event) *discordgo.MessageSend {
	if event == nil || event.Room == nil {
		return nil
	}
	room := event.Room
	who := playerName(room, event.UserID)

	switch event.Kind {
	case models.EventRoomCreated:
		return &discordgo.MessageSend{
			Embeds:     []*discordgo.MessageEmbed{renderRoomEmbed(room, fmt.Sprintf("%s opened a room. Press Join to take a seat!", who))},
			Components: roomComponents(room),
		}
	case models.EventPlayerJoined:
		return &discordgo.MessageSend{
			Content: fmt.Sprintf("%s joined the room (%d/%d).", who, len(room.Players), room.MaxPlayers),
		}
	case models.EventMatchStarted:
		return &discordgo.MessageSend{
			Content:    fmt.Sprintf("The match is on! %s, you roll first.", mention(event.NextPlayerID)),
			Embeds:     []*discordgo.MessageEmbed{renderRoomEmbed(room, "Roll a six to bring a token out.")},
			Components: roomComponents(room),
		}
	case models.EventTokenMoved:
		switch event.Outcome {
		case string(rules.OutcomeKill):
			return &discordgo.MessageSend{Content: fmt.Sprintf("💥 %s captured a token with a %d!", who, event.DiceValue)}
		case string(rules.OutcomeFinish):
			return &discordgo.MessageSend{Content: fmt.Sprintf("🏁 %s brought a token home!", who)}
		}
		return nil
	case models.EventTurnChanged:
		if event.NextPlayerID == "" {
			return nil
		}
		return &discordgo.MessageSend{
			Content:    fmt.Sprintf("%s, it's your turn!", mention(event.NextPlayerID)),
			Embeds:     []*discordgo.MessageEmbed{renderRoomEmbed(room, "")},
			Components: roomComponents(room),
		}
	case models.EventPlayerAFK:
		return &discordgo.MessageSend{
			Content: fmt.Sprintf("⏰ %s ran out of time and was marked AFK.", who),
		}
	case models.EventPlayerLeft:
		return &discordgo.MessageSend{
			Content: fmt.Sprintf("%s left the room.", who),
		}
	case models.EventRoomAbandoned:
		return &discordgo.MessageSend{
			Content: "The room was closed. Entry fees have been refunded.",
		}
	case models.EventMatchFinished:
		return &discordgo.MessageSend{
			Embeds: []*discordgo.MessageEmbed{renderSettlementEmbed(room, event.Settlement)},
		}
	}

	return nil
}

// renderSettlementEmbed renders the final payout
func renderSettlementEmbed(room *models.RoomSnapshot, settlement *models.Settlement) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Match Over!",
		Color: colorYellow,
	}
	if settlement == nil {
		embed.Description = "The match ended without a payout."
		return embed
	}

	winners := make([]string, len(settlement.Winners))
	for i, userID := range settlement.Winners {
		winners[i] = fmt.Sprintf("%d. %s", i+1, playerName(room, userID))
	}

	embed.Fields = []*discordgo.MessageEmbedField{
		{
			Name:  "Winners",
			Value: strings.Join(winners, "\n"),
		},
		{
			Name:   "Pot",
			Value:  fmt.Sprintf("%d + %d bonus", settlement.TotalPot, settlement.Bonus),
			Inline: true,
		},
		{
			Name:   "Each Winner",
			Value:  fmt.Sprintf("%d coins", settlement.Share),
			Inline: true,
		},
	}
	return embed
}
