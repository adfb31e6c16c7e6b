package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/ghanshyammann/seawar/internal/dto"
)

// FormatGameState creates a Discord embed summarizing a GameView.
func FormatGameState(view *dto.GameView) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "⚓ Battleship Game",
		Color: getColorForStatus(view.Status),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Status", Value: view.Status, Inline: true},
		},
	}

	if view.CurrentTurn != "" {
		turn := "Them"
		if view.CurrentTurn == view.Self.PlayerID {
			turn = "You"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Current Turn", Value: turn, Inline: true,
		})
	}

	if view.WinnerID != "" {
		winnerText := "Opponent won"
		if view.WinnerID == view.Self.PlayerID {
			winnerText = "You won! 🎉"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "🏆 Winner", Value: winnerText, Inline: false,
		})
	}

	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{
			Name:   "🚢 Your Fleet",
			Value:  formatFleet(view.Self.Ships),
			Inline: true,
		},
		&discordgo.MessageEmbedField{
			Name:   "🎯 Opponent Fleet",
			Value:  formatFleet(view.Opponent.Ships),
			Inline: true,
		},
		&discordgo.MessageEmbedField{
			Name:   "📍 Shots You've Taken",
			Value:  formatShots(view.Self.ShotsTaken),
			Inline: false,
		},
	)

	return embed
}

func formatFleet(ships []dto.ShipView) string {
	if len(ships) == 0 {
		return "No ships placed yet"
	}

	var sb strings.Builder
	for _, ship := range ships {
		status := "afloat"
		if ship.IsSunk {
			status = "sunk ☠"
		}
		fmt.Fprintf(&sb, "%s (size %d): %s\n", ship.Name, ship.Size, status)
	}
	return sb.String()
}

func formatShots(shots []dto.ShotView) string {
	if len(shots) == 0 {
		return "No shots fired yet"
	}

	var sb strings.Builder
	for _, shot := range shots {
		fmt.Fprintf(&sb, "%s: %s\n", shot.Coordinate, shot.Result)
	}
	return sb.String()
}

func getColorForStatus(status string) int {
	switch status {
	case "waiting_for_player2", "waiting_for_placement", "both_players_placing",
		"player1_placing", "player2_placing":
		return 0xffaa00 // Orange
	case "in_progress":
		return 0x0099ff // Blue
	case "finished":
		return 0x00ff00 // Green
	default:
		return 0x808080 // Gray
	}
}
