package bot

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "battleship",
		Description: "Play Battleship!",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "host",
				Description: "Create a new game",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "fleet",
						Description: "Base fleet to play with",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    false,
					},
					{
						Name:        "ai",
						Description: "Play against the computer instead of waiting for an opponent",
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Required:    false,
					},
				},
			},
			{
				Name:        "join",
				Description: "Join an existing game",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "match_id",
						Description: "The match ID to join",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    true,
					},
				},
			},
			{
				Name:        "list",
				Description: "List available matches",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
			{
				Name:        "place",
				Description: "Place your next required ship",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "ship",
						Description: "Ship template id, e.g. destroyer",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    true,
					},
					{
						Name:        "index",
						Description: "Which slot of this ship type, starting at 0",
						Type:        discordgo.ApplicationCommandOptionInteger,
						Required:    true,
					},
					{
						Name:        "coordinate",
						Description: "Top-left coordinate, e.g. A1",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    true,
					},
					{
						Name:        "orientation",
						Description: "horizontal or vertical",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    true,
						Choices: []*discordgo.ApplicationCommandOptionChoice{
							{Name: "horizontal", Value: "horizontal"},
							{Name: "vertical", Value: "vertical"},
						},
					},
				},
			},
			{
				Name:        "attack",
				Description: "Fire at a coordinate on your opponent's board",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "coordinate",
						Description: "Coordinate to fire at, e.g. A1",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    true,
					},
				},
			},
			{
				Name:        "status",
				Description: "View your current game state",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
		},
	},
}

// registerCommands registers all slash commands with Discord.
func (b *DiscordBot) registerCommands() error {
	log.Println("Registering slash commands...")

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.appID, "", cmd)
		if err != nil {
			return err
		}
		log.Printf("Registered command: %s", cmd.Name)
	}

	return nil
}
