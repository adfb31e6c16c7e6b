package bot

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/ghanshyammann/seawar/internal/dto"
)

// handleInteraction is the main handler for all Discord interactions.
func (b *DiscordBot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	if data.Name != "battleship" {
		return
	}

	if len(data.Options) == 0 {
		respondError(s, i, "No subcommand provided")
		return
	}

	subcommand := data.Options[0]
	ctx := context.Background()

	userID := i.Member.User.ID
	username := i.Member.User.Username

	authResp, err := b.ctrl.Login(ctx, username, "discord", userID)
	if err != nil {
		respondError(s, i, fmt.Sprintf("failed to authenticate: %v", err))
		return
	}

	playerID := authResp.User.ID

	switch subcommand.Name {
	case "host":
		b.handleHost(ctx, s, i, playerID, subcommand.Options)
	case "join":
		b.handleJoin(ctx, s, i, playerID, subcommand.Options)
	case "list":
		b.handleList(ctx, s, i)
	case "place":
		b.handlePlace(ctx, s, i, playerID, subcommand.Options)
	case "attack":
		b.handleAttack(ctx, s, i, playerID, subcommand.Options)
	case "status":
		b.handleStatus(ctx, s, i, playerID)
	default:
		respondError(s, i, "unknown subcommand")
	}
}

func (b *DiscordBot) handleHost(
	ctx context.Context,
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	playerID string,
	options []*discordgo.ApplicationCommandInteractionDataOption,
) {
	optMap := optionsByName(options)

	fleet := "classic"
	if opt, ok := optMap["fleet"]; ok {
		fleet = opt.StringValue()
	}

	mode := "multiplayer"
	if opt, ok := optMap["ai"]; ok && opt.BoolValue() {
		mode = "single_player"
	}

	matchID, err := b.ctrl.HostGameAction(ctx, playerID, mode, fleet, 10)
	if err != nil {
		respondError(s, i, fmt.Sprintf("failed to create match: %v", err))
		return
	}

	discordUserID := i.Member.User.ID
	b.registerMatch(playerID, discordUserID, matchID, i.ChannelID)

	embed := &discordgo.MessageEmbed{
		Title: "🎮 Match Created!",
		Description: fmt.Sprintf(
			"Match ID: `%s`\n\nShare this ID with your opponent so they can join!",
			matchID,
		),
		Color: 0x00ff00,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Use /battleship place to set up your ships",
		},
	}

	respondEmbed(s, i, embed, false)
}

func (b *DiscordBot) handleJoin(
	ctx context.Context,
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	playerID string,
	options []*discordgo.ApplicationCommandInteractionDataOption,
) {
	matchID := options[0].StringValue()

	view, err := b.ctrl.JoinGameAction(ctx, matchID, playerID)
	if err != nil {
		respondError(s, i, fmt.Sprintf("failed to join match: %v", err))
		return
	}

	discordUserID := i.Member.User.ID
	b.trackPlayer(playerID, discordUserID)
	b.trackMatch(discordUserID, matchID)

	embed := &discordgo.MessageEmbed{
		Title:       "✅ Joined Match!",
		Description: fmt.Sprintf("Match ID: `%s`\n\nGame State: %s", matchID, view.Status),
		Color:       0x00ff00,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Use /battleship place to set up your ships",
		},
	}

	respondEmbed(s, i, embed, true)
}

func (b *DiscordBot) handleList(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	matches, err := b.ctrl.ListOpenGamesAction(ctx)
	if err != nil {
		respondError(s, i, fmt.Sprintf("failed to list matches: %v", err))
		return
	}

	if len(matches) == 0 {
		embed := &discordgo.MessageEmbed{
			Title:       "📋 Available Matches",
			Description: "No matches available. Use `/battleship host` to create one!",
			Color:       0xffaa00,
		}
		respondEmbed(s, i, embed, true)
		return
	}

	description := ""
	for _, match := range matches {
		description += fmt.Sprintf(
			"**%s** - Host: %s (%s, %s)\n",
			match.ID,
			match.HostID,
			match.BaseFleetID,
			match.Status,
		)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "📋 Available Matches",
		Description: description,
		Color:       0x0099ff,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Use /battleship join <match_id> to join a match",
		},
	}

	respondEmbed(s, i, embed, true)
}

func (b *DiscordBot) handlePlace(
	ctx context.Context,
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	playerID string,
	options []*discordgo.ApplicationCommandInteractionDataOption,
) {
	discordUserID := i.Member.User.ID
	matchID, ok := b.getActiveMatch(discordUserID)
	if !ok {
		respondError(s, i, "you are not in an active match. Use `/battleship host` or `/battleship join` first")
		return
	}

	optMap := optionsByName(options)

	req := dto.PlaceShipRequest{
		TemplateID:     optMap["ship"].StringValue(),
		PlacementIndex: int(optMap["index"].IntValue()),
		Coordinate:     optMap["coordinate"].StringValue(),
		Orientation:    optMap["orientation"].StringValue(),
	}

	view, err := b.ctrl.PlaceShipAction(ctx, matchID, playerID, req)
	if err != nil {
		respondError(s, i, fmt.Sprintf("failed to place ship: %v", err))
		return
	}

	embed := FormatGameState(&view)
	embed.Title = "🚢 Ship Placed!"
	respondEmbed(s, i, embed, true)
}

func (b *DiscordBot) handleAttack(
	ctx context.Context,
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	playerID string,
	options []*discordgo.ApplicationCommandInteractionDataOption,
) {
	discordUserID := i.Member.User.ID
	matchID, ok := b.getActiveMatch(discordUserID)
	if !ok {
		respondError(s, i, "you are not in an active match. Use `/battleship host` or `/battleship join` first")
		return
	}

	coordinate := options[0].StringValue()

	resp, err := b.ctrl.ShootAction(ctx, matchID, playerID, dto.ShootRequest{Coordinate: coordinate})
	if err != nil {
		respondError(s, i, fmt.Sprintf("failed to attack: %v", err))
		return
	}

	view, err := b.ctrl.GetGameStateAction(ctx, matchID, playerID)
	if err != nil {
		respondError(s, i, fmt.Sprintf("failed to fetch game state: %v", err))
		return
	}

	embed := FormatGameState(&view)
	embed.Title = fmt.Sprintf("💥 Attack at %s: %s!", coordinate, resp.Result)
	respondEmbed(s, i, embed, true)
}

func (b *DiscordBot) handleStatus(
	ctx context.Context,
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	playerID string,
) {
	discordUserID := i.Member.User.ID
	matchID, ok := b.getActiveMatch(discordUserID)
	if !ok {
		respondError(s, i, "you are not in an active match. Use `/battleship host` or `/battleship join` first")
		return
	}

	view, err := b.ctrl.GetGameStateAction(ctx, matchID, playerID)
	if err != nil {
		respondError(s, i, fmt.Sprintf("failed to get game state: %v", err))
		return
	}

	embed := FormatGameState(&view)
	respondEmbed(s, i, embed, true)
}

func optionsByName(
	options []*discordgo.ApplicationCommandInteractionDataOption,
) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// Helper functions for responding

func respondEmbed(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	embed *discordgo.MessageEmbed,
	ephemeral bool,
) {
	flags := discordgo.MessageFlags(0)
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  flags,
		},
	})
	if err != nil {
		log.Printf("failed to respond to interaction: %v", err)
	}
}

func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	embed := &discordgo.MessageEmbed{
		Title:       "❌ Error",
		Description: message,
		Color:       0xff0000,
	}
	respondEmbed(s, i, embed, true)
}
