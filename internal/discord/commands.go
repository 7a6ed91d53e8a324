package discord

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/bwmarrin/discordgo"
)

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient)

// CommandFactory creates a command and its handler
type CommandFactory func() (*discordgo.ApplicationCommand, CommandHandler)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, h CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = h
}

// RegisterAll registers every factory
func (r *CommandRegistry) RegisterAll(factories []CommandFactory) {
	for _, factory := range factories {
		r.Register(factory())
	}
}

// Names lists registered command names in order
func (r *CommandRegistry) Names() []string {
	names := make([]string, 0, len(r.Commands))
	for name := range r.Commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Handle dispatches an application command interaction. It reports
// whether a handler ran.
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) bool {
	if i.Type != discordgo.InteractionApplicationCommand {
		return false
	}
	h, ok := r.Handlers[i.ApplicationCommandData().Name]
	if !ok {
		return false
	}
	RecordCommand()
	h(s, i, client)
	return true
}

// RegisterCommands pushes the registry to Discord when it differs from
// what is already registered, or unconditionally with forceUpdate
func (b *Bot) RegisterCommands(forceUpdate bool) error {
	slog.Info(LogMsgCheckingCommands)

	existing, err := b.Session.ApplicationCommands(b.AppID, b.GuildID)
	if err != nil {
		return fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	desired := make([]*discordgo.ApplicationCommand, 0, len(b.Registry.Commands))
	for _, name := range b.Registry.Names() {
		desired = append(desired, b.Registry.Commands[name])
	}

	if !forceUpdate && commandsEqual(existing, desired) {
		slog.Info(LogMsgCommandsUnchanged, "count", len(existing))
		return nil
	}

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, b.GuildID, desired); err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}
	slog.Info(LogMsgCommandsUpdated, "count", len(desired), "forced", forceUpdate)
	return nil
}

// commandsEqual compares command sets by name, description and options
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	byName := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		byName[cmd.Name] = cmd
	}

	for _, want := range desired {
		got, ok := byName[want.Name]
		if !ok || !commandEqual(got, want) {
			return false
		}
	}
	return true
}

func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description || len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		if !optionEqual(a.Options[i], b.Options[i]) {
			return false
		}
	}
	return true
}

func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description || a.Required != b.Required {
		return false
	}
	if len(a.Choices) != len(b.Choices) {
		return false
	}
	for i := range a.Choices {
		if a.Choices[i].Name != b.Choices[i].Name || a.Choices[i].Value != b.Choices[i].Value {
			return false
		}
	}
	return true
}
