package main

import (
	"log/slog"
	"os"

	"github.com/osse101/QuestTown_Go/internal/config"
	"github.com/osse101/QuestTown_Go/internal/content"
	"github.com/osse101/QuestTown_Go/internal/discord"
	"github.com/osse101/QuestTown_Go/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName+"-discord", cfg.Version, cfg.Environment, false))

	if err := config.ValidateDiscordEnv(); err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Configured API URL", "url", cfg.APIURL)

	// Command choices come from the same content the API serves
	table := content.Default()
	if cfg.ContentPath != "" {
		if table, err = content.Load(cfg.ContentPath); err != nil {
			slog.Error("Failed to load content", "path", cfg.ContentPath, "error", err)
			os.Exit(1)
		}
	}

	bot, err := discord.New(discord.Config{
		Token:   cfg.DiscordToken,
		AppID:   cfg.DiscordAppID,
		GuildID: cfg.DiscordGuildID,
		APIURL:  cfg.APIURL,
		APIKey:  cfg.APIKey,
	})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	httpServer := discord.NewHTTPServer(cfg.DiscordPort, bot)
	httpServer.Start()
	defer httpServer.Stop()

	bot.Registry.RegisterAll(discord.CatalogFromTable(table).Factories())

	if cfg.DiscordForce {
		slog.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(cfg.DiscordForce); err != nil {
		// the bot can still serve commands registered by an earlier run
		slog.Error("Failed to register commands", "error", err)
	}

	if err := bot.Run(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}
