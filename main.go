package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"readwatch/internal/adapters/handler"
	"readwatch/internal/adapters/sender"
	"readwatch/internal/adapters/tracker"
	"readwatch/internal/core/domain/command"
	"readwatch/internal/core/service"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	pflag.StringP("config", "c", ".", "directory containing config.toml")
	pflag.String("once", "", "handle a single message, print the reply and exit")
	pflag.Parse()

	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		log.Fatal().Err(err).Msg("could not bind flags")
	}

	log.Info().Msg("starting readwatch bot...")

	viper.SetDefault("bot.log_level", "info")
	viper.SetDefault("readwatch.api_url", "http://localhost:3000")
	viper.SetDefault("readwatch.timeout", "15s")

	viper.SetEnvPrefix("readwatch")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.AddConfigPath(viper.GetString("config"))
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	log.Info().Msg("reading config file...")
	err := viper.ReadInConfig()
	if err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			log.Fatal().Err(err).Msg("could not read config file")
		}
		log.Warn().Msg("no config file found, using defaults")
	}

	var logLevel zerolog.Level

	switch viper.GetString("bot.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)
	// log.Ctx falls back to the global logger when no message logger is set
	zerolog.DefaultContextLogger = &log.Logger

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	timeout, err := time.ParseDuration(viper.GetString("readwatch.timeout"))
	if err != nil {
		log.Panic().Err(err).Msg("invalid timeout for readwatch API in config")
	}

	readWatch := tracker.NewReadWatch(viper.GetString("readwatch.api_url"), &http.Client{Timeout: timeout})

	commandRegistry := &command.Registry{}
	commandRegistry.Register(command.NewAddEntry(readWatch))
	commandRegistry.Register(command.NewRemoveEntry(readWatch))
	commandRegistry.Register(command.NewListEntries(readWatch))
	commandRegistry.Register(command.NewSearchTitle(readWatch))

	dispatcher := service.NewDispatcher(commandRegistry, timeout)

	if message := viper.GetString("once"); message != "" {
		fmt.Println(dispatcher.Dispatch(ctx, message))
		return
	}

	telegramToken := viper.GetString("telegram.bot_token")
	discordToken := viper.GetString("discord.bot_token")

	if telegramToken == "" && discordToken == "" {
		log.Fatal().Msg("neither telegram.bot_token nor discord.bot_token is configured")
	}

	if discordToken != "" {
		session, err := discordgo.New("Bot " + discordToken)
		if err != nil {
			log.Panic().Err(err).Msg("failed initializing discord session")
		}

		session.Identify.Intents = discordgo.IntentGuildMessages |
			discordgo.IntentDirectMessages |
			discordgo.IntentMessageContent

		discordHandler := handler.NewDiscord(ctx, dispatcher, sender.NewDiscord(session))
		session.AddHandler(discordHandler.Handle)

		if err := session.Open(); err != nil {
			log.Panic().Err(err).Msg("failed to open discord session")
		}
		defer session.Close()

		log.Info().Msg("discord bot listening")
	}

	if telegramToken == "" {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		return
	}

	b, err := bot.New(telegramToken, bot.WithDefaultHandler(noOpHandler))
	if err != nil {
		log.Panic().Err(err).Msg("failed initializing telegram bot")
	}

	telegramHandler := handler.NewTelegram(dispatcher, sender.NewTelegram(b))
	b.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, telegramHandler.Handle)

	log.Info().Msg("telegram bot listening")
	b.Start(ctx)
}

func noOpHandler(_ context.Context, _ *bot.Bot, _ *models.Update) {}
