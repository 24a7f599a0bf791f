package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/KirkDiggler/crocodile/internal/common/clock"
	"github.com/KirkDiggler/crocodile/internal/common/random"
	"github.com/KirkDiggler/crocodile/internal/common/uuid"
	"github.com/KirkDiggler/crocodile/internal/config"
	"github.com/KirkDiggler/crocodile/internal/handlers/discord"
	scoresRepo "github.com/KirkDiggler/crocodile/internal/repositories/scores"
	statsRepo "github.com/KirkDiggler/crocodile/internal/repositories/stats"
	wordsRepo "github.com/KirkDiggler/crocodile/internal/repositories/words"
	gameService "github.com/KirkDiggler/crocodile/internal/services/game"
	"github.com/KirkDiggler/crocodile/internal/services/guess"
	"github.com/KirkDiggler/crocodile/internal/services/messaging"
	"github.com/KirkDiggler/crocodile/internal/services/scoreboard"
	"github.com/KirkDiggler/crocodile/internal/services/timers"
	"github.com/KirkDiggler/crocodile/internal/services/wordbank"
	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type repositories struct {
	words  wordsRepo.Repository
	scores scoresRepo.Repository
	stats  statsRepo.Repository
}

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	setupLogging(cfg)

	rules, err := config.LoadRules(cfg.RulesFile)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.RulesFile).Msg("ignoring rules file, using built-in defaults")
		rules = &config.Rules{}
	}

	seedWords, err := config.LoadWords(cfg.WordsFile)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Warn().Str("path", cfg.WordsFile).Msg("words file not found")
	case err != nil:
		log.Error().Err(err).Str("path", cfg.WordsFile).Msg("failed to read words file")
	default:
		log.Info().Int("count", len(seedWords)).Str("path", cfg.WordsFile).Msg("loaded seed words")
	}

	repos := newRepositories(cfg)
	systemClock := clock.New(cfg.Location())
	rng := random.New(nil)

	words, err := wordbank.New(&wordbank.Config{
		Repo:          repos.words,
		Random:        rng,
		SeedWords:     seedWords,
		FallbackWords: rules.FallbackWords,
		MinWordLength: cfg.MinWordLength,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create word bank")
	}

	scores, err := scoreboard.New(&scoreboard.Config{
		Repo:         repos.scores,
		Achievements: rules.Achievements,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create scoreboard")
	}

	evaluator, err := guess.New(&guess.Config{
		Policy:             guess.MatchPolicy(cfg.MatchPolicy),
		LeakMinTokenLength: cfg.LeakMinTokenLength,
		LeakPrefixLength:   cfg.LeakPrefixLength,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create guess evaluator")
	}

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Discord session")
	}

	gameSvc, err := gameService.New(&gameService.Config{
		MaxHints:           cfg.MaxHints,
		AutoHintStep:       cfg.AutoHintStep,
		AttemptsNotifyStep: cfg.AttemptsNotifyStep,
		Location:           cfg.Location(),
		WordBank:           words,
		ScoreBoard:         scores,
		Evaluator:          evaluator,
		Authorizer:         discord.NewAuthorizer(discord.SessionPermissions(session), cfg.PrivilegedUserIDs),
		StatsRepo:          repos.stats,
		Clock:              systemClock,
		UUIDGenerator:      uuid.New(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game service")
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{Random: rng})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create messaging service")
	}

	bot, err := discord.New(&discord.Config{
		Session:       session,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		HomeChannelID: cfg.HomeChannelID,
		GameService:   gameSvc,
		Messaging:     messagingSvc,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Discord bot")
	}

	notifier, err := discord.NewNotifier(&discord.NotifierConfig{
		Transport:   discord.NewSessionTransport(session),
		Messaging:   messagingSvc,
		Names:       gameSvc,
		RecipientID: cfg.ReportRecipientID,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create notifier")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return bot.Run(ctx)
	})

	if cfg.HomeChannelID == "" {
		log.Warn().Msg("HOME_CHANNEL_ID not set, inactivity nudges and daily reports are disabled")
	} else {
		monitor, err := timers.NewInactivityMonitor(&timers.InactivityConfig{
			SessionID:    cfg.HomeChannelID,
			Timeout:      cfg.InactivityTimeout,
			PollInterval: cfg.InactivityPoll,
			Activity:     gameSvc,
			Notifier:     notifier,
			Clock:        systemClock,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create inactivity monitor")
		}
		group.Go(func() error {
			return monitor.Run(ctx)
		})

		if cfg.ReportRecipientID == "" {
			log.Warn().Msg("REPORT_RECIPIENT_ID not set, daily reports are disabled")
		} else {
			reporter, err := timers.NewDailyReporter(&timers.DailyReportConfig{
				SessionID: cfg.HomeChannelID,
				At:        cfg.ReportTime,
				Location:  cfg.Location(),
				StatsRepo: repos.stats,
				Notifier:  notifier,
				Clock:     systemClock,
			})
			if err != nil {
				log.Fatal().Err(err).Msg("failed to create daily reporter")
			}
			group.Go(func() error {
				return reporter.Run(ctx)
			})
		}
	}

	if err := group.Wait(); err != nil {
		log.Error().Err(err).Msg("bot stopped with error")
		os.Exit(1)
	}

	log.Info().Msg("bot has been shut down")
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// newRepositories connects to Redis, falling back to in-memory storage
// so the bot still runs without persistence
func newRepositories(cfg *config.Config) *repositories {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, state will not survive a restart")
		_ = redisClient.Close()
		return memoryRepositories()
	}

	words, err := wordsRepo.NewRedis(&wordsRepo.Config{RedisClient: redisClient, KeyPrefix: cfg.KeyPrefix})
	if err != nil {
		log.Error().Err(err).Msg("failed to create words repository")
		return memoryRepositories()
	}

	scores, err := scoresRepo.NewRedis(&scoresRepo.Config{RedisClient: redisClient, KeyPrefix: cfg.KeyPrefix})
	if err != nil {
		log.Error().Err(err).Msg("failed to create scores repository")
		return memoryRepositories()
	}

	stats, err := statsRepo.NewRedis(&statsRepo.Config{RedisClient: redisClient, KeyPrefix: cfg.KeyPrefix})
	if err != nil {
		log.Error().Err(err).Msg("failed to create stats repository")
		return memoryRepositories()
	}

	log.Info().Str("addr", cfg.RedisAddr).Str("prefix", cfg.KeyPrefix).Msg("connected to redis")
	return &repositories{words: words, scores: scores, stats: stats}
}

func memoryRepositories() *repositories {
	return &repositories{
		words:  wordsRepo.NewMemory(),
		scores: scoresRepo.NewMemory(),
		stats:  statsRepo.NewMemory(),
	}
}
