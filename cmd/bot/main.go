package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/creature-battle/internal/clients/catalogdata"
	"github.com/KirkDiggler/creature-battle/internal/config"
	"github.com/KirkDiggler/creature-battle/internal/dice"
	"github.com/KirkDiggler/creature-battle/internal/domain/catalog"
	"github.com/KirkDiggler/creature-battle/internal/handlers/discord"
	"github.com/KirkDiggler/creature-battle/internal/handlers/spectate"
	"github.com/KirkDiggler/creature-battle/internal/repositories/battles"
	"github.com/KirkDiggler/creature-battle/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	if err := run(); err != nil {
		log.Fatalf("Bot stopped: %v", err)
	}
}

func run() error {
	cfg, err := config.LoadBot()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log.Printf("Application ID: %s", cfg.Discord.AppID)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := loadCatalog(ctx, cfg.Catalog.Dir)
	if err != nil {
		return err
	}

	providerConfig := &services.ProviderConfig{
		Catalog:      cat,
		Roller:       dice.NewRandomRoller(),
		DefaultLevel: cfg.Battle.DefaultLevel,
	}
	if cfg.Battle.Seed != 0 {
		log.Printf("Using seeded dice roller: %d", cfg.Battle.Seed)
		providerConfig.Roller = dice.NewSeededRoller(cfg.Battle.Seed)
	}

	if redisClient := connectRedis(ctx, cfg.Redis.URL); redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			}
		}()
		providerConfig.BattleRepository = battles.NewRedisRepository(&battles.RedisRepoConfig{
			Client: redisClient,
			TTL:    cfg.Redis.TTL,
		})
		log.Println("Using Redis for persistence")
	}

	provider := services.NewProvider(providerConfig)

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}
	handler := discord.NewHandler(&discord.HandlerConfig{
		BattleService: provider.BattleService,
		SpriteBaseURL: cfg.Catalog.SpriteBaseURL,
	})
	dg.AddHandler(discord.Chain(handler.HandleInteraction, discord.LogMiddleware, discord.RecoverMiddleware))

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}
	defer func() {
		if err := dg.Close(); err != nil {
			log.Printf("Failed to close Discord connection: %v", err)
		}
	}()

	// an empty guild registers global commands, which take up to an hour to propagate
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		return err
	}
	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	}

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Spectate.Addr != "" {
		mux := http.NewServeMux()
		spectate.NewHandler(&spectate.HandlerConfig{
			BattleService: provider.BattleService,
			EventBus:      provider.EventBus,
		}).Register(mux)
		serveSpectators(gctx, g, &http.Server{
			Addr:              cfg.Spectate.Addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		})
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	g.Go(func() error {
		<-gctx.Done()
		return nil
	})
	err = g.Wait()
	fmt.Println("Shutting down...")
	return err
}

func loadCatalog(ctx context.Context, dir string) (*catalog.Catalog, error) {
	client, err := catalogdata.New(&catalogdata.Config{Dir: dir})
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	cat, err := client.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}

// connectRedis returns nil when url is empty or the server does not answer,
// in which case battles stay in memory
func connectRedis(ctx context.Context, url string) *redis.Client {
	if url == "" {
		log.Println("No REDIS_URL found, using in-memory repositories")
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("Failed to parse Redis URL, falling back to in-memory repositories: %v", err)
		return nil
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("Failed to connect to Redis at %s, falling back to in-memory repositories: %v", opts.Addr, err)
		_ = client.Close()
		return nil
	}

	log.Printf("Connected to Redis at %s", opts.Addr)
	return client
}

// serveSpectators runs srv in g until ctx is done, then shuts it down
func serveSpectators(ctx context.Context, g *errgroup.Group, srv *http.Server) {
	g.Go(func() error {
		log.Printf("Spectator feed listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("spectator server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}
