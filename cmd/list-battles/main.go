package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/creature-battle/internal/domain/game/combat"
	"github.com/KirkDiggler/creature-battle/internal/repositories/battles"
)

func main() {
	owner := flag.String("owner", "", "only list battles started by this Discord user id")
	flag.Parse()

	ctx := context.Background()

	// Set up Redis
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	// Test connection
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	repo := battles.NewRedisRepository(&battles.RedisRepoConfig{Client: client})

	if *owner != "" {
		list, listErr := repo.ListByOwner(ctx, *owner)
		if listErr != nil {
			log.Fatalf("Failed to list battles: %v", listErr)
		}
		fmt.Printf("Found %d battles for %s:\n", len(list), *owner)
		for _, b := range list {
			printBattle(b)
		}
		return
	}

	// Find all battle keys
	var keys []string
	iter := client.Scan(ctx, 0, "battle:*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Fatalf("Failed to scan battle keys: %v", err)
	}

	fmt.Printf("Found %d battles:\n", len(keys))
	for _, key := range keys {
		b, getErr := repo.Get(ctx, key[len("battle:"):])
		if getErr != nil {
			fmt.Printf("  %s: ERROR - %v\n", key, getErr)
			continue
		}
		printBattle(b)
	}
}

func printBattle(b *combat.Battle) {
	fmt.Printf("  %s [%s] owner=%s turn=%d %s %d/%d vs %s %d/%d",
		b.ID, b.Status, b.OwnerID, b.Turn,
		b.A.Name(), b.A.HP(), b.A.MaxHP(),
		b.B.Name(), b.B.HP(), b.B.MaxHP())
	if side, ok := b.WinnerSide(); ok {
		fmt.Printf(" winner=%s", b.Combatant(side).Name())
	}
	fmt.Println()
}
