package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/savefile"
)

const (
	keyPrefix = "character:"
	indexKey  = "characters:index"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupted save games...")

	iter := client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()

	var corrupted []string
	var checked int

	for iter.Next(ctx) {
		key := iter.Val()
		checked++

		data, err := client.HGet(ctx, key, "data").Result()
		if err != nil {
			fmt.Printf("✗ Missing save text in %s: %v\n", key, err)
			corrupted = append(corrupted, key)
			continue
		}

		if _, err := savefile.Decode(data); err != nil {
			fmt.Printf("✗ %s: %s (%s)\n", key, errors.GetMessage(err), errors.GetCode(err))
			corrupted = append(corrupted, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	// Index entries whose hash is gone make List report saves that Load cannot find.
	names, err := client.SMembers(ctx, indexKey).Result()
	if err != nil {
		log.Fatal("Error reading save index:", err)
	}
	var dangling []string
	for _, name := range names {
		n, err := client.Exists(ctx, keyPrefix+name).Result()
		if err != nil {
			fmt.Printf("Error checking %s: %v\n", name, err)
			continue
		}
		if n == 0 {
			dangling = append(dangling, name)
		}
	}

	fmt.Printf("\nChecked %d saves, found %d corrupted and %d dangling index entries\n",
		checked, len(corrupted), len(dangling))

	if len(corrupted) == 0 && len(dangling) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	for _, key := range corrupted {
		fmt.Printf("  - %s\n", key)
	}
	for _, name := range dangling {
		fmt.Printf("  - %s (index only)\n", name)
	}

	fmt.Print("\nDo you want to DELETE these entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corrupted {
		name := strings.TrimPrefix(key, keyPrefix)
		pipe := client.TxPipeline()
		pipe.Del(ctx, key)
		pipe.SRem(ctx, indexKey, name)
		if _, err := pipe.Exec(ctx); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	for _, name := range dangling {
		if err := client.SRem(ctx, indexKey, name).Err(); err != nil {
			fmt.Printf("Failed to unindex %s: %v\n", name, err)
		} else {
			fmt.Printf("Unindexed %s\n", name)
		}
	}
	fmt.Println("\nCleanup complete!")
}
