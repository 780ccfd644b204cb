// Package main runs a single demo clash: the configured player attacks the
// configured monster once and the monster's remaining hit points are printed.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/clash/internal/config"
	"github.com/cory-johannsen/clash/internal/game/bestiary"
	"github.com/cory-johannsen/clash/internal/game/combat"
	"github.com/cory-johannsen/clash/internal/game/dice"
	"github.com/cory-johannsen/clash/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/clash.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger, dice.NewCryptoSource(), os.Stdout); err != nil {
		logger.Fatal("clash failed", zap.Error(err))
	}
	logger.Debug("done", zap.Duration("elapsed", time.Since(start)))
}

// run loads the bestiary, spawns the encounter and resolves one clash,
// writing the defender's hit points to out.
func run(cfg config.Config, logger *zap.Logger, src dice.Source, out io.Writer) error {
	templates, err := bestiary.LoadTemplates(cfg.Content.CreaturesDir)
	if err != nil {
		return fmt.Errorf("loading creatures: %w", err)
	}
	reg, err := bestiary.NewRegistry(templates)
	if err != nil {
		return err
	}
	logger.Info("bestiary loaded",
		zap.String("dir", cfg.Content.CreaturesDir),
		zap.Strings("templates", reg.IDs()),
	)

	player, err := reg.Player(cfg.Encounter.Player)
	if err != nil {
		return err
	}
	monster, err := reg.Monster(cfg.Encounter.Monster)
	if err != nil {
		return err
	}

	res := combat.NewResolver(src, logger).Clash(player.Creature, monster.Creature)

	_, err = fmt.Fprintf(out, "%s %s %s: %d/%d hp (%s)\n",
		player.Name, res.Outcome(), monster.Name, monster.HP(), monster.MaxHP(), monster.HealthDescription())
	return err
}
