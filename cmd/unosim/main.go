package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"

	"github.com/ratel-online/unosim/config"
	"github.com/ratel-online/unosim/consts"
	"github.com/ratel-online/unosim/simulation"
	"github.com/ratel-online/unosim/uno/card/color"
	"github.com/ratel-online/unosim/uno/msg"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
			os.Exit(1)
		}
	}()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Error(err)
		os.Exit(exitCode(err))
	}

	fmt.Fprintln(color.Stdout, msg.Message.Welcome())
	log.Infof("playing %d game(s) with %d players over %d worker(s), seed %d\n", cfg.Games, cfg.Players, cfg.Workers, cfg.Seed)

	stats := simulation.RunBatch(cfg.Batch())
	fmt.Fprintln(color.Stdout, stats.String())
	if stats.Errors > 0 {
		os.Exit(1)
	}
}

func exitCode(err error) int {
	var e consts.Error
	if errors.As(err, &e) && e.Exit {
		return e.Code
	}
	return 1
}
