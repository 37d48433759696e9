// 18 Oct 2026

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	. "github.com/andrew-torda/simeds/pkg/seq/common"
	"github.com/andrew-torda/simeds/pkg/simeds"
)

func main() {
	f := flag.NewFlagSet("simeds", flag.ContinueOnError)
	f.Usage = func() {
		fmt.Fprintln(f.Output(), "usage: simeds [options] [n]")
		f.PrintDefaults()
	}
	cfg, err := simeds.ParseArgs(f, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(ExitSuccess)
	}
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		f.Usage()
		os.Exit(ExitUsageError)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = simeds.Mymain(ctx, cfg)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
