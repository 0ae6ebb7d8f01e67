package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dev-tams/bucketsweep/internal/app"
	"github.com/dev-tams/bucketsweep/internal/config"
	s3store "github.com/dev-tams/bucketsweep/internal/storage/s3"
	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:  "bucketsweep",
		Usage: "delete objects from an S3-compatible bucket by extension or filename pattern",
		Commands: []*cli.Command{
			{
				Name:   "clean",
				Usage:  "scan the bucket and delete matching objects after confirmation",
				Flags:  cleanFlags(),
				Action: func(c *cli.Context) error { return runClean(c, false) },
			},
			{
				Name:   "scan",
				Usage:  "preview matching objects without deleting anything",
				Flags:  cleanFlags(),
				Action: func(c *cli.Context) error { return runClean(c, true) },
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func cleanFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "env-file",
			Aliases: []string{"e"},
			Value:   ".env",
			Usage:   "path to env file with credentials and criteria",
		},
		&cli.StringFlag{
			Name:  "bucket",
			Usage: "target bucket (overrides R2_BUCKET)",
		},
		&cli.StringFlag{
			Name:  "prefix",
			Usage: "restrict scanning to keys under this prefix (overrides R2_PREFIX)",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "preview matches without deleting anything",
		},
	}
}

func runClean(c *cli.Context, forceDryRun bool) error {
	cfg, err := config.Load(c.String("env-file"), c.IsSet("env-file"))
	if err != nil {
		return err
	}

	if c.IsSet("bucket") {
		cfg.Bucket = c.String("bucket")
	}
	if c.IsSet("prefix") {
		cfg.Prefix = c.String("prefix")
	}
	if forceDryRun || c.Bool("dry-run") {
		cfg.DryRun = true
	}

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrNoCriteria) {
			return fmt.Errorf("%w\n\n%s", err, config.ExampleCriteria)
		}
		return err
	}

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	// Interrupts cancel the context; in-flight storage calls abort and the
	// run terminates without touching further batches.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	store, err := s3store.New(ctx, s3store.Options{
		AccountID:      cfg.AccountID,
		AccessKeyID:    cfg.AccessKeyID,
		SecretKey:      cfg.SecretKey,
		EndpointDomain: cfg.EndpointDomain,
	})
	if err != nil {
		return err
	}

	printBanner(cfg)

	cleaner := &app.Cleaner{Store: store, In: os.Stdin, Out: os.Stdout}
	_, err = cleaner.Run(ctx, cfg)
	return err
}

func printBanner(cfg *config.Config) {
	rule := "============================================================"
	fmt.Println()
	fmt.Println(rule)
	fmt.Println("S3-Compatible Storage Pattern Deletion Tool")
	fmt.Printf("Bucket: %s\n", cfg.Bucket)
	if cfg.DryRun {
		fmt.Println("Mode: DRY RUN (preview only)")
	}
	fmt.Printf("%s\n\n", rule)
}
