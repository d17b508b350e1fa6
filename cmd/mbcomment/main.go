package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/mbcomment/internal/config"
	"github.com/handiism/mbcomment/internal/process"
)

func main() {
	// Command line flags
	var (
		configFlag    = flag.String("config", "", "Path to config file (.json, .yaml or .yml)")
		offlineFlag   = flag.String("offline", "", "Read MusicBrainz lookups from this directory instead of the web service")
		dryRunFlag    = flag.Bool("dry-run", false, "Show the derived comments without writing tags")
		musicbeeFlag  = flag.Bool("musicbee", false, "Enable MusicBee compatibility")
		noCommentFlag = flag.Bool("no-comment", false, "Disable Copy to Comment")
		verboseFlag   = flag.Bool("verbose", false, "Show verbose output")
		backupFlag    = flag.Bool("backup", false, "Back up files before writing tags")
	)

	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Println("mbcomment - Copy MusicBrainz credits into your tags")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  mbcomment [options] <file or folder>...")
		fmt.Println()
		fmt.Println("For interactive mode, use: mbcomment-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *offlineFlag != "" {
		settings.OfflineDir = *offlineFlag
	}
	if *dryRunFlag {
		settings.DryRun = true
	}
	if *musicbeeFlag {
		settings.MusicBeeCompatibility = true
	}
	if *noCommentFlag {
		settings.CopyToComment = false
	}
	if *backupFlag {
		settings.BackupOriginals = true
	}

	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := process.NewManager(settings, nil, func(event process.ProgressEvent) {
		if event.Level == process.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case process.LevelError:
			prefix = "❌ "
		case process.LevelWarning:
			prefix = "⚠️  "
		case process.LevelSuccess:
			prefix = "✅ "
		case process.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})

	fmt.Println("🎼 mbcomment")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	if err := manager.Initialize(ctx, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing: %v\n", err)
		os.Exit(1)
	}

	if settings.DryRun {
		fmt.Println("\n[Dry run - not writing tags]")
	}
	fmt.Println()

	if err := manager.StartProcessing(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nProcessing cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error during processing: %v\n", err)
		os.Exit(1)
	}

	var written, failed int
	for _, r := range manager.Results() {
		if r.Written {
			written++
		}
		if r.Err != nil {
			failed++
		}
	}

	processed, total := manager.GetProgress()
	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ Complete! Processed %d/%d files, tagged %d\n", processed, total, written)
	if failed > 0 {
		fmt.Printf("   (%d failed)\n", failed)
		os.Exit(1)
	}
}
