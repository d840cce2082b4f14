package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"guildhall/internal/config"
	"guildhall/internal/ops"
	"guildhall/internal/save"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "backup":
		if err := cmdBackup(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "backup failed:", err)
			os.Exit(1)
		}
	case "restore":
		if err := cmdRestore(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "restore failed:", err)
			os.Exit(1)
		}
	case "verify":
		if err := cmdVerify(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "verify failed:", err)
			os.Exit(1)
		}
	default:
		printUsage()
		os.Exit(2)
	}
}

func cmdBackup(args []string) error {
	fs := flag.NewFlagSet("backup", flag.ContinueOnError)
	dataDir := fs.String("data-dir", "data", "path to data directory")
	keep := fs.Int("keep", 5, "number of backups to retain (0 keeps all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	savePath := filepath.Join(*dataDir, "guildhall.json")
	if err := ops.BackupSaveFile(savePath, *keep); err != nil {
		return err
	}
	fmt.Println("backed up", savePath)
	return nil
}

func cmdRestore(args []string) error {
	fs := flag.NewFlagSet("restore", flag.ContinueOnError)
	backup := fs.String("backup", "", "backup file to restore from")
	dataDir := fs.String("data-dir", "data", "path to data directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *backup == "" {
		return fmt.Errorf("backup is required")
	}

	savePath := filepath.Join(*dataDir, "guildhall.json")
	if err := ops.RestoreSaveFile(*backup, savePath); err != nil {
		return err
	}
	fmt.Println("restored", savePath)
	return nil
}

// cmdVerify loads the save through the same self-healing pass the
// server uses and prints what the game would actually start with.
func cmdVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	dataDir := fs.String("data-dir", "data", "path to data directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := save.NewFileStore(*dataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	snap, ok, err := store.Load(context.Background())
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no readable save in %s", *dataDir)
	}

	state := save.Restore(snap, config.Default())
	fmt.Printf("turn:       %d\n", state.Turn)
	fmt.Printf("gold:       %d\n", state.Gold)
	fmt.Printf("reputation: %d\n", state.Reputation)
	fmt.Printf("roster:     %d\n", len(state.Roster))
	fmt.Printf("quests:     %d\n", len(state.Quests))
	return nil
}

func printUsage() {
	fmt.Println("usage:")
	fmt.Println("  guildhall-ops backup  --data-dir data --keep 5")
	fmt.Println("  guildhall-ops restore --backup data/backups/guildhall.json.<ts>.bak --data-dir data")
	fmt.Println("  guildhall-ops verify  --data-dir data")
}
