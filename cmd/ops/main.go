package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pontesfelipe/sistur-sub000/internal/ops"
)

var (
	dataDir string
	out     string
	archive string
	target  string
)

var rootCmd = &cobra.Command{
	Use:   "ops",
	Short: "Operational tooling for the sistur data directory",
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Archive the data directory to a .tar.gz",
	RunE: func(cmd *cobra.Command, args []string) error {
		if out == "" {
			ts := time.Now().UTC().Format("20060102T150405Z")
			out = filepath.Join("backups", "sistur-"+ts+".tar.gz")
		}
		if err := ops.BackupDataDir(dataDir, out); err != nil {
			return err
		}
		fmt.Println("wrote", out)
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore a backup archive into a fresh data directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if archive == "" {
			return fmt.Errorf("--archive is required")
		}
		if err := ops.RestoreDataDir(archive, target); err != nil {
			return err
		}
		fmt.Println("restored into", target)
		return nil
	},
}

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Backup then restore into a scratch directory to prove the archive round-trips",
	RunE: func(cmd *cobra.Command, args []string) error {
		scratch, err := os.MkdirTemp("", "sistur-drill-*")
		if err != nil {
			return err
		}
		defer os.RemoveAll(scratch)

		archivePath := filepath.Join(scratch, "drill.tar.gz")
		restored := filepath.Join(scratch, "restored")
		if err := ops.BackupDataDir(dataDir, archivePath); err != nil {
			return fmt.Errorf("backup: %w", err)
		}
		if err := ops.RestoreDataDir(archivePath, restored); err != nil {
			return fmt.Errorf("restore: %w", err)
		}
		if err := ops.VerifyRestore(dataDir, restored); err != nil {
			return err
		}
		fmt.Println("drill ok")
		return nil
	},
}

func main() {
	backupCmd.Flags().StringVar(&dataDir, "data-dir", "data", "path to data directory")
	backupCmd.Flags().StringVar(&out, "out", "", "output archive path (.tar.gz)")
	restoreCmd.Flags().StringVar(&archive, "archive", "", "archive path to restore")
	restoreCmd.Flags().StringVar(&target, "target", "data", "directory to restore into")
	drillCmd.Flags().StringVar(&dataDir, "data-dir", "data", "path to data directory")

	rootCmd.AddCommand(backupCmd, restoreCmd, drillCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
