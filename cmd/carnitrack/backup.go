package carnitrack

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/carnitrack/carnitrack/internal/service"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage database backups",
}

var (
	backupOut    string
	backupDir    string
	restoreForce bool
)

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a database backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		storePath, err := resolveStorePath()
		if err != nil {
			return err
		}
		out := backupOut
		if out == "" {
			dir := backupDir
			if dir == "" {
				dir = filepath.Join(filepath.Dir(storePath), "backups")
			}
			out = filepath.Join(dir, fmt.Sprintf("carnitrack-%s.db", time.Now().Format("20060102-150405")))
		}
		info, err := service.CreateBackup(storePath, out)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created backup: %s\n", info.Path)
		fmt.Fprintf(cmd.OutOrStdout(), "Checksum: %s\n", info.Checksum)
		return nil
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backups",
	RunE: func(cmd *cobra.Command, args []string) error {
		storePath, err := resolveStorePath()
		if err != nil {
			return err
		}
		dir := backupDir
		if dir == "" {
			dir = filepath.Join(filepath.Dir(storePath), "backups")
		}
		items, err := service.ListBackups(dir)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "FILE\tSIZE\tCREATED\tCHECKSUM")
		for _, it := range items {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\t%s\n", it.Path, it.SizeBytes, it.CreatedAt.Format(time.RFC3339), it.Checksum)
		}
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Restore the database from a backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		storePath, err := resolveStorePath()
		if err != nil {
			return err
		}
		if err := service.RestoreBackup(args[0], storePath, restoreForce); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored %s from %s\n", storePath, args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd, backupListCmd, backupRestoreCmd)

	backupCreateCmd.Flags().StringVar(&backupOut, "out", "", "Backup file path")
	backupCreateCmd.Flags().StringVar(&backupDir, "dir", "", "Backup directory (default <store dir>/backups)")
	backupListCmd.Flags().StringVar(&backupDir, "dir", "", "Backup directory (default <store dir>/backups)")
	backupRestoreCmd.Flags().BoolVar(&restoreForce, "force", false, "Overwrite an existing database")
}
