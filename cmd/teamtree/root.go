package main

import (
	"fmt"
	"os"

	"github.com/aretw0/teamtree"
	"github.com/aretw0/teamtree/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "teamtree",
	Short: "TeamTree manages team hierarchies as binary trees",
	Long: `TeamTree keeps organizational charts where every manager has at most a left
and a right direct report. Charts are stored locally, in memory or in Redis.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("store", cli.EnvOr("TEAMTREE_STORE", teamtree.StoreFile), "Chart store: memory, file or redis")
	flags.String("dir", cli.EnvOr("TEAMTREE_DIR", ".teamtree"), "Data directory for the file store")
	flags.String("redis-addr", cli.EnvOr("TEAMTREE_REDIS_ADDR", "localhost:6379"), "Redis address")
	flags.String("redis-password", cli.EnvOr("TEAMTREE_REDIS_PASSWORD", ""), "Redis password")
	flags.Int("redis-db", cli.EnvIntOr("TEAMTREE_REDIS_DB", 0), "Redis database")
	flags.String("log-level", cli.EnvOr("TEAMTREE_LOG_LEVEL", "warn"), "Log level: debug, info, warn or error")
	flags.String("encryption-key", cli.EnvOr("TEAMTREE_ENCRYPTION_KEY", ""), "Base64 AES-256 key to seal charts at rest")
	flags.StringP("chart", "c", "default", "Chart ID")
}

// options collects the persistent flags.
func options(cmd *cobra.Command) cli.Options {
	flags := cmd.Flags()
	store, _ := flags.GetString("store")
	dir, _ := flags.GetString("dir")
	addr, _ := flags.GetString("redis-addr")
	password, _ := flags.GetString("redis-password")
	db, _ := flags.GetInt("redis-db")
	level, _ := flags.GetString("log-level")
	key, _ := flags.GetString("encryption-key")
	return cli.Options{
		Store:         store,
		Dir:           dir,
		RedisAddr:     addr,
		RedisPassword: password,
		RedisDB:       db,
		LogLevel:      level,
		EncryptionKey: key,
	}
}

func openService(cmd *cobra.Command) (*teamtree.Service, error) {
	svc, _, err := cli.OpenService(options(cmd))
	return svc, err
}

func chartID(cmd *cobra.Command) string {
	id, _ := cmd.Flags().GetString("chart")
	return id
}
