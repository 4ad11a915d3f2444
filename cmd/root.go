package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/wangdayong228/posts-client/internal/config"
	"github.com/wangdayong228/posts-client/internal/console"
	postssdk "github.com/wangdayong228/posts-client/pkg/posts-sdk"
)

var (
	configPath   string
	baseURLFlag  string
	timeoutFlag  time.Duration
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:           "posts-client",
	Short:         "posts 集合的命令行客户端",
	Long:          "posts-client 是一款用 Go 编写的 CLI 工具，对一个 REST 集合（默认 jsonplaceholder 的 /posts）执行 list / create / delete。",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "f", "", "配置文件路径（YAML，可选）")
	rootCmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "覆盖配置文件中的集合地址（可选）")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 0, "覆盖配置文件中的请求超时（可选）")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "覆盖配置文件中的日志级别（可选）")
}

// Execute 入口，Ctrl-C 会取消正在进行的请求。
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	cancel()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig 读取配置文件（如果有）并应用命令行覆盖。
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadFromFile(configPath); err != nil {
			return nil, err
		}
	}
	if baseURLFlag != "" {
		cfg.BaseURL = baseURLFlag
	}
	if timeoutFlag > 0 {
		cfg.Timeout = timeoutFlag
	}
	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newConsole 根据配置构造 Console，输出到 cmd 的 stdout。
func newConsole(cmd *cobra.Command) (*console.Console, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log := cfg.Logger()
	log.SetOutput(cmd.ErrOrStderr())
	if configPath != "" {
		log.WithField("path", configPath).Debug("config loaded")
	}

	client := postssdk.New(cfg.BaseURL, cfg.ClientOptions(log)...)
	return console.New(client.Posts, cmd.OutOrStdout(), log, cfg.UserID), nil
}
