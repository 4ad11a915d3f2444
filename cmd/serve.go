package cmd

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/wangdayong228/posts-client/internal/mockserver"
)

var (
	listenAddr string
	seedCount  int
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "在本地启动一个内存版的 /posts 集合",
		Long:  "serve 以 jsonplaceholder 的接口形式（GET/POST /posts，GET/DELETE /posts/:id）提供一个内存集合，便于离线调试 list/create/delete。数据不落盘，进程退出即丢失。",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	cmd.Flags().StringVar(&listenAddr, "addr", ":8080", "监听地址")
	cmd.Flags().IntVar(&seedCount, "seed", 10, "启动时预置的示例 post 数量")

	rootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if seedCount < 0 {
		return errors.Errorf("seed 不能为负数: %d", seedCount)
	}

	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	if logLevelFlag != "" {
		lvl, err := logrus.ParseLevel(logLevelFlag)
		if err != nil {
			return err
		}
		log.SetLevel(lvl)
	}

	gin.SetMode(gin.ReleaseMode)
	store := mockserver.NewStore(mockserver.SamplePosts(seedCount)...)
	return mockserver.Serve(cmd.Context(), listenAddr, mockserver.NewHandler(store, log), log)
}
