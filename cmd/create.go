package cmd

import (
	"github.com/spf13/cobra"
)

var (
	titleFlag  string
	bodyFlag   string
	userIDFlag int64
)

func init() {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "创建一条 post，成功后重新拉取列表",
		Long:  "以 JSON {title, body, userId} 向集合发起 POST。title/body 可以为空，由服务端校验；接口没有幂等键，失败后请勿盲目重试。",
		Args:  cobra.NoArgs,
		RunE:  runCreate,
	}

	cmd.Flags().StringVar(&titleFlag, "title", "", "post 标题")
	cmd.Flags().StringVar(&bodyFlag, "body", "", "post 内容")
	cmd.Flags().Int64Var(&userIDFlag, "user-id", 0, "覆盖配置文件中的 userId（可选）")

	rootCmd.AddCommand(cmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	c, err := newConsole(cmd)
	if err != nil {
		return err
	}
	if userIDFlag > 0 {
		c.UserID = userIDFlag
	}
	return c.SubmitPost(cmd.Context(), titleFlag, bodyFlag)
}
