package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "拉取并输出全部 post",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	rootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) error {
	c, err := newConsole(cmd)
	if err != nil {
		return err
	}
	return c.FetchPosts(cmd.Context())
}
