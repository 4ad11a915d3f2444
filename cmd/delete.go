package cmd

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "删除指定 id 的 post，成功后重新拉取列表",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	rootCmd.AddCommand(cmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errors.Wrapf(err, "id 不合法: %q", args[0])
	}

	c, err := newConsole(cmd)
	if err != nil {
		return err
	}
	return c.DeletePost(cmd.Context(), id)
}
