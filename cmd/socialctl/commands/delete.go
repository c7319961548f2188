package commands

import (
	"fmt"
	"io"
	"sort"

	"mediasocial/internal/cascade"
	"mediasocial/internal/di"

	"github.com/spf13/cobra"
)

var deleteUserCmd = &cobra.Command{
	Use:   "delete-user USER_ID",
	Short: "Delete a user with every post, comment, like and chat it owns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withOps(func(ops *di.Ops) error {
			res, err := ops.Users.Delete(cmd.Context(), operator(), userID)
			if err != nil {
				return fmt.Errorf("delete user %d: %w", userID, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User %d deleted\n", userID)
			printRemoved(cmd.OutOrStdout(), res)
			return nil
		})
	},
}

var deletePostCmd = &cobra.Command{
	Use:   "delete-post POST_ID",
	Short: "Delete a post and its stored file",
	Long: `Delete a post with its comments, likes, ratings and tags. The stored
file is removed on the upload server inside the same transaction: if the
upload server does not confirm, nothing is deleted. Pass --token so the
upload server accepts the request.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withOps(func(ops *di.Ops) error {
			if err := ops.Posts.DeletePost(cmd.Context(), operator(), postID); err != nil {
				return fmt.Errorf("delete post %d: %w", postID, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Post %d deleted\n", postID)
			return nil
		})
	},
}

func printRemoved(w io.Writer, res *cascade.Result) {
	if res == nil {
		return
	}
	steps := make([]string, 0, len(res.Removed))
	for step := range res.Removed {
		steps = append(steps, step)
	}
	sort.Strings(steps)
	for _, step := range steps {
		fmt.Fprintf(w, "  %-20s %d\n", step, res.Removed[step])
	}
}
