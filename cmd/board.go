package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/internal/auth"
	"task-tracker.com/task-tracker/internal/board"
	"task-tracker.com/task-tracker/internal/client"
	config "task-tracker.com/task-tracker/internal/configs"
	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/pkg/models"
)

var (
	boardStatus string
	moveBefore  string
	createTitle string
	createDesc  string
	editTitle   string
	editDesc    string
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the task board",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openBoard()
		if err != nil {
			return err
		}

		var filter *constants.TaskStatus
		if boardStatus != "" && boardStatus != "all" {
			s, ok := constants.ParseStatus(boardStatus)
			if !ok {
				return fmt.Errorf("unknown status %q", boardStatus)
			}
			filter = &s
		}

		if err := store.Refresh(cmd.Context(), filter); err != nil {
			return err
		}

		printBoard(cmd.OutOrStdout(), store.Columns())
		return nil
	},
}

var boardMoveCmd = &cobra.Command{
	Use:   "move <task-id> <status>",
	Short: "Drag a task into a column",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, actor, err := openBoard()
		if err != nil {
			return err
		}
		if err := store.Refresh(cmd.Context(), nil); err != nil {
			return err
		}

		target, ok := constants.ParseStatus(args[1])
		if !ok {
			return fmt.Errorf("unknown status %q", args[1])
		}

		task, ok := store.Task(args[0])
		if !ok {
			return fmt.Errorf("task %s is not on the board", args[0])
		}

		drag := board.NewDragSession(actor)
		if err := drag.Start(task); err != nil {
			return err
		}
		drag.Over(target, moveBefore)

		intent, err := drag.Drop(store.Column(target))
		if err != nil {
			return err
		}
		if err := store.Apply(cmd.Context(), intent); err != nil {
			return err
		}

		if intent.Kind == board.IntentReorder {
			fmt.Fprintln(cmd.OutOrStdout(), "reordered locally; column order is not saved")
		}
		printBoard(cmd.OutOrStdout(), store.Columns())
		return nil
	},
}

var boardCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a pending task",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openBoard()
		if err != nil {
			return err
		}

		data := model.CreateTaskData{Title: createTitle}
		if createDesc != "" {
			data.Description = &createDesc
		}

		task, err := store.CreateTask(cmd.Context(), data)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", task.ID)
		return nil
	},
}

var boardEditCmd = &cobra.Command{
	Use:   "edit <task-id>",
	Short: "Edit a task's title or description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openBoard()
		if err != nil {
			return err
		}

		var data model.UpdateTaskData
		if cmd.Flags().Changed("title") {
			data.Title = &editTitle
		}
		if cmd.Flags().Changed("description") {
			data.Description = &editDesc
		}
		if data.Empty() {
			return errors.New("nothing to update; pass --title or --description")
		}

		task, err := store.UpdateTask(cmd.Context(), args[0], data)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", task.ID)
		return nil
	},
}

var boardDeleteCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openBoard()
		if err != nil {
			return err
		}

		res, err := store.DeleteTask(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), res.Message)
		return nil
	},
}

func openBoard() (*board.Store, model.Actor, error) {
	cfg := config.Load()
	if cfg.APIToken == "" {
		return nil, model.Actor{}, errors.New("API_TOKEN must be set; issue one with the token command")
	}

	actor, err := auth.Peek(cfg.APIToken)
	if err != nil {
		return nil, model.Actor{}, fmt.Errorf("API_TOKEN: %w", err)
	}

	return board.NewStore(client.New(cfg.APIURL, cfg.APIToken)), actor, nil
}

func printBoard(w io.Writer, columns board.Columns) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	for _, col := range columns.All() {
		fmt.Fprintf(tw, "%s (%d)\n", strings.ToUpper(string(col.Status)), col.Len())
		for _, t := range col.Tasks {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", t.ID, t.Title, t.CreatedBy.DisplayName())
		}
	}
}

func init() {
	boardCmd.Flags().StringVar(&boardStatus, "status", "", "only show one status")
	boardMoveCmd.Flags().StringVar(&moveBefore, "before", "", "drop onto this task's position")
	boardCreateCmd.Flags().StringVar(&createTitle, "title", "", "task title")
	boardCreateCmd.Flags().StringVar(&createDesc, "description", "", "task description")
	boardEditCmd.Flags().StringVar(&editTitle, "title", "", "new title")
	boardEditCmd.Flags().StringVar(&editDesc, "description", "", "new description")

	boardCmd.AddCommand(boardMoveCmd, boardCreateCmd, boardEditCmd, boardDeleteCmd)
	rootCmd.AddCommand(boardCmd)
}
