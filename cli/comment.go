package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/goto/discuss/core/comment"
	"github.com/goto/discuss/core/moderation"
	"github.com/goto/discuss/core/report"
	"github.com/goto/discuss/domain"
	"github.com/goto/discuss/pkg/audit"
)

var errActorRequired = errors.New(`"--as" is required for this command`)

func CommentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "comment",
		Aliases: []string{"comments"},
		Short:   "Read, write and moderate comments",
		Example: heredoc.Doc(`
			$ discuss comment thread idea 7c1d... --page-size 10
			$ discuss comment create idea 7c1d... --as alice@example.com --content "hello @bob"
			$ discuss comment moderate 91ab... hide --as mod@example.com
		`),
	}

	cmd.AddCommand(
		threadCmd(),
		repliesCmd(),
		viewCommentCmd(),
		createCommentCmd(),
		replyCommentCmd(),
		editCommentCmd(),
		deleteCommentCmd(),
		likeCommentCmd(),
		flagCommentCmd(),
		moderateCommentCmd(),
		searchCommentsCmd(),
		listUserCommentsCmd(),
		flaggedCommentsCmd(),
		commentEventsCmd(),
	)

	cmd.PersistentFlags().StringP("config", "c", "./config.yaml", "Config file path")
	cmd.MarkPersistentFlagFilename("config")
	cmd.PersistentFlags().StringP("output", "o", formatTable, "Output format: table, yaml or json")
	cmd.PersistentFlags().String("as", "", "User performing the operation")

	return cmd
}

// runWithApp initializes the services, attaches the acting user to the
// context and closes everything once fn returns.
func runWithApp(fn func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if user, _ := cmd.Flags().GetString("as"); user != "" {
			ctx = audit.WithActor(ctx, user)
		}

		a, err := initApp(ctx, cmd)
		if err != nil {
			return err
		}
		defer a.Close() //nolint:errcheck

		return fn(ctx, cmd, a, args)
	}
}

func (a *app) actor(ctx context.Context) (domain.Actor, error) {
	id := audit.ActorFromContext(ctx)
	if id == "" {
		return domain.Actor{}, errActorRequired
	}
	role := domain.ActorRoleUser
	for _, m := range a.config.Comment.Moderators {
		if m == id {
			role = domain.ActorRoleAdmin
			break
		}
	}
	return domain.Actor{ID: id, Role: role}, nil
}

func threadCmd() *cobra.Command {
	var filter domain.ThreadPageFilter
	var replyPageSize int
	cmd := &cobra.Command{
		Use:   "thread <idea|domain> <id>",
		Short: "Show a page of root comments with their first replies",
		Args:  cobra.ExactArgs(2),
		RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
			filter.TargetKind = domain.CommentTargetKind(args[0])
			filter.TargetID = args[1]
			if cmd.Flags().Changed("reply-page-size") {
				filter.ReplyPageSize = &replyPageSize
			}
			page, err := a.services.CommentService.GetThreadPage(ctx, filter)
			if err != nil {
				return err
			}
			return printPage(cmd, page)
		}),
	}
	cmd.Flags().IntVar(&filter.Page, "page", 1, "Page number")
	cmd.Flags().IntVar(&filter.PageSize, "page-size", 0, "Root comments per page")
	cmd.Flags().IntVar(&replyPageSize, "reply-page-size", 0, "Replies shown under each root comment, 0 for none")
	cmd.Flags().StringVar(&filter.SortOrder, "sort", domain.SortOrderNewest, "Sort order: newest or oldest")
	return cmd
}

func repliesCmd() *cobra.Command {
	var filter domain.ReplyPageFilter
	cmd := &cobra.Command{
		Use:   "replies <comment-id>",
		Short: "Show a page of direct replies to a comment",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
			filter.ParentID = args[0]
			page, err := a.services.CommentService.GetReplies(ctx, filter)
			if err != nil {
				return err
			}
			return printPage(cmd, page)
		}),
	}
	cmd.Flags().IntVar(&filter.Page, "page", 1, "Page number")
	cmd.Flags().IntVar(&filter.PageSize, "page-size", 0, "Replies per page")
	cmd.Flags().StringVar(&filter.SortOrder, "sort", domain.SortOrderOldest, "Sort order: newest or oldest")
	return cmd
}

func viewCommentCmd() *cobra.Command {
	var full bool
	cmd := &cobra.Command{
		Use:   "view <comment-id>",
		Short: "Show a comment, optionally with its whole reply tree",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
			var (
				c   *domain.Comment
				err error
			)
			if full {
				c, err = a.services.CommentService.GetFullThread(ctx, args[0])
			} else {
				c, err = a.services.CommentService.GetByID(ctx, args[0])
			}
			if err != nil {
				return err
			}
			return printComment(cmd, c)
		}),
	}
	cmd.Flags().BoolVar(&full, "full", false, "Include every nested reply")
	return cmd
}

func createCommentCmd() *cobra.Command {
	var (
		content     string
		attachments []string
	)
	cmd := &cobra.Command{
		Use:   "create <idea|domain> <id>",
		Short: "Post a root comment",
		Args:  cobra.ExactArgs(2),
		RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
			actor, err := a.actor(ctx)
			if err != nil {
				return err
			}

			uploads := make([]*domain.AttachmentUpload, 0, len(attachments))
			for _, path := range attachments {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("opening attachment: %w", err)
				}
				defer f.Close()
				info, err := f.Stat()
				if err != nil {
					return fmt.Errorf("reading attachment: %w", err)
				}
				uploads = append(uploads, &domain.AttachmentUpload{
					Filename: filepath.Base(path),
					Size:     info.Size(),
					Body:     f,
				})
			}

			c, err := a.services.CommentService.CreateRoot(ctx, comment.CreateRootRequest{
				Target: domain.CommentTarget{
					Kind: domain.CommentTargetKind(args[0]),
					ID:   args[1],
				},
				Author:      actor.ID,
				Content:     content,
				Attachments: uploads,
			})
			if err != nil {
				return err
			}
			return printComment(cmd, c)
		}),
	}
	cmd.Flags().StringVar(&content, "content", "", "Comment content, markdown is supported")
	cmd.Flags().StringSliceVar(&attachments, "attach", nil, "File to attach, can be repeated")
	cmd.MarkFlagRequired("content")
	return cmd
}

func replyCommentCmd() *cobra.Command {
	var content string
	cmd := &cobra.Command{
		Use:   "reply <comment-id>",
		Short: "Reply to a comment",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
			actor, err := a.actor(ctx)
			if err != nil {
				return err
			}
			c, err := a.services.CommentService.CreateReply(ctx, comment.CreateReplyRequest{
				ParentID: args[0],
				Author:   actor.ID,
				Content:  content,
			})
			if err != nil {
				return err
			}
			return printComment(cmd, c)
		}),
	}
	cmd.Flags().StringVar(&content, "content", "", "Reply content")
	cmd.MarkFlagRequired("content")
	return cmd
}

func editCommentCmd() *cobra.Command {
	var content string
	cmd := &cobra.Command{
		Use:   "edit <comment-id>",
		Short: "Edit a comment within the edit window",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
			actor, err := a.actor(ctx)
			if err != nil {
				return err
			}
			c, err := a.services.CommentService.Edit(ctx, args[0], actor, content)
			if err != nil {
				return err
			}
			return printComment(cmd, c)
		}),
	}
	cmd.Flags().StringVar(&content, "content", "", "New content")
	cmd.MarkFlagRequired("content")
	return cmd
}

func deleteCommentCmd() *cobra.Command {
	var silent bool
	cmd := &cobra.Command{
		Use:   "delete <comment-id>",
		Short: "Soft delete a comment, keeping its replies",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
			actor, err := a.actor(ctx)
			if err != nil {
				return err
			}
			var opts []comment.Option
			if silent {
				opts = append(opts, comment.SkipNotifications())
			}
			c, err := a.services.CommentService.Delete(ctx, args[0], actor, opts...)
			if err != nil {
				return err
			}
			return printComment(cmd, c)
		}),
	}
	cmd.Flags().BoolVar(&silent, "silent", false, "Do not send notifications")
	return cmd
}

func likeCommentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "like <comment-id>",
		Short: "Like a comment, or remove an existing like",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
			actor, err := a.actor(ctx)
			if err != nil {
				return err
			}
			res, err := a.services.CommentService.ToggleLike(ctx, args[0], actor.ID)
			if err != nil {
				return err
			}
			if format(cmd) != formatTable {
				return printStructured(cmd.OutOrStdout(), format(cmd), res)
			}
			state := "unliked"
			if res.Liked {
				state = "liked"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d likes)\n", state, res.CommentID, res.LikeCount)
			return nil
		}),
	}
}

func flagCommentCmd() *cobra.Command {
	var reason, description string
	cmd := &cobra.Command{
		Use:   "flag <comment-id>",
		Short: "Report a comment to the moderators",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
			actor, err := a.actor(ctx)
			if err != nil {
				return err
			}
			c, err := a.services.CommentService.AddFlag(ctx, comment.FlagRequest{
				CommentID:   args[0],
				UserID:      actor.ID,
				Reason:      reason,
				Description: description,
			})
			if err != nil {
				return err
			}
			return printComment(cmd, c)
		}),
	}
	cmd.Flags().StringVar(&reason, "reason", "", "Why the comment is reported")
	cmd.Flags().StringVar(&description, "description", "", "Additional details")
	cmd.MarkFlagRequired("reason")
	return cmd
}

func moderateCommentCmd() *cobra.Command {
	events := make([]string, 0, len(moderation.AdminEvents))
	for _, e := range moderation.AdminEvents {
		events = append(events, e.String())
	}
	return &cobra.Command{
		Use:       fmt.Sprintf("moderate <comment-id> <%s>", strings.Join(events, "|")),
		Short:     "Apply a moderation decision to a comment",
		Args:      cobra.ExactArgs(2),
		ValidArgs: events,
		RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
			actor, err := a.actor(ctx)
			if err != nil {
				return err
			}
			c, err := a.services.CommentService.Moderate(ctx, args[0], actor, moderation.Event(args[1]))
			if err != nil {
				return err
			}
			return printComment(cmd, c)
		}),
	}
}

func searchCommentsCmd() *cobra.Command {
	var (
		filter     domain.SearchCommentsFilter
		targetKind string
	)
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Full text search over active comments",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
			filter.Query = args[0]
			filter.TargetKind = domain.CommentTargetKind(targetKind)
			page, err := a.services.CommentService.Search(ctx, filter)
			if err != nil {
				return err
			}
			return printPage(cmd, page)
		}),
	}
	cmd.Flags().StringVar(&targetKind, "target-kind", "", "Restrict to a target kind")
	cmd.Flags().StringVar(&filter.TargetID, "target-id", "", "Restrict to a target id")
	cmd.Flags().IntVar(&filter.Size, "size", 0, "Maximum number of results")
	cmd.Flags().IntVar(&filter.Offset, "offset", 0, "Results to skip")
	return cmd
}

func listUserCommentsCmd() *cobra.Command {
	var filter domain.ListAuthorCommentsFilter
	cmd := &cobra.Command{
		Use:   "list <author>",
		Short: "List comments written by a user",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
			filter.Author = args[0]
			page, err := a.services.CommentService.ListByAuthor(ctx, filter)
			if err != nil {
				return err
			}
			return printPage(cmd, page)
		}),
	}
	cmd.Flags().IntVar(&filter.Size, "size", 0, "Maximum number of results")
	cmd.Flags().IntVar(&filter.Offset, "offset", 0, "Results to skip")
	return cmd
}

func flaggedCommentsCmd() *cobra.Command {
	var filter report.FlaggedCommentsFilter
	cmd := &cobra.Command{
		Use:   "flagged",
		Short: "Show the moderation queue",
		Args:  cobra.NoArgs,
		RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
			flagged, err := a.services.ReportService.GetFlaggedComments(ctx, &filter)
			if err != nil {
				return err
			}
			if format(cmd) != formatTable {
				return printStructured(cmd.OutOrStdout(), format(cmd), flagged)
			}

			table := newTable(cmd.OutOrStdout(), "ID", "AUTHOR", "STATUS", "FLAGS", "REASONS", "CONTENT")
			for _, f := range flagged {
				table.Append([]string{
					f.CommentID,
					f.Author,
					f.Status,
					strconv.Itoa(f.FlagCount),
					strings.Join(f.Reasons, ", "),
					truncate(f.Content, 40),
				})
			}
			table.Render()
			return nil
		}),
	}
	cmd.Flags().StringSliceVar(&filter.Statuses, "status", nil, "Comment statuses to include, defaults to flagged")
	cmd.Flags().IntVar(&filter.MinFlagCount, "min-flags", 0, "Minimum number of flags")
	cmd.Flags().IntVar(&filter.Size, "size", 0, "Maximum number of results")
	cmd.Flags().IntVar(&filter.Offset, "offset", 0, "Results to skip")
	return cmd
}

func commentEventsCmd() *cobra.Command {
	var filter domain.ListEventsFilter
	cmd := &cobra.Command{
		Use:   "events <comment-id>",
		Short: "Show the activity history of a comment",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
			filter.CommentID = args[0]
			events, err := a.services.EventService.List(ctx, filter)
			if err != nil {
				return err
			}
			if format(cmd) != formatTable {
				return printStructured(cmd.OutOrStdout(), format(cmd), events)
			}

			table := newTable(cmd.OutOrStdout(), "TIMESTAMP", "TYPE", "ACTOR")
			for _, e := range events {
				table.Append([]string{e.Timestamp.Format(time.RFC3339), e.Type, e.Actor})
			}
			table.Render()
			return nil
		}),
	}
	cmd.Flags().StringSliceVar(&filter.Types, "type", nil, "Event types to include, e.g. comment.edit")
	cmd.Flags().IntVar(&filter.Size, "size", 0, "Maximum number of events")
	return cmd
}

func format(cmd *cobra.Command) string {
	f, _ := cmd.Flags().GetString("output")
	return f
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	return table
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func printComment(cmd *cobra.Command, c *domain.Comment) error {
	if format(cmd) != formatTable {
		return printStructured(cmd.OutOrStdout(), format(cmd), c)
	}
	table := newTable(cmd.OutOrStdout(), "ID", "AUTHOR", "LEVEL", "STATUS", "LIKES", "REPLIES", "CONTENT")
	appendCommentRows(table, c, 0)
	table.Render()
	return nil
}

func printPage(cmd *cobra.Command, page *domain.CommentPage) error {
	if format(cmd) != formatTable {
		return printStructured(cmd.OutOrStdout(), format(cmd), page)
	}
	table := newTable(cmd.OutOrStdout(), "ID", "AUTHOR", "LEVEL", "STATUS", "LIKES", "REPLIES", "CONTENT")
	for _, c := range page.Comments {
		appendCommentRows(table, c, 0)
	}
	table.Render()
	fmt.Fprintf(cmd.OutOrStdout(), "\npage %d of %d (%d total)\n", page.Page, page.TotalPages, page.Total)
	return nil
}

func appendCommentRows(table *tablewriter.Table, c *domain.Comment, depth int) {
	table.Append([]string{
		strings.Repeat("  ", depth) + c.ID,
		c.Author,
		strconv.Itoa(c.ThreadLevel),
		c.Status.String(),
		strconv.Itoa(c.LikeCount),
		strconv.Itoa(c.ReplyCount),
		truncate(c.Content, 60),
	})
	for _, r := range c.Replies {
		appendCommentRows(table, r, depth+1)
	}
}
