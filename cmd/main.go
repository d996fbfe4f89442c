package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/orgball2608/newsportal/internal/app"
	"github.com/orgball2608/newsportal/internal/article"
	"github.com/orgball2608/newsportal/internal/content"
	"github.com/orgball2608/newsportal/internal/media"
	"github.com/orgball2608/newsportal/internal/story"
	"github.com/orgball2608/newsportal/internal/storytui"
	"github.com/orgball2608/newsportal/pkg/config"
	"github.com/orgball2608/newsportal/pkg/logger"
)

const fetchTimeout = 30 * time.Second

// CLI flags
var (
	styleFlag  string
	widthFlag  int
	recentFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "newsportal",
	Short: "Newstropy news portal",
	Long: `Newsportal renders the Newstropy front end from the content API and
plays its stories.

Examples:
  newsportal            # same as "newsportal serve"
  newsportal stories
  newsportal read flood-hits-lagos --style dark`,
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portal over HTTP",
	RunE:  runServe,
}

var storiesCmd = &cobra.Command{
	Use:   "stories",
	Short: "Play the stories rail in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runStories,
}

var readCmd = &cobra.Command{
	Use:   "read <slug>",
	Short: "Read a post in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runRead,
}

func init() {
	storiesCmd.Flags().BoolVar(&recentFlag, "recent", false, "Show the newest stories first")
	readCmd.Flags().StringVar(&styleFlag, "style", "", "Glamour style (dark, light, notty, ...); detected when empty")
	readCmd.Flags().IntVarP(&widthFlag, "width", "w", article.DefaultWidth, "Word wrap width")
	rootCmd.AddCommand(serveCmd, storiesCmd, readCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.New(logger.Opts{Console: true})

	application := fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log.Logger.With("component", "fx")}
		}),
		app.Module,
	)

	if err := application.Start(context.Background()); err != nil {
		log.Error("Failed to start application", "error", err)
		return err
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	if err := application.Stop(context.Background()); err != nil {
		log.Error("Failed to stop application", "error", err)
		return err
	}
	return nil
}

type clientDeps struct {
	fx.In

	Config   *config.Config
	Client   content.Client
	Resolver media.Resolver
	Story    story.Config
}

// withClient builds the content client without starting any server.
func withClient(fn func(ctx context.Context, deps clientDeps) error) error {
	var deps clientDeps
	application := fx.New(
		fx.NopLogger,
		app.Core,
		fx.Populate(&deps),
	)
	if err := application.Err(); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return fn(ctx, deps)
}

func runStories(cmd *cobra.Command, args []string) error {
	return withClient(func(ctx context.Context, deps clientDeps) error {
		fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()

		stories, err := deps.Client.Stories(fetchCtx)
		if err != nil {
			return fmt.Errorf("failed to fetch stories: %w", err)
		}
		byRecency := deps.Config.Story.SortByRecency || recentFlag
		return storytui.Run(stories, deps.Story, byRecency, deps.Resolver)
	})
}

func runRead(cmd *cobra.Command, args []string) error {
	return withClient(func(ctx context.Context, deps clientDeps) error {
		fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()

		detail, err := deps.Client.Post(fetchCtx, args[0])
		if err != nil {
			return fmt.Errorf("failed to fetch post %q: %w", args[0], err)
		}

		md, err := article.Markdown(detail, deps.Resolver)
		if err != nil {
			return err
		}
		out, err := article.Render(md, styleFlag, widthFlag)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	})
}
