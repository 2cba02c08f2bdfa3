package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"igclient/pkg/config"
	"igclient/pkg/instagram"
	"igclient/pkg/logger"
)

var (
	feedCount int
	feedAfter string
)

// feedCmd represents the feed command
var feedCmd = &cobra.Command{
	Use:   "feed <user-id>",
	Short: "Fetch one page of a user's media feed",
	Long: `Fetch one page of a user's media feed by numeric user id.

The id comes from a profile fetch. Use --after with the end cursor of a
previous page to continue paging.`,
	Example: `  # First page, default size
  igclient feed 8343444274

  # Next page
  igclient feed 8343444274 --after QVFEeGln...`,
	Args: cobra.ExactArgs(1),
	RunE: runFeed,
}

func init() {
	feedCmd.Flags().IntVar(&feedCount, "count", instagram.DefaultFeedCount, "number of media items to fetch")
	feedCmd.Flags().StringVar(&feedAfter, "after", "", "end cursor of the previous page")
}

func runFeed(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	client := newClient(cfg, log)

	feed, err := client.FetchUserFeed(args[0], &instagram.FeedOptions{
		Count: feedCount,
		After: feedAfter,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "%d posts total, %d on this page\n", feed.Count, len(feed.Medias))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(feed)
}

// newClient builds an API client from the loaded configuration
func newClient(cfg *config.Config, log logger.Logger) *instagram.Client {
	endpoints := instagram.Endpoints{
		BaseURL:    cfg.Endpoints.BaseURL,
		GraphQLURL: cfg.Endpoints.GraphQLURL,
	}

	client := instagram.NewClientWithEndpoints(endpoints, cfg.HTTP.Timeout, log)
	if cfg.HTTP.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.HTTP.UserAgent)
	}

	return client
}
