package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/hikekeeper/internal/client/models"
)

var (
	errStartedRequired  = errors.New("--started is required")
	errEndedBeforeStart = errors.New("--ended is before --started")
	errInvalidPoints    = errors.New("points file is not valid JSON")
)

// NewHikesCommand creates the hikes command group.
func NewHikesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hikes",
		Short: "Record, list and sync hikes",
	}

	cmd.AddCommand(newHikesRecordCommand(rootOpts))
	cmd.AddCommand(newHikesListCommand(rootOpts))
	cmd.AddCommand(newHikesSyncCommand(rootOpts))
	return cmd
}

type hikeRecordOptions struct {
	started    string
	ended      string
	distance   float64
	duration   time.Duration
	pointsFile string
}

func newHikesRecordCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &hikeRecordOptions{}

	cmd := &cobra.Command{
		Use:   "record <trailId>",
		Short: "Record a hike into the local outbox",
		Long: `Record a hike into the local outbox.

Recording a trail id that already exists replaces the local copy and queues
it for the next sync. Nothing is sent to the server until "hikes sync".`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := opts.hike(args[0], cmd.InOrStdin(), time.Now())
			if err != nil {
				return err
			}
			return rootOpts.withApp(cmd, func(ctx context.Context, app *App) error {
				if err := app.hikes.Record(ctx, h); err != nil {
					return err
				}
				return rootOpts.formatter(cmd).Message(fmt.Sprintf("Recorded %s (pending sync)", strings.TrimSpace(h.TrailID)))
			})
		},
	}

	cmd.Flags().StringVar(&opts.started, "started", "", "start time, RFC 3339")
	cmd.Flags().StringVar(&opts.ended, "ended", "", "end time, RFC 3339 (default now)")
	cmd.Flags().Float64Var(&opts.distance, "distance", 0, "distance in metres")
	cmd.Flags().DurationVar(&opts.duration, "duration", 0, "moving time (default ended minus started)")
	cmd.Flags().StringVar(&opts.pointsFile, "points-file", "", `JSON file with the track points, "-" for stdin`)
	return cmd
}

// hike builds the hike from the flags. now stands in for an omitted --ended.
func (o *hikeRecordOptions) hike(trailID string, stdin io.Reader, now time.Time) (models.Hike, error) {
	if o.started == "" {
		return models.Hike{}, errStartedRequired
	}
	started, err := time.Parse(time.RFC3339, o.started)
	if err != nil {
		return models.Hike{}, fmt.Errorf("--started: %w", err)
	}

	ended := now
	if o.ended != "" {
		if ended, err = time.Parse(time.RFC3339, o.ended); err != nil {
			return models.Hike{}, fmt.Errorf("--ended: %w", err)
		}
	}
	if ended.Before(started) {
		return models.Hike{}, errEndedBeforeStart
	}

	duration := o.duration
	if duration == 0 {
		duration = ended.Sub(started)
	}

	points, err := o.points(stdin)
	if err != nil {
		return models.Hike{}, err
	}

	return models.Hike{
		TrailID:    trailID,
		StartedAt:  started.UTC(),
		EndedAt:    ended.UTC(),
		DistanceM:  o.distance,
		DurationS:  duration.Seconds(),
		PointsJSON: points,
	}, nil
}

func (o *hikeRecordOptions) points(stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	switch o.pointsFile {
	case "":
		return "", nil
	case "-":
		data, err = io.ReadAll(stdin)
	default:
		data, err = os.ReadFile(o.pointsFile)
	}
	if err != nil {
		return "", fmt.Errorf("read points: %w", err)
	}

	data = []byte(strings.TrimSpace(string(data)))
	if !json.Valid(data) {
		return "", errInvalidPoints
	}
	return string(data), nil
}

func newHikesListCommand(rootOpts *RootOptions) *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List hikes in the local outbox or on the server",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withApp(cmd, func(ctx context.Context, app *App) error {
				var (
					list []models.Hike
					err  error
				)
				if remote {
					list, err = app.hikes.ListRemote(ctx)
				} else {
					list, err = app.hikes.ListLocal(ctx)
				}
				if err != nil {
					return err
				}
				return rootOpts.formatter(cmd).Success(list, func(w io.Writer) error {
					return printHikes(w, list, !remote)
				})
			})
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "list the hikes stored on the server")
	return cmd
}

func newHikesSyncCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "sync",
		Short:         "Push pending hikes to the server",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withApp(cmd, func(ctx context.Context, app *App) error {
				report, err := app.hikes.Sync(ctx)
				if err != nil {
					return err
				}
				return rootOpts.formatter(cmd).Success(report, func(w io.Writer) error {
					return printSyncReport(w, report)
				})
			})
		},
	}
}
