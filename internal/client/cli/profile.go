package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/hikekeeper/internal/client/models"
)

// NewProfileCommand creates the profile command group.
func NewProfileCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the account profile",
	}

	cmd.AddCommand(newProfileShowCommand(rootOpts))
	cmd.AddCommand(newProfileSaveCommand(rootOpts))
	return cmd
}

func newProfileShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show",
		Short:         "Show the profile stored on the server",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withApp(cmd, func(ctx context.Context, app *App) error {
				p, err := app.profiles.Show(ctx)
				if err != nil {
					return err
				}
				return rootOpts.formatter(cmd).Success(p, func(w io.Writer) error {
					return printProfile(w, p)
				})
			})
		},
	}
}

// profileSaveOptions mirrors the save form: every measurement flag left
// unset is sent as null and clears the stored value.
type profileSaveOptions struct {
	heightFeet   float64
	heightInches float64
	weight       float64
	metric       bool
	pace         bool
	password     bool
}

func newProfileSaveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &profileSaveOptions{}

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Replace the profile measurements and preferences",
		Long: `Replace the profile measurements and preferences.

Height is always given in feet and inches. Weight is in kilograms with
--metric and in pounds otherwise. Omitted measurements are cleared.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withApp(cmd, func(ctx context.Context, app *App) error {
				u := models.ProfileUpdate{IsMetric: opts.metric, IsPace: opts.pace}

				flags := cmd.Flags()
				if flags.Changed("height-feet") {
					u.HeightFeet = &opts.heightFeet
				}
				if flags.Changed("height-inches") {
					u.HeightInches = &opts.heightInches
				}
				if flags.Changed("weight") {
					u.Weight = &opts.weight
				}
				if opts.password {
					pw, err := GetPassword(cmd.ErrOrStderr())
					if err != nil {
						return err
					}
					s := string(pw)
					wipe(pw)
					u.Password = &s
				}

				if err := app.profiles.Save(ctx, u); err != nil {
					return err
				}
				return rootOpts.formatter(cmd).Message("Profile updated")
			})
		},
	}

	cmd.Flags().Float64Var(&opts.heightFeet, "height-feet", 0, "height, feet part")
	cmd.Flags().Float64Var(&opts.heightInches, "height-inches", 0, "height, inches part")
	cmd.Flags().Float64Var(&opts.weight, "weight", 0, "weight in kg (--metric) or lb")
	cmd.Flags().BoolVar(&opts.metric, "metric", false, "use metric units")
	cmd.Flags().BoolVar(&opts.pace, "pace", false, "show pace instead of speed")
	cmd.Flags().BoolVar(&opts.password, "password", false, "prompt for a new password")
	return cmd
}
