package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/hikekeeper/internal/client/models"
	"github.com/dmitrijs2005/hikekeeper/internal/client/services"
	"github.com/dmitrijs2005/hikekeeper/internal/units"
)

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the JSON envelope written in json mode.
type CLIResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

// Success writes data as a JSON envelope, or calls text in text mode.
func (f *OutputFormatter) Success(data any, text func(w io.Writer) error) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{Status: "ok", Data: data})
	}
	return text(f.Writer)
}

// Message writes a one-line confirmation.
func (f *OutputFormatter) Message(msg string) error {
	return f.Success(map[string]string{"message": msg}, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, msg)
		return err
	})
}

func printHikes(w io.Writer, list []models.Hike, withStatus bool) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "No hikes.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if withStatus {
		fmt.Fprintln(tw, "TRAIL\tSTARTED\tDISTANCE (m)\tDURATION\tSTATUS")
	} else {
		fmt.Fprintln(tw, "TRAIL\tSTARTED\tDISTANCE (m)\tDURATION")
	}
	for _, h := range list {
		dur := (time.Duration(h.DurationS) * time.Second).String()
		if withStatus {
			status := string(h.Status)
			if h.LastError != "" {
				status += ": " + h.LastError
			}
			fmt.Fprintf(tw, "%s\t%s\t%.1f\t%s\t%s\n", h.TrailID, h.StartedAt.Format(time.RFC3339), h.DistanceM, dur, status)
		} else {
			fmt.Fprintf(tw, "%s\t%s\t%.1f\t%s\n", h.TrailID, h.StartedAt.Format(time.RFC3339), h.DistanceM, dur)
		}
	}
	return tw.Flush()
}

func printProfile(w io.Writer, p *models.Profile) error {
	metric := p.Unit != nil && *p.Unit == "metric"

	height := "-"
	if p.Height != nil {
		feet, inches := units.MmToFeetInches(*p.Height)
		height = fmt.Sprintf("%d ft %.1f in", feet, inches)
	}
	weight := "-"
	if p.Weight != nil {
		if metric {
			weight = fmt.Sprintf("%.1f kg", units.GramsToWeight(*p.Weight, true))
		} else {
			weight = fmt.Sprintf("%.1f lb", units.GramsToWeight(*p.Weight, false))
		}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "User:\t%s\n", p.UserName)
	fmt.Fprintf(tw, "Mode:\t%s\n", p.Mode)
	fmt.Fprintf(tw, "Height:\t%s\n", height)
	fmt.Fprintf(tw, "Weight:\t%s\n", weight)
	fmt.Fprintf(tw, "Units:\t%s\n", valueOr(p.Unit, "-"))
	fmt.Fprintf(tw, "Time:\t%s\n", valueOr(p.TimePreference, "-"))
	fmt.Fprintf(tw, "Member since:\t%s\n", p.CreatedAt.Format(time.DateOnly))
	return tw.Flush()
}

func printSyncReport(w io.Writer, r services.SyncReport) error {
	if _, err := fmt.Fprintf(w, "Synced: %d inserted, %d updated, %d failed\n", r.Inserted, r.Updated, len(r.Failed)); err != nil {
		return err
	}
	for _, f := range r.Failed {
		if _, err := fmt.Fprintf(w, "  %s: %s\n", f.TrailID, f.Reason); err != nil {
			return err
		}
	}
	return nil
}

func valueOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
