package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/stats"
	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/storage"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the per-day progress series to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json, md")
}

// exportDay is one row of the exported series.
type exportDay struct {
	Date           string  `json:"date"`
	Label          string  `json:"label"`
	StrengthVolume float64 `json:"strength_volume"`
	CardioMinutes  float64 `json:"cardio_minutes"`
	CardioKm       float64 `json:"cardio_km"`
	CoreOutput     float64 `json:"core_output"`
}

type exportDoc struct {
	TotalSessions int                `json:"total_sessions"`
	TotalVolume   float64            `json:"total_volume"`
	Streak        int                `json:"streak"`
	Discipline    int                `json:"discipline"`
	Distribution  stats.Distribution `json:"distribution"`
	Days          []exportDay        `json:"days"`
}

func runExport(cmd *cobra.Command, args []string) error {
	data, err := loadAll()
	if err != nil {
		return err
	}
	h := stats.ComputeHistory(data, storage.BestWeights(data), now)
	out := cmd.OutOrStdout()

	switch strings.ToLower(exportFormat) {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newExportDoc(h)); err != nil {
			return fmt.Errorf("error encoding JSON: %w", err)
		}
	case "md":
		printHistory(out, h, 0)
	case "csv":
		printCSV(out, h)
	default:
		return usageError("unknown format %q (csv, json, md)", exportFormat)
	}
	return nil
}

func newExportDoc(h stats.History) exportDoc {
	doc := exportDoc{
		TotalSessions: h.TotalSessions,
		TotalVolume:   h.TotalVolume,
		Streak:        h.Streak,
		Discipline:    h.Discipline,
		Distribution:  h.Distribution,
		Days:          make([]exportDay, len(h.Keys)),
	}
	for i, key := range h.Keys {
		doc.Days[i] = exportDay{
			Date:           key,
			Label:          h.Labels[i],
			StrengthVolume: h.StrengthVolume[i],
			CardioMinutes:  h.CardioMinutes[i],
			CardioKm:       h.CardioDistance[i],
			CoreOutput:     h.CoreOutput[i],
		}
	}
	return doc
}

func printCSV(w io.Writer, h stats.History) {
	fmt.Fprintln(w, "date,label,strength_volume,cardio_minutes,cardio_km,core_output")
	for i, key := range h.Keys {
		fmt.Fprintf(w, "%s,%s,%s,%s,%s,%s\n",
			csvEscape(key),
			csvEscape(h.Labels[i]),
			formatNumber(h.StrengthVolume[i]),
			formatNumber(h.CardioMinutes[i]),
			formatNumber(h.CardioDistance[i]),
			formatNumber(h.CoreOutput[i]),
		)
	}
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	// Escape internal double quotes by doubling them.
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
