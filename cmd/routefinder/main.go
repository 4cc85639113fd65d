package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/kofiantwi/airroutes/config"
	"github.com/kofiantwi/airroutes/internal/dataset"
	"github.com/kofiantwi/airroutes/internal/domain"
	"github.com/kofiantwi/airroutes/internal/report"
	"github.com/kofiantwi/airroutes/internal/service/routes"
	"github.com/spf13/cobra"
)

type place struct {
	city    string
	country string
}

type request struct {
	name  string
	start place
	dest  place
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if isRequestError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// isRequestError separates unroutable requests (exit 2, diagnostic already in
// the report) from environment failures (exit 1).
func isRequestError(err error) bool {
	return errors.Is(err, domain.ErrUnsupportedLocation) ||
		errors.Is(err, domain.ErrNoRoute) ||
		errors.Is(err, domain.ErrNoOptimalRoute) ||
		errors.Is(err, domain.ErrNoAirlineLabel)
}

func newRootCmd() *cobra.Command {
	var (
		all       bool
		cfgPath   string
		outputDir string
	)

	cmd := &cobra.Command{
		Use:           "routefinder [flags] request-file",
		Short:         "Finds the optimal airline route between two cities",
		Long:          "Reads a request file naming a start city and a destination city, finds the routes with the fewest flights, and writes a text report next to the output directory.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], all, cfgPath, outputDir)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "write all possible routes in addition to the optimal route")
	cmd.Flags().StringVar(&cfgPath, "config", "", "config file (default $CONFIG_PATH or config.yaml)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "OutputFiles", "directory the report is written to")
	return cmd
}

func run(ctx context.Context, requestPath string, all bool, cfgPath, outputDir string) error {
	if cfgPath == "" {
		cfgPath = os.Getenv("CONFIG_PATH")
	}
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	req, err := readRequest(requestPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	out, err := os.OpenFile(filepath.Join(outputDir, req.name+"_output.txt"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open report: %w", err)
	}
	defer out.Close()

	index, err := dataset.LoadFromFiles(cfg.Dataset.AirportsFile, cfg.Dataset.AirlinesFile, cfg.Dataset.RoutesFile)
	if err != nil {
		return err
	}

	service := routes.NewRouteService(index, nil, nil, "", routes.WithMaxDepth(cfg.Search.MaxDepth))
	plan, err := service.Search(ctx, routes.SearchInput{
		FromCity:    req.start.city,
		FromCountry: req.start.country,
		ToCity:      req.dest.city,
		ToCountry:   req.dest.country,
		All:         all,
	})
	if err != nil {
		if isRequestError(err) {
			if werr := report.WriteDiagnostic(out); werr != nil {
				log.Printf("write diagnostic: %v", werr)
			}
		}
		return err
	}

	if all {
		if err := report.WriteAll(out, plan); err != nil {
			return err
		}
	}
	return report.WriteOptimal(out, plan)
}

// readRequest parses the two comma-separated "city, country" lines of a
// request file. Only .txt and .csv files are accepted, matching the data the
// reports are generated from.
func readRequest(path string) (request, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".txt" && ext != ".csv" {
		return request{}, fmt.Errorf("request file must be a .csv or .txt file: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return request{}, fmt.Errorf("open request: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return request{}, fmt.Errorf("parse request: %w", err)
	}
	places := make([]place, 0, 2)
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		places = append(places, place{
			city:    strings.TrimSpace(row[0]),
			country: strings.TrimSpace(row[1]),
		})
	}
	if len(places) < 2 {
		return request{}, fmt.Errorf("request file needs a start line and a destination line: %s", path)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return request{name: base, start: places[0], dest: places[1]}, nil
}
