// Package report renders route plans as the human-readable text report.
package report

import (
	"fmt"
	"io"

	"github.com/kofiantwi/airroutes/internal/domain"
)

const divider = "------------------------------"

// WriteAll writes the all-routes section: every minimum-hop route with its
// per-segment carrier and stop details.
func WriteAll(w io.Writer, plan *domain.RoutePlan) error {
	if _, err := fmt.Fprintf(w, "All Routes\n%s\n\n", divider); err != nil {
		return err
	}
	for _, summary := range plan.All {
		if _, err := fmt.Fprintf(w, "Route from %s to %s\n%s\n", plan.From, plan.To, divider); err != nil {
			return err
		}
		if err := writeSegments(w, summary); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "\n\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteOptimal writes the chosen route with its total distance rounded to
// two decimals and the fixed selection-criteria annotation.
func WriteOptimal(w io.Writer, plan *domain.RoutePlan) error {
	if _, err := fmt.Fprintf(w, "Optimal route from %s to %s\n%s\n", plan.From, plan.To, divider); err != nil {
		return err
	}
	if err := writeSegments(w, plan.Optimal); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total distance: %.2f km\n", plan.DistanceKM); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Optimality criteria: flights and distance\n\n\n")
	return err
}

// WriteDiagnostic appends the short failure line, leaving any output already
// written in place.
func WriteDiagnostic(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Unsupported request!")
	return err
}

func writeSegments(w io.Writer, summary domain.RouteSummary) error {
	for i, segment := range summary.Segments {
		if _, err := fmt.Fprintf(w, "%d. %s from %s to %s %d stops\n", i+1, segment.Airline, segment.From, segment.To, segment.Stops); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Total flights: %d\n", summary.Flights); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Total additional stops: %d\n", summary.ExtraStops)
	return err
}
