package iocache

import (
	"context"
	"errors"
	"fmt"

	"github.com/huangsam/attribution/internal/contract"
	"github.com/huangsam/attribution/internal/parquet"
)

// ExecuteJourneyExport exports every stored journey and touchpoint to Parquet files.
func ExecuteJourneyExport(ctx context.Context, mgr contract.StoreManager, outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := mgr.GetJourneyStore()
	if store == nil {
		return errors.New("journey store is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}
	if status.TotalJourneys == 0 {
		return contract.ErrNoData
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total journeys: %d\n", status.TotalJourneys)
	fmt.Printf("Total touchpoints: %d\n", status.TotalTouchpoints)

	journeys, err := store.ListJourneys(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to retrieve journeys: %w", err)
	}

	// Convert to Parquet format
	journeyRows, touchpointRows := parquet.ConvertJourneys(journeys)

	journeysFile := outputFile + ".journeys.parquet"
	if err := parquet.WriteJourneysParquet(journeyRows, journeysFile); err != nil {
		return fmt.Errorf("failed to write journeys: %w", err)
	}
	fmt.Printf("Exported %d journeys to: %s\n", len(journeyRows), journeysFile)

	touchpointsFile := outputFile + ".touchpoints.parquet"
	if err := parquet.WriteTouchpointsParquet(touchpointRows, touchpointsFile); err != nil {
		return fmt.Errorf("failed to write touchpoints: %w", err)
	}
	fmt.Printf("Exported %d touchpoints to: %s\n", len(touchpointRows), touchpointsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")

	return nil
}
