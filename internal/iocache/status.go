package iocache

import (
	"fmt"

	"github.com/huangsam/attribution/schema"
)

// PrintStoreStatus prints journey store status information.
func PrintStoreStatus(status schema.StoreStatus) {
	fmt.Printf("Store Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Schema Version: %d\n", status.SchemaVersion)
	fmt.Printf("Total Journeys: %d\n", status.TotalJourneys)
	fmt.Printf("Total Touchpoints: %d\n", status.TotalTouchpoints)
	if status.TotalJourneys > 0 {
		fmt.Printf("Oldest Conversion: %s\n", status.OldestConversion.Format("2006-01-02 15:04:05"))
		fmt.Printf("Latest Conversion: %s\n", status.LatestConversion.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("Table Size: %d bytes\n", status.TableSizeBytes)
}
