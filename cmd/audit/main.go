package main

import (
	"chatroom/repositories"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	_ = godotenv.Load()
	dbPath := flag.String("db", os.Getenv("BADGER_FILEPATH"), "Path to badger DB")
	limit := flag.Int("limit", 50, "Maximum number of records, 0 for all")
	flag.Parse()
	if *dbPath == "" {
		log.Fatal("No database path: set -db or BADGER_FILEPATH")
	}

	// BypassLockGuard allows reading while the server holds the lock
	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLogger(nil))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	repository := repositories.NewModerationRepository(db, logs.GetLoggerFromString("WARN"))
	records, err := repository.ListRecords(*limit)
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"At", "Action", "Target", "Issuer", "Duration", "Reason"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, r := range records {
		duration := ""
		if r.Duration > 0 {
			duration = r.Duration.String()
		}
		table.Append([]string{
			r.At.Local().Format("2006-01-02 15:04:05"),
			r.Action,
			r.Target,
			r.Issuer,
			duration,
			r.Reason,
		})
	}
	table.Render()
	fmt.Printf("%d record(s)\n", len(records))
}
