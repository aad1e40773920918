package main

import (
	"context"
	"log"
	"os"

	"weekenddiaries/adapters/excel"
	"weekenddiaries/adapters/sqlstore"
	"weekenddiaries/internal/migration"
)

func main() {
	if len(os.Args) < 4 {
		log.Fatal("Usage: migrate <postgres|sqlite> <database_url> <places_file> [encoding]")
	}

	driver, databaseURL, placesFile := os.Args[1], os.Args[2], os.Args[3]
	readerConfig := excel.DefaultReaderConfig(placesFile)
	if len(os.Args) > 4 {
		readerConfig.Encoding = os.Args[4]
	}

	log.Printf("Starting import from %s to %s database", placesFile, driver)

	ctx := context.Background()
	db, err := sqlstore.Open(ctx, driver, databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.NewRunner().Run(ctx, db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	raw, err := excel.NewDataReader(readerConfig).ReadData()
	if err != nil {
		log.Fatalf("Failed to read %s: %v", placesFile, err)
	}

	imported, err := sqlstore.NewPlaceRepository(db).ImportRaw(ctx, raw)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Printf("✅ Imported %d places", imported)
}
