package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/klipach/traveloracle/app"
	"github.com/klipach/traveloracle/catalog"
	"github.com/klipach/traveloracle/config"
	"github.com/klipach/traveloracle/contract"
)

// SeedStore is one entry of the seed file. Images are paths relative to
// the seed file.
type SeedStore struct {
	contract.Store
	ImageFiles []string `json:"imageFiles"`
}

// go run ./cmd/seed -file stores.json
func main() {
	ctx := context.Background()
	filePtr := flag.String("file", "stores.json", "JSON file with the stores to create")
	flag.Parse()

	stores, err := readSeed(*filePtr)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	cfg := config.MustLoad()
	a, err := app.New(ctx, cfg.Firebase)
	if err != nil {
		log.Fatalf("app.New: %v", err)
	}
	defer a.Close()

	svc := catalog.New(a.Docs, a.Blobs)
	created := 0
	for _, s := range stores {
		images, err := readImages(filepath.Dir(*filePtr), s.ImageFiles)
		if err != nil {
			log.Printf("skipping %q: %v", s.DisplayName, err)
			continue
		}
		store, err := svc.Create(ctx, s.Store, images)
		if err != nil {
			log.Printf("failed to create %q: %v", s.DisplayName, err)
			continue
		}
		created++
		fmt.Printf("%s\t%s\n", store.ID, store.DisplayName)
	}
	log.Printf("created %d of %d stores", created, len(stores))
}

func readSeed(path string) ([]SeedStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var stores []SeedStore
	if err := json.Unmarshal(data, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

func readImages(dir string, files []string) ([][]byte, error) {
	images := make([][]byte, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(dir, f))
		if err != nil {
			return nil, err
		}
		images = append(images, data)
	}
	return images, nil
}
