package main

import (
	"encoding/csv"
	"flag"
	"log"
	"os"
	"strings"

	"class-quiz-challenge/internal/config"
	"class-quiz-challenge/internal/db"
	"class-quiz-challenge/internal/quiz"
)

func main() {
	filePath := flag.String("file", "items.csv", "path to items csv (name,image)")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}

	conn, err := db.Open()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	items, err := readItems(*filePath)
	if err != nil {
		log.Fatalf("failed to read items: %v", err)
	}

	seeded, err := db.SeedItems(conn, items)
	if err != nil {
		log.Fatalf("failed to seed items: %v", err)
	}
	log.Printf("loaded %d items", seeded)
}

func readItems(path string) ([]quiz.Item, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var items []quiz.Item
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 2 {
			continue
		}
		name := strings.TrimSpace(row[0])
		image := strings.TrimSpace(row[1])
		if name == "" || image == "" {
			continue
		}
		items = append(items, quiz.Item{Name: name, Image: image})
	}
	return items, nil
}
