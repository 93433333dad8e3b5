package db

import (
	"errors"

	"gorm.io/gorm"

	"class-quiz-challenge/internal/quiz"
)

// ListItems loads the quiz catalog from the database, ordered by name so
// startup is deterministic.
func ListItems(conn *gorm.DB) ([]quiz.Item, error) {
	if conn == nil {
		return nil, errors.New("db connection is nil")
	}
	var records []QuizItem
	if err := conn.Order("name asc").Find(&records).Error; err != nil {
		return nil, err
	}
	items := make([]quiz.Item, 0, len(records))
	for _, record := range records {
		items = append(items, quiz.Item{Name: record.Name, Image: record.Image})
	}
	return items, nil
}

// SeedItems upserts catalog items by name and reports how many rows were
// touched.
func SeedItems(conn *gorm.DB, items []quiz.Item) (int, error) {
	if conn == nil {
		return 0, errors.New("db connection is nil")
	}
	seeded := 0
	for _, item := range items {
		record := QuizItem{Name: item.Name, Image: item.Image}
		if err := conn.FirstOrCreate(&record, QuizItem{Name: item.Name}).Error; err != nil {
			return seeded, err
		}
		seeded++
	}
	return seeded, nil
}
