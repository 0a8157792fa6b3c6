package scoreboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrEmptyName = errors.New("player name is empty")

// Record is one player's result for one completed game.
type Record struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"size:64;index:idx_player_scores_name"`
	StepCount int       `json:"stepCount"`
	Score     int       `json:"score" gorm:"index"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Record) TableName() string {
	return "player_scores"
}

// Store persists score records in an embedded SQLite database.
type Store struct {
	DB     *gorm.DB
	Logger zerolog.Logger
}

// Open opens the database at path and migrates the schema.
// An empty path opens a private in-memory database.
func Open(path string, log zerolog.Logger) (*Store, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open score database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sql interface: %w", err)
	}
	// every new connection to :memory: would see an empty database
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Record{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	if path == "" {
		log.Info().Msg("Using in-memory score database")
	} else {
		log.Info().Str("path", path).Msg("Using score database")
	}
	return &Store{DB: db, Logger: log}, nil
}

// Save inserts records in a single transaction.
func (s *Store) Save(ctx context.Context, records ...Record) error {
	if len(records) == 0 {
		return nil
	}
	for i := range records {
		records[i].Name = strings.TrimSpace(records[i].Name)
		if records[i].Name == "" {
			return ErrEmptyName
		}
	}

	if err := s.DB.WithContext(ctx).Create(&records).Error; err != nil {
		return fmt.Errorf("failed to save scores: %w", err)
	}
	for _, r := range records {
		s.Logger.Debug().Str("name", r.Name).Int("steps", r.StepCount).Int("score", r.Score).Msg("Saved score")
	}
	return nil
}

// List returns all records, best first: highest score, then fewest steps.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	var records []Record
	err := s.DB.WithContext(ctx).
		Order("score DESC").
		Order("step_count ASC").
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}
	return records, nil
}

// Totals sums the score of every player by name, best first.
func (s *Store) Totals(ctx context.Context) ([]Record, error) {
	var records []Record
	err := s.DB.WithContext(ctx).
		Model(&Record{}).
		Select("name, SUM(step_count) AS step_count, SUM(score) AS score").
		Group("name").
		Order("score DESC").
		Order("step_count ASC").
		Order("name ASC").
		Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to total scores: %w", err)
	}
	return records, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
