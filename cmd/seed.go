package cmd

import (
	"log"

	"github.com/hrpulse/hrpulse/internal/board"
	boarddb "github.com/hrpulse/hrpulse/internal/board/sqlite"
	"github.com/hrpulse/hrpulse/pkg/logger"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with the default boards",
	Long:  `Seed the stored boards with the built-in defaults. Use --clear to reset boards and preferences first.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			if err := db.Exec("DELETE FROM boards").Error; err != nil {
				log.Fatalf("failed to clear boards: %v", err)
			}
			if err := db.Exec("DELETE FROM preferences").Error; err != nil {
				log.Fatalf("failed to clear preferences: %v", err)
			}
			log.Println("cleared stored boards and preferences")
		}

		service := board.NewService(boarddb.NewBoardRepository(db), logger.LoggerWrapper())
		if err := service.EnsureDefaults(); err != nil {
			log.Fatalf("failed to seed default boards: %v", err)
		}
		log.Println("default boards are in place")
	},
}
