package database

import (
	"fmt"

	"sportsday/config"
	"sportsday/models"
	"sportsday/utils"
	"sportsday/utils/permissions"

	"github.com/glebarez/sqlite"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

var AdminUsername = "admin"
var DefaultPassword = "admin"

// Models lists every table in migration order
var Models = []interface{}{
	&models.Color{},
	&models.Major{},
	&models.User{},
	&models.Athlete{},
	&models.SportType{},
	&models.Event{},
	&models.EventRegistration{},
	&models.EventResult{},
	&models.Match{},
	&models.MatchParticipant{},
	&models.VoteSetting{},
	&models.Vote{},
	&models.AthleteVoteSummary{},
	&models.Award{},
	&models.AwardWinner{},
	&models.ActivityLog{},
}

// Open connects to the store selected by the configuration
func Open(cfg config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}
	if cfg.IsProduction() {
		gormCfg.Logger = logger.Default.LogMode(logger.Warn)
	}

	switch cfg.DBDriver {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.PostgresDSN()), gormCfg)
	case "sqlite":
		return OpenSQLite(cfg.SQLitePath, gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// OpenSQLite opens a sqlite database with foreign keys enforced.
// SQLite allows a single writer, so the pool is pinned to one connection.
func OpenSQLite(path string, gormCfg *gorm.Config) (*gorm.DB, error) {
	if gormCfg == nil {
		gormCfg = &gorm.Config{TranslateError: true}
	}
	db, err := gorm.Open(sqlite.Open(path+"?_pragma=foreign_keys(1)"), gormCfg)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// Migrate creates or updates every table
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models...)
}

// InitDB initializes the database connection, migrates the models and populates the database with default values if needed
func InitDB() {
	var err error
	DB, err = Open(config.Current)
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	if err := Populate(DB); err != nil {
		log.Fatal("failed to populate database: ", err)
	}
}

// Populate creates the default admin account when the database has no user
func Populate(db *gorm.DB) error {
	var countUser int64
	if err := db.Model(&models.User{}).Count(&countUser).Error; err != nil {
		return err
	}
	if countUser > 0 {
		return nil
	}

	// The default password comes from the environment or the DefaultPassword constant
	password := DefaultPassword
	if config.Current.DefaultPassword != "" {
		password = config.Current.DefaultPassword
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:    AdminUsername,
		DisplayName: "Administrator",
		Password:    hashed,
		Role:        permissions.ADMIN,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Info("Default admin user created")
	return nil
}
