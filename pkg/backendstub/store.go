package backendstub

import (
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fireguard.xyz/fireguard-console/pkg/common"
	"fireguard.xyz/fireguard-console/pkg/models"
)

// EventRecord is an archived detection row. Timestamp is stored as the
// display string the console renders, "2006-01-02 15:04:05".
type EventRecord struct {
	ID           int    `gorm:"primaryKey"`
	Timestamp    string `gorm:"index"`
	Type         string
	Confidence   float64
	SnapshotPath string
}

func (EventRecord) TableName() string { return "events" }

type SettingRecord struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string
}

func (SettingRecord) TableName() string { return "settings" }

type Store struct {
	Conn *gorm.DB
}

var (
	instance *Store
	once     sync.Once
)

func GetStore(dialector gorm.Dialector) *Store {
	var logger = common.GetLogger()
	once.Do(func() {
		conn, err := gorm.Open(dialector, &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

		instance = &Store{Conn: conn}

		err = instance.Conn.AutoMigrate(&EventRecord{}, &SettingRecord{})
		if err != nil {
			log.Fatal("Failed to migrate database:", err)
		}

		logger.Info("Database migration completed")

		if err := instance.Conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
			log.Fatal("Failed to set sqlite journal mode", err)
		}
	})
	return instance
}

func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(common.EnvKeyFGStubDBPath); !found {
		dbPath = "fireguard.db"
	}
	return sqlite.Open(dbPath)
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open("file::memory:?cache=shared")
}

func (s *Store) InsertEvent(event *EventRecord) error {
	return s.Conn.Create(event).Error
}

// RecentEvents returns up to limit events, newest first.
func (s *Store) RecentEvents(limit int) ([]EventRecord, error) {
	var events []EventRecord
	err := s.Conn.Order("id desc").Limit(limit).Find(&events).Error
	return events, err
}

// DailyStats groups events per day, ascending by date.
func (s *Store) DailyStats() ([]models.Stat, error) {
	var stats []models.Stat
	err := s.Conn.Raw(
		`SELECT substr(timestamp, 1, 10) AS date, count(*) AS count
		 FROM events GROUP BY date ORDER BY date ASC`,
	).Scan(&stats).Error
	return stats, err
}

func (s *Store) AllSettings() (models.Settings, error) {
	var records []SettingRecord
	if err := s.Conn.Find(&records).Error; err != nil {
		return nil, err
	}

	settings := make(models.Settings, len(records))
	for _, r := range records {
		settings[r.Key] = r.Value
	}
	return settings, nil
}

func (s *Store) GetSetting(key string) (string, error) {
	var record SettingRecord
	err := s.Conn.First(&record, "key = ?", key).Error
	return record.Value, err
}

func (s *Store) SetSetting(key string, value string) error {
	return s.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&SettingRecord{Key: key, Value: value}).Error
}
