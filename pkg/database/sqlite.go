package database

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the SQLite store file. The handle is handed to the service
// layer explicitly; nothing in this package keeps global connection state.
func Connect(path string, log *logrus.Logger) (*gorm.DB, error) {
	gormLogger := logger.New(
		log,
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogLevel(log.GetLevel()),
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite store %q", path)
	}

	// SQLite permits a single writer; one open connection avoids
	// SQLITE_BUSY on the sale transaction.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "unwrap sql.DB")
	}
	sqlDB.SetMaxOpenConns(1)

	log.WithField("path", path).Debug("database connection established")
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB, log *logrus.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Error("unwrap sql.DB on close")
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.WithError(err).Error("close database")
	}
}

func gormLogLevel(level logrus.Level) logger.LogLevel {
	switch {
	case level >= logrus.DebugLevel:
		return logger.Info
	case level >= logrus.WarnLevel:
		return logger.Warn
	default:
		return logger.Error
	}
}
