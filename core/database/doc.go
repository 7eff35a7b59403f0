// Package database handles the optional MySQL connection used for sync history.
//
// It provides a wrapper around GORM to configure MySQL connections based on the
// application's configuration (DATABASE_* variables). The connection is only
// attempted when DATABASE_ENABLED is true, and a failure only disables history.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Sync history disabled", zap.Error(err))
//	}
package database
