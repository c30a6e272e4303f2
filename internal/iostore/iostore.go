package iostore

import (
	"database/sql"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/shipshapehq/shipshape/internal/contract"
	"github.com/shipshapehq/shipshape/schema"
)

// Global Manager instance for main logic.
var (
	Manager   = &StoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// StoreManager holds the process-wide store and cache handles.
type StoreManager struct {
	sync.RWMutex
	users     *UserStoreImpl
	clusters  *ClusterCache
	histogram *HistogramCache
}

// Users returns the user store, or nil before InitStores.
func (m *StoreManager) Users() contract.UserStore {
	m.RLock()
	defer m.RUnlock()
	if m.users == nil {
		return nil
	}
	return m.users
}

// UserStore returns the concrete store for write access (seeding, tests).
func (m *StoreManager) UserStore() *UserStoreImpl {
	m.RLock()
	defer m.RUnlock()
	return m.users
}

// Clusters returns the cluster analysis cache.
func (m *StoreManager) Clusters() contract.AnalysisCache {
	m.RLock()
	defer m.RUnlock()
	return m.clusters
}

// Histogram returns the hour histogram cache.
func (m *StoreManager) Histogram() contract.HistogramCache {
	m.RLock()
	defer m.RUnlock()
	return m.histogram
}

// InitStores initializes the global manager: the durable user store plus the
// in-process analysis caches.
func InitStores(backend schema.DatabaseBackend, connStr string, staleAfter time.Duration) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		users, err := NewUserStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize user store: %w", err)
			return
		}

		Manager.Lock()
		defer Manager.Unlock()
		Manager.users = users
		Manager.clusters = NewClusterCache(staleAfter)
		Manager.histogram = NewHistogramCache(staleAfter)
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.users != nil {
			_ = Manager.users.Close()
		}
	})
}

// ClearStore clears the user store for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the tables.
// For NoneBackend, it does nothing.
func ClearStore(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return clearSQLTables("mysql", connStr)

	case schema.PostgreSQLBackend:
		return clearSQLTables("pgx", connStr)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported store backend for clearing: %s", backend)
	}
}

// clearSQLTables connects to the SQL database and drops the store tables.
func clearSQLTables(driverName, connStr string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	// Links before projects before users, in case foreign keys get added.
	for _, table := range []string{linksTable, projectsTable, usersTable} {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s", table)
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}

	return nil
}
