// Package testutil 测试辅助：临时sqlite数据库与内存会话存储
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/persistence/store"
)

// NewDB 创建已迁移的临时sqlite数据库，测试结束时自动关闭
// 使用文件而不是:memory:，保证连接池里的每个连接看到同一个库
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := store.Open(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "library_test.db"),
	}, logger.Silent)
	require.NoError(t, err)
	require.NoError(t, store.AutoMigrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}
