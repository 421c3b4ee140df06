package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"onebuttonprompt/internal/core"
	"onebuttonprompt/internal/util"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

func emptyStats() *core.RequestStats {
	return &core.RequestStats{
		ModelCounts:    map[string]int64{},
		RequestHistory: []core.RequestRecord{},
	}
}

func normalize(stats *core.RequestStats) *core.RequestStats {
	if stats.RequestHistory == nil {
		stats.RequestHistory = []core.RequestRecord{}
	}
	if stats.ModelCounts == nil {
		stats.ModelCounts = map[string]int64{}
	}
	return stats
}

// FileStorage implements persistence using JSON files
type FileStorage struct {
	filePath string
}

func NewFileStorage(filePath string) *FileStorage {
	if filePath == "" {
		filePath = core.StatsFilePath
	}
	return &FileStorage{filePath: filePath}
}

// SaveStats writes to a temp file and renames it over the target.
func (fs *FileStorage) SaveStats(stats *core.RequestStats) error {
	data, err := sonic.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	tmp := fs.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, core.FilePermissionReadWrite); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	if err := os.Rename(tmp, fs.filePath); err != nil {
		return errors.Join(fmt.Errorf("replace stats file: %w", err), os.Remove(tmp))
	}
	return nil
}

func (fs *FileStorage) LoadStats() (*core.RequestStats, error) {
	data, err := os.ReadFile(filepath.Clean(fs.filePath))
	if err != nil {
		if os.IsNotExist(err) {
			return emptyStats(), nil
		}
		return nil, err
	}

	var stats core.RequestStats
	if err := sonic.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("parse stats file %s: %w", fs.filePath, err)
	}
	return normalize(&stats), nil
}

func (fs *FileStorage) Close() error {
	return nil
}

// Shutdown lets a do.Injector release the storage.
func (fs *FileStorage) Shutdown() error { return fs.Close() }

// RedisStorage implements persistence using Redis
type RedisStorage struct {
	client *redis.Client
	ctx    context.Context
	key    string
}

// RedisStorageConfig Redis storage config
type RedisStorageConfig struct {
	URL string
	Key string
}

func NewRedisStorage(config RedisStorageConfig) (*RedisStorage, error) {
	opts, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Join(fmt.Errorf("ping redis: %w", err), client.Close())
	}

	key := config.Key
	if key == "" {
		key = core.StatsRedisKey
	}

	return &RedisStorage{client: client, ctx: ctx, key: key}, nil
}

func (rs *RedisStorage) SaveStats(stats *core.RequestStats) error {
	data, err := util.MarshalJSON(stats)
	if err != nil {
		return err
	}
	return rs.client.Set(rs.ctx, rs.key, data, 0).Err()
}

func (rs *RedisStorage) LoadStats() (*core.RequestStats, error) {
	val, err := rs.client.Get(rs.ctx, rs.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return emptyStats(), nil
		}
		return nil, err
	}

	var stats core.RequestStats
	if err := sonic.Unmarshal(val, &stats); err != nil {
		return nil, fmt.Errorf("parse stats key %s: %w", rs.key, err)
	}
	return normalize(&stats), nil
}

func (rs *RedisStorage) Close() error {
	return rs.client.Close()
}

func (rs *RedisStorage) Shutdown() error { return rs.Close() }

// InitStorage picks Redis when redisURL is set and falls back to the stats file otherwise.
func InitStorage(redisURL, statsFile string, logger core.Logger) core.StorageInterface {
	if redisURL != "" {
		redisStorage, err := NewRedisStorage(RedisStorageConfig{
			URL: redisURL,
			Key: core.StatsRedisKey,
		})
		if err != nil {
			logger.Warn("Failed to initialize Redis storage: %v, falling back to file storage", err)
			return NewFileStorage(statsFile)
		}
		logger.Info("Using Redis storage")
		return redisStorage
	}

	logger.Info("Using file storage (%s)", statsFile)
	return NewFileStorage(statsFile)
}
