package system

import (
	"context"
	"encoding/json"

	"cruise-booking-api/internal/dal"
	"cruise-booking-api/internal/model"
)

const settingsCacheKey = "sys:settings"

type ConfigSystem struct{}

// GetSettingByKey reads a settings row straight from the database.
func (s *ConfigSystem) GetSettingByKey(key string) model.Setting {
	var setting model.Setting
	dal.DB.Where("config_key = ?", key).Last(&setting)
	return setting
}

// GetSettingCacheByKey prefers the Redis hash cache over the database and
// backfills the cache on a miss.
func (s *ConfigSystem) GetSettingCacheByKey(key string) model.Setting {
	var setting model.Setting

	if cached, _ := dal.RedisClient.HGet(context.Background(), settingsCacheKey, key).Result(); cached != "" {
		if err := json.Unmarshal([]byte(cached), &setting); err == nil {
			return setting
		}
	}

	setting = s.GetSettingByKey(key)
	if setting.ID > 0 {
		b, _ := json.Marshal(&setting)
		dal.RedisClient.HSet(context.Background(), settingsCacheKey, key, string(b))
	}
	return setting
}
