package config

func InitializeConfig() error {
	NewLoggerService()
	if err := ConnectDatabase(); err != nil {
		return err
	}

	// The cache only serves analytics reads, the API stays up without it.
	if err := NewCacheService(); err != nil {
		Logger.Warnf("cache unavailable, analytics caching disabled: %v", err)
	}

	return nil
}
