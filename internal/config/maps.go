package config

type MapsConfig struct {
	GoogleAPIKey string
	Enabled      bool
}

func loadMapsConfig() *MapsConfig {
	return &MapsConfig{
		GoogleAPIKey: getEnv("GOOGLE_MAPS_API_KEY", ""),
		Enabled:      getEnvAsBool("MAPS_ENABLED", false),
	}
}
