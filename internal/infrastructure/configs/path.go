package configs

import (
	"os"

	"github.com/hilthontt/playbutton/internal/infrastructure/env"
)

// DetermineConfigPath resolves the config file: the explicit flag value first,
// then PLAYBUTTON_CONFIG, then well-known locations. An empty result means
// "run on defaults and env overrides only".
func DetermineConfigPath(explicit string) string {
	configPath := explicit

	if configPath == "" {
		configPath = env.GetString("PLAYBUTTON_CONFIG", "")
	}

	if configPath == "" {
		candidates := []string{
			"./config.yaml",
			"./config.yml",
			"/etc/playbutton/config.yaml",
			"/app/config.yaml", // common in Docker
		}

		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				configPath = p
				break
			}
		}
	}

	return configPath
}
