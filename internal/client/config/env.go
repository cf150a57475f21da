package config

import "github.com/ilyakaznacheev/cleanenv"

// parseEnv overlays fields whose BOOKARC_* variable is set. Unset
// variables leave the current value alone.
func parseEnv(cfg *Config) error {
	return cleanenv.ReadEnv(cfg)
}
