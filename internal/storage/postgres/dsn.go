package postgres

import (
	"fmt"

	"github.com/GoSim-25-26J-441/vibe-code-assistant/config"
)

// DSN returns DB_DSN when set, otherwise a key/value DSN built from the
// individual DB_* settings.
func DSN(cfg *config.DatabaseConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
	)
}
