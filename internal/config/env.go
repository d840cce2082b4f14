package config

import "github.com/caarlos0/env/v11"

// Server holds process-level settings loaded from the environment.
type Server struct {
	Port        string `env:"PORT" envDefault:"8787"`
	DataDir     string `env:"DATA_DIR" envDefault:"data"`
	Store       string `env:"STORE" envDefault:"file"` // "file" or "sqlite"
	BalanceFile string `env:"BALANCE_FILE"`
	Difficulty  string `env:"DIFFICULTY"` // "", "casual", "hard"
	Seed        int64  `env:"RNG_SEED"`
	Backups     int    `env:"SAVE_BACKUPS" envDefault:"5"`
}

// FromEnv loads server settings and the balance preset selected by
// DIFFICULTY, with an optional BALANCE_FILE override on top.
func FromEnv() (Server, Balance, error) {
	var srv Server
	if err := env.Parse(&srv); err != nil {
		return Server{}, Balance{}, err
	}

	bal := Default()
	switch srv.Difficulty {
	case "casual":
		bal = Casual()
	case "hard":
		bal = Hard()
	}

	if srv.BalanceFile != "" {
		loaded, err := Load(srv.BalanceFile)
		if err != nil {
			return Server{}, Balance{}, err
		}
		bal = loaded
	}

	return srv, bal, nil
}
