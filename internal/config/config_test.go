package config

import (
	"os"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid sqlite backend config",
			config: Config{
				DataBackend:  "sqlite",
				SQLiteDBPath: "./test.db",
				LogLevel:     "info",
			},
			wantErr: false,
		},
		{
			name: "valid memory backend config",
			config: Config{
				DataBackend: "memory",
				LogLevel:    "debug",
			},
			wantErr: false,
		},
		{
			name: "invalid data backend",
			config: Config{
				DataBackend: "invalid",
				LogLevel:    "info",
			},
			wantErr:     true,
			errorString: "invalid data backend 'invalid': must be one of [memory sqlite]",
		},
		{
			name: "sqlite backend missing database path",
			config: Config{
				DataBackend:  "sqlite",
				SQLiteDBPath: "",
				LogLevel:     "info",
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty when using sqlite backend",
		},
		{
			name: "invalid log level",
			config: Config{
				DataBackend: "memory",
				LogLevel:    "verbose",
			},
			wantErr:     true,
			errorString: "invalid log level 'verbose': must be one of [debug info warn error]",
		},
		{
			name: "empty category in override",
			config: Config{
				DataBackend: "memory",
				LogLevel:    "info",
				Categories:  "Food,,Travel",
			},
			wantErr:     true,
			errorString: "DEFAULT_CATEGORIES contains an empty category name",
		},
		{
			name: "valid category override",
			config: Config{
				DataBackend: "memory",
				LogLevel:    "info",
				Categories:  "Food, Travel ,Rent",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Config.Validate() error = nil, wantErr %v", tt.wantErr)
					return
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Config.Validate() error = %v, want error containing %v", err.Error(), tt.errorString)
				}
			} else {
				if err != nil {
					t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
				}
			}
		})
	}
}

func TestLoad(t *testing.T) {
	// Save original env vars
	originalVars := map[string]string{
		"DATA_BACKEND":       os.Getenv("DATA_BACKEND"),
		"SQLITE_DB_PATH":     os.Getenv("SQLITE_DB_PATH"),
		"LOG_LEVEL":          os.Getenv("LOG_LEVEL"),
		"DEFAULT_CATEGORIES": os.Getenv("DEFAULT_CATEGORIES"),
	}

	for key := range originalVars {
		os.Unsetenv(key)
	}

	defer func() {
		for key, value := range originalVars {
			if value != "" {
				os.Setenv(key, value)
			} else {
				os.Unsetenv(key)
			}
		}
	}()

	t.Run("default values", func(t *testing.T) {
		cfg := Load()

		if cfg.DataBackend != "sqlite" {
			t.Errorf("Load() DataBackend = %v, want sqlite", cfg.DataBackend)
		}
		if cfg.SQLiteDBPath != "./data/expenseflow.db" {
			t.Errorf("Load() SQLiteDBPath = %v, want ./data/expenseflow.db", cfg.SQLiteDBPath)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("Load() LogLevel = %v, want info", cfg.LogLevel)
		}
		if cfg.Categories != "" {
			t.Errorf("Load() Categories = %v, want empty", cfg.Categories)
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		os.Setenv("DATA_BACKEND", "memory")
		os.Setenv("SQLITE_DB_PATH", "/tmp/test.db")
		os.Setenv("LOG_LEVEL", "debug")
		os.Setenv("DEFAULT_CATEGORIES", "Food,Gifts")

		cfg := Load()

		if cfg.DataBackend != "memory" {
			t.Errorf("Load() DataBackend = %v, want memory", cfg.DataBackend)
		}
		if cfg.SQLiteDBPath != "/tmp/test.db" {
			t.Errorf("Load() SQLiteDBPath = %v, want /tmp/test.db", cfg.SQLiteDBPath)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("Load() LogLevel = %v, want debug", cfg.LogLevel)
		}
		if cfg.Categories != "Food,Gifts" {
			t.Errorf("Load() Categories = %v, want Food,Gifts", cfg.Categories)
		}
	})
}

func TestCategoryList(t *testing.T) {
	tests := []struct {
		name       string
		categories string
		want       []string
	}{
		{"empty uses defaults", "", nil},
		{"single", "Food", []string{"Food"}},
		{"trims whitespace", " Food , Travel ", []string{"Food", "Travel"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Config{Categories: tt.categories}
			got := c.CategoryList()
			if len(got) != len(tt.want) {
				t.Fatalf("CategoryList() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("CategoryList()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
