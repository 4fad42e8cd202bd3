package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"salary-stats/internal/constants"

	"github.com/joho/godotenv"
)

// SuperJobConfig хранит настройки источника SuperJob
type SuperJobConfig struct {
	APIKey  string
	BaseURL string
	TownID  int
}

// HeadHunterConfig хранит настройки источника HeadHunter
type HeadHunterConfig struct {
	BaseURL string
	AreaID  int
}

// HTTPConfig - общие настройки запросов
type HTTPConfig struct {
	UserAgent    string
	RequestDelay time.Duration
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName      string
	Languages    []string
	SuperJob     SuperJobConfig
	HeadHunter   HeadHunterConfig
	HTTP         HTTPConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// LoadConfig загружает конфигурацию из переменных окружения.
// Файл .env необязателен: переменные могут быть заданы в окружении.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath...)
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: Could not load .env file (path: %v): %v. Using process environment.\n", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "salary-stats")

	cfg.SuperJob.APIKey = os.Getenv("SUPERJOB_KEY")
	if cfg.SuperJob.APIKey == "" {
		return nil, fmt.Errorf("SUPERJOB_KEY environment variable is required")
	}
	cfg.SuperJob.BaseURL = getEnvAsString("SUPERJOB_BASE_URL", constants.SuperJobBaseURL)
	cfg.SuperJob.TownID = getEnvAsInt("SUPERJOB_TOWN_ID", constants.SuperJobMoscowTownID)

	cfg.HeadHunter.BaseURL = getEnvAsString("HH_BASE_URL", constants.HeadHunterBaseURL)
	cfg.HeadHunter.AreaID = getEnvAsInt("HH_AREA_ID", constants.HeadHunterMoscowAreaID)

	cfg.Languages = getEnvAsList("LANGUAGES", constants.DefaultLanguages)

	cfg.HTTP.UserAgent = getEnvAsString("HTTP_USER_AGENT", "salary-stats/1.0")
	cfg.HTTP.RequestDelay = time.Duration(getEnvAsInt("REQUEST_DELAY_MS", 0)) * time.Millisecond

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "info")

	return cfg, nil
}

// getEnvAsString читает переменную окружения как строку или возвращает значение по умолчанию
func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt читает переменную окружения как int или возвращает значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool читает переменную окружения как bool или возвращает значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

// getEnvAsList читает список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string, defaultValue []string) []string {
	valStr, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(valStr) == "" {
		return append([]string(nil), defaultValue...)
	}

	var list []string
	for _, item := range strings.Split(valStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	if len(list) == 0 {
		return append([]string(nil), defaultValue...)
	}
	return list
}
