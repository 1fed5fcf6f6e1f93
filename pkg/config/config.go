package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Log     LogConfig
	Card    CardConfig
	Catalog CatalogConfig
	Receipt ReceiptConfig
	Input   InputConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel del logger de diagnóstico.
type LogConfig struct {
	Level string
}

// CardConfig reglas del pago simulado con tarjeta.
type CardConfig struct {
	IDPrefix    string          // prefijo obligatorio del identificador (IBAN simulado)
	IDMinLength int             // longitud mínima del identificador
	Limit       decimal.Decimal // montos estrictamente mayores se rechazan
}

// CatalogConfig origen del catálogo. Path vacío = catálogo por defecto embebido.
type CatalogConfig struct {
	Path string
}

// ReceiptConfig exportación opcional del recibo en PDF.
type ReceiptConfig struct {
	PDFPath string
}

// InputConfig política de reintentos ante entradas mal formadas (0 = sin límite).
type InputConfig struct {
	MaxAttempts int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LOG_LEVEL, CARD_LIMIT, CATALOG_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	limit, err := decimal.NewFromString(getString(v, "CARD_LIMIT", "50"))
	if err != nil {
		return nil, fmt.Errorf("config: CARD_LIMIT inválido: %w", err)
	}
	if limit.IsNegative() {
		return nil, fmt.Errorf("config: CARD_LIMIT no puede ser negativo (%s)", limit)
	}
	minLength, err := getInt(v, "CARD_ID_MIN_LENGTH", 12)
	if err != nil {
		return nil, err
	}
	maxAttempts, err := getInt(v, "INPUT_MAX_ATTEMPTS", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "vending-machine"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "warn"),
		},
		Card: CardConfig{
			IDPrefix:    strings.ToUpper(getString(v, "CARD_ID_PREFIX", "IB")),
			IDMinLength: minLength,
			Limit:       limit,
		},
		Catalog: CatalogConfig{
			Path: getString(v, "CATALOG_PATH", ""),
		},
		Receipt: ReceiptConfig{
			PDFPath: getString(v, "RECEIPT_PDF_PATH", ""),
		},
		Input: InputConfig{
			MaxAttempts: maxAttempts,
		},
	}
	if cfg.Card.IDMinLength < 0 {
		return nil, fmt.Errorf("config: CARD_ID_MIN_LENGTH no puede ser negativo (%d)", cfg.Card.IDMinLength)
	}
	if cfg.Input.MaxAttempts < 0 {
		return nil, fmt.Errorf("config: INPUT_MAX_ATTEMPTS no puede ser negativo (%d)", cfg.Input.MaxAttempts)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) && v.GetString(key) != "" {
		return v.GetString(key)
	}
	return def
}

// getInt lee un entero; un valor presente pero no numérico es error, no el default.
func getInt(v *viper.Viper, key string, def int) (int, error) {
	s := strings.TrimSpace(getString(v, key, ""))
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("config: %s inválido (%q): %w", key, s, err)
	}
	return n, nil
}
