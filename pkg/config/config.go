package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper
// desde variables de entorno y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Store  StoreConfig
	Export ExportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // debug, info, warn, error
}

// StoreConfig configuración del respaldo de inventario.
// Backend "csv" usa un archivo plano con cabecera; "sqlite" usa una
// base embebida (sin servidor) con el mismo contrato de carga/guardado.
type StoreConfig struct {
	Backend    string // csv | sqlite
	DataFile   string // ruta del CSV de inventario
	SQLitePath string // ruta del archivo .db cuando Backend es sqlite
}

// ExportConfig configuración de los reportes exportados.
type ExportConfig struct {
	Dir string // directorio destino de los archivos exportados
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, LOG_LEVEL, STORE_BACKEND, DATA_FILE, SQLITE_PATH, EXPORT_DIR.
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
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventario-almacen"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Store: StoreConfig{
			Backend:    getString(v, "STORE_BACKEND", "csv"),
			DataFile:   getString(v, "DATA_FILE", "data/warehouse_inventory.csv"),
			SQLitePath: getString(v, "SQLITE_PATH", "data/warehouse_inventory.db"),
		},
		Export: ExportConfig{
			Dir: getString(v, "EXPORT_DIR", "."),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
