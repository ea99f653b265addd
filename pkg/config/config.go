package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Sheets SheetsConfig
	Admin  AdminConfig
	JWT    JWTConfig
	Store  StoreConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SheetsConfig configuración del endpoint remoto (Apps Script sobre la hoja de cálculo).
// EndpointURL es la URL del Web App desplegado; el catálogo y todas las solicitudes pasan por ahí.
type SheetsConfig struct {
	EndpointURL    string
	TimeoutSeconds int
}

// Timeout devuelve el timeout de red para las llamadas al endpoint remoto.
func (c SheetsConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 25 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// AdminConfig configuración del acceso al panel admin.
// PasswordHash es un hash bcrypt; vacío deshabilita el login admin.
// La protección real vive en el lado remoto (cuenta Google del Apps Script).
type AdminConfig struct {
	PasswordHash string
}

// JWTConfig configuración del token de sesión admin.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// StoreConfig configuración del almacenamiento local (favoritos por sesión).
type StoreConfig struct {
	FavoritesDir string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, SHEETS_ENDPOINT_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno (Viper las lee automáticamente si AutomaticEnv está activo)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "vitrina-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Sheets: SheetsConfig{
			EndpointURL:    getString(v, "SHEETS_ENDPOINT_URL", ""),
			TimeoutSeconds: getInt(v, "SHEETS_TIMEOUT_SECONDS", 25),
		},
		Admin: AdminConfig{
			PasswordHash: getString(v, "ADMIN_PASSWORD_HASH", ""),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "vitrina-api"),
		},
		Store: StoreConfig{
			FavoritesDir: getString(v, "FAVORITES_DIR", "./data/favorites"),
		},
	}

	if cfg.Sheets.EndpointURL == "" {
		return nil, fmt.Errorf("config: SHEETS_ENDPOINT_URL es requerido")
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
