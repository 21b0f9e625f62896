package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Log     LogConfig
	Storage StorageConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Live    LiveConfig
	Calc    CalcConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel de log (trace, debug, info, warn, error).
type LogConfig struct {
	Level string
}

// Drivers de almacenamiento soportados.
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// StorageConfig selecciona dónde se guardan los cálculos.
type StorageConfig struct {
	Driver     string // memory, sqlite, postgres
	SQLitePath string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor REST.
type HTTPConfig struct {
	Host        string
	Port        int
	SwaggerPath string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LiveConfig servidor de sesiones en vivo (WebSocket) y /metrics.
type LiveConfig struct {
	Host string
	Port int
	// AllowedOrigins orígenes de navegador (scheme://host[:port]) aceptados además del mismo host.
	// "*" acepta cualquiera. Env: LIVE_ALLOWED_ORIGINS separado por comas.
	AllowedOrigins []string
}

// Addr devuelve la dirección de escucha (host:port).
func (c LiveConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CalcConfig parámetros de captura y presentación del calculador. Recargables en caliente.
type CalcConfig struct {
	DecimalPlaces  int    // dígitos fraccionarios permitidos al capturar
	MaxLength      int    // longitud máxima de cada campo
	InputMode      string // filter | sanitize
	Locale         string // BCP 47, ej. ko-KR
	FractionDigits int    // dígitos fraccionarios al mostrar
	CurrencySuffix string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, STORAGE_DRIVER, JWT_SECRET, CALC_DECIMAL_PLACES, etc.
func Load() (*Config, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}
	return fromViper(v), nil
}

// Watch carga la configuración y observa el archivo de configuración (si existe).
// onChange recibe la configuración completa releída cada vez que el archivo cambia;
// las env vars siguen teniendo prioridad.
func Watch(onChange func(*Config, fsnotify.Event)) (*Config, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}
	if v.ConfigFileUsed() != "" && onChange != nil {
		v.OnConfigChange(func(e fsnotify.Event) {
			if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				return
			}
			onChange(fromViper(v), e)
		})
		v.WatchConfig()
	}
	return fromViper(v), nil
}

func newViper() (*viper.Viper, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.*). Se ignora si no existe.
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	err := v.ReadInConfig()
	if isNotFound(err) {
		v.SetConfigName("config")
		v.SetConfigType("")
		v.AddConfigPath("./config")
		err = v.ReadInConfig()
	}
	if err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("leer archivo de configuración: %w", err)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v, nil
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "calculadora-promedio"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			Driver:     strings.ToLower(getString(v, "STORAGE_DRIVER", StorageMemory)),
			SQLitePath: getString(v, "SQLITE_PATH", "calculadora.db"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "calculadora"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "calculadora-promedio"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			SwaggerPath: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
		Live: LiveConfig{
			Host:           getString(v, "LIVE_HOST", "0.0.0.0"),
			Port:           getInt(v, "LIVE_PORT", 8081),
			AllowedOrigins: getList(v, "LIVE_ALLOWED_ORIGINS"),
		},
		Calc: CalcConfig{
			DecimalPlaces:  getInt(v, "CALC_DECIMAL_PLACES", 5),
			MaxLength:      getInt(v, "CALC_MAX_LENGTH", 16),
			InputMode:      strings.ToLower(getString(v, "CALC_INPUT_MODE", "filter")),
			Locale:         getString(v, "CALC_LOCALE", "ko-KR"),
			FractionDigits: getInt(v, "CALC_FRACTION_DIGITS", 2),
			CurrencySuffix: getString(v, "CALC_CURRENCY_SUFFIX", "원"),
		},
	}
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

// getList lee una lista (separada por comas en env/.env, o lista en config.yaml); descarta vacíos.
func getList(v *viper.Viper, key string) []string {
	var raw []string
	switch v.Get(key).(type) {
	case []any, []string:
		raw = v.GetStringSlice(key)
	default:
		raw = strings.Split(v.GetString(key), ",")
	}
	var out []string
	for _, item := range raw {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
