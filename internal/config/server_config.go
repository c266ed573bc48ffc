package config

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// EchoServer holds the public HTTP listener configuration.
type EchoServer struct {
	ListenAddress                  string
	HideInternalServerErrorDetails bool
}

// ManagementServer guards the /-/* probe and metrics endpoints.
type ManagementServer struct {
	Secret string
}

// AssetRegistry points at the local asset snapshot file.
type AssetRegistry struct {
	Path string
}

// Interpreter holds the request interpreter defaults.
type Interpreter struct {
	// NativeCurrency is the ISO 4217 display currency applied when a
	// request does not override it.
	NativeCurrency string
}

// Logger configures the global zerolog instance.
type Logger struct {
	Level              zerolog.Level
	PrettyPrintConsole bool
}

// Server is the full service configuration, resolved once from the
// environment.
type Server struct {
	Echo        EchoServer
	Management  ManagementServer
	Assets      AssetRegistry
	Interpreter Interpreter
	Logger      Logger
}

var loadDotEnvOnce sync.Once

// DefaultServiceConfigFromEnv resolves the service configuration from
// environment variables with sane development defaults. A .env file in the
// working directory is applied first when present.
func DefaultServiceConfigFromEnv() Server {
	loadDotEnvOnce.Do(func() {
		if err := gotenv.Load(); err != nil {
			log.Debug().Err(err).Msg("No .env file applied")
		}
	})

	v := viper.New()
	v.SetEnvPrefix("DAPP_GATEWAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("echo.listen_address", ":8077")
	v.SetDefault("echo.hide_internal_server_error_details", true)
	v.SetDefault("management.secret", "")
	v.SetDefault("assets.path", "assets.toml")
	v.SetDefault("interpreter.native_currency", "USD")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.pretty_print_console", false)

	level, err := zerolog.ParseLevel(v.GetString("logger.level"))
	if err != nil {
		log.Warn().Str("level", v.GetString("logger.level")).Msg("Unknown log level, falling back to info")
		level = zerolog.InfoLevel
	}

	return Server{
		Echo: EchoServer{
			ListenAddress:                  v.GetString("echo.listen_address"),
			HideInternalServerErrorDetails: v.GetBool("echo.hide_internal_server_error_details"),
		},
		Management: ManagementServer{
			Secret: v.GetString("management.secret"),
		},
		Assets: AssetRegistry{
			Path: v.GetString("assets.path"),
		},
		Interpreter: Interpreter{
			NativeCurrency: v.GetString("interpreter.native_currency"),
		},
		Logger: Logger{
			Level:              level,
			PrettyPrintConsole: v.GetBool("logger.pretty_print_console"),
		},
	}
}
