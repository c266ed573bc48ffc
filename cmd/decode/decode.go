package decode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github/chapool/dapp-gateway/internal/asset"
	"github/chapool/dapp-gateway/internal/config"
	"github/chapool/dapp-gateway/internal/request"
)

const (
	assetsFlag   string = "assets"
	currencyFlag string = "currency"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decodes a session request offline",
		Long: `Reads a single session request as JSON from the given file
(or stdin when omitted) and prints its display details as
indented JSON. No server is started.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runDecode(cmd, args)
		},
	}

	cmd.Flags().String(assetsFlag, "", "Path to an asset snapshot TOML file")
	cmd.Flags().String(currencyFlag, "", "ISO 4217 currency for native amount display")

	return cmd
}

func runDecode(cmd *cobra.Command, args []string) {
	cfg := config.DefaultServiceConfigFromEnv()

	raw, err := readInput(args)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read request input")
	}

	var req request.RawRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		log.Fatal().Err(err).Msg("Failed to parse request JSON")
	}

	registry := loadRegistry(cmd, cfg)

	currency, err := cmd.Flags().GetString(currencyFlag)
	if err != nil || currency == "" {
		currency = cfg.Interpreter.NativeCurrency
	}

	svc := request.NewService(nil)
	details := svc.DisplayDetails(context.Background(), &req, registry, currency)

	out, err := json.MarshalIndent(details.ToTypes(), "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal display details")
	}

	fmt.Println(string(out))
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(args[0])
}

// loadRegistry prefers the --assets flag over the configured snapshot path.
// A missing snapshot degrades to the native-only default registry so the
// command stays usable without any local state.
func loadRegistry(cmd *cobra.Command, cfg config.Server) asset.Registry {
	path, err := cmd.Flags().GetString(assetsFlag)
	if err != nil || path == "" {
		path = cfg.Assets.Path
	}

	registry, err := asset.NewRegistryFromFile(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("Falling back to default asset registry")
		return asset.NewDefaultRegistry()
	}

	return registry
}
