package probe

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github/chapool/dapp-gateway/internal/config"
)

const probeTimeout = 5 * time.Second

func runProbe(path string, verbose bool) {
	cfg := config.DefaultServiceConfigFromEnv()

	u := probeURL(cfg, path)

	client := &http.Client{Timeout: probeTimeout}

	res, err := client.Get(u)
	if err != nil {
		log.Fatal().Err(err).Str("url", u).Msg("Probe request failed")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		log.Fatal().Err(err).Str("url", u).Msg("Failed to read probe response")
	}

	if verbose {
		fmt.Println(string(body))
	}

	if res.StatusCode != http.StatusOK {
		log.Error().Int("status", res.StatusCode).Str("url", u).Msg("Probe failed")
		os.Exit(1)
	}
}

// probeURL targets the local listener, attaching the management secret
// when one is configured.
func probeURL(cfg config.Server, path string) string {
	addr := cfg.Echo.ListenAddress
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}

	u := fmt.Sprintf("http://%s%s", addr, path)
	if cfg.Management.Secret != "" {
		u += "?mgmt-secret=" + url.QueryEscape(cfg.Management.Secret)
	}

	return u
}
