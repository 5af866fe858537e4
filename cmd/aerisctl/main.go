// Command aerisctl queries the Aeris air quality endpoint from the
// terminal. Credentials come from AERIS_CLIENT_ID and
// AERIS_CLIENT_SECRET, loaded from the environment or a .env file.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/couchcryptid/aeris-weather-client/aeris"
)

var CLI struct {
	Debug   bool          `help:"Enable debug logging." short:"d"`
	BaseURL string        `help:"Override the API host." env:"AERIS_BASE_URL"`
	Timeout time.Duration `help:"Request timeout." default:"30s"`

	Limit  int      `help:"Maximum number of results." short:"l"`
	Filter string   `help:"Aeris filter string."`
	Radius string   `help:"Search radius, for example 50mi."`
	Fields []string `help:"Response fields to request."`

	Get     getCmd     `cmd:"" help:"Look up air quality by location or station id."`
	Closest closestCmd `cmd:"" help:"Air quality closest to a place."`
	Search  searchCmd  `cmd:"" help:"Search air quality records."`
	Within  withinCmd  `cmd:"" help:"Air quality within a region."`
}

type getCmd struct {
	ID string `arg:"" help:"Location or station id, for example 55344 or KMSP."`
}

type closestCmd struct {
	Place string `arg:"" help:"Place string, for example minneapolis,mn."`
}

type searchCmd struct {
	Place string `arg:"" optional:"" help:"Place string to scope the search."`
}

type withinCmd struct {
	Place string `arg:"" help:"Region locator, for example a lat/long polygon."`
}

func (c *getCmd) Run(client *aeris.Client) error {
	return printResponse(client.AirQuality.Get(context.Background(), c.ID, options()))
}

func (c *closestCmd) Run(client *aeris.Client) error {
	return printResponse(client.AirQuality.Closest(context.Background(), c.Place, options()))
}

func (c *searchCmd) Run(client *aeris.Client) error {
	return printResponse(client.AirQuality.Search(context.Background(), c.Place, options()))
}

func (c *withinCmd) Run(client *aeris.Client) error {
	return printResponse(client.AirQuality.Within(context.Background(), c.Place, options()))
}

func options() *aeris.QueryOptions {
	return &aeris.QueryOptions{
		Limit:  CLI.Limit,
		Filter: CLI.Filter,
		Radius: CLI.Radius,
		Fields: CLI.Fields,
	}
}

func printResponse(resp *aeris.APIResponse[*aeris.AirQuality], err error) error {
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(resp.Items, "", "  ")
	if err != nil {
		return fmt.Errorf("render results: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func main() {
	// A missing .env file is fine; the variables may already be set.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name("aerisctl"),
		kong.Description("Query the Aeris air quality API"),
		kong.UsageOnError(),
	)

	clientID := os.Getenv("AERIS_CLIENT_ID")
	clientSecret := os.Getenv("AERIS_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		fmt.Fprintln(os.Stderr, "AERIS_CLIENT_ID and AERIS_CLIENT_SECRET must be set")
		os.Exit(1)
	}

	opts := []aeris.Option{
		aeris.WithHTTPClient(&http.Client{Timeout: CLI.Timeout}),
	}
	if CLI.BaseURL != "" {
		opts = append(opts, aeris.WithBaseURL(CLI.BaseURL))
	}
	if CLI.Debug {
		opts = append(opts, aeris.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))))
	}

	client := aeris.New(clientID, clientSecret, opts...)
	ctx.FatalIfErrorf(ctx.Run(client))
}
