package main

import (
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"weather-dashboard/config"
	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/services/dashboard"
	"weather-dashboard/pkg/logger"
)

type fetchOptions struct {
	query    models.Query
	page     int
	pageSize int
	output   string
}

const (
	outputText = "text"
	outputJSON = "json"
)

// fetchCommand creates the fetch subcommand
func fetchCommand() *cobra.Command {
	opts := fetchOptions{}

	fetchCmd := &cobra.Command{
		Use:     "fetch",
		Short:   "Fetch daily temperatures and print the chart summary and one table page",
		Example: "  weather-cli fetch --latitude 52.52 --longitude 13.41 --start 2024-01-01 --end 2024-01-31 --page 2 --page-size 20",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}

			configPath, _ := cmd.Flags().GetString("config")
			level, _ := cmd.Flags().GetString("log-level")

			_ = godotenv.Load()
			cnf, err := config.NewConfigWithProvider(config.NewFileConfigProvider(configPath))
			if err != nil {
				return err
			}
			opts.applyConfig(cmd, cnf)

			l := logger.NewZapLogger(logger.Options{
				AppName: cnf.App.Name,
				AppEnv:  cnf.App.Env,
				Level:   level,
			}, os.Stderr)
			defer func() { _ = l.Stop() }()

			svc := dashboard.NewService(repositories.InitDailyRepository(cnf, l, nil), l)
			return runFetch(cmd, cmd.OutOrStdout(), svc, opts)
		},
	}

	fetchCmd.Flags().StringVar(&opts.query.Latitude, "latitude", "", "Latitude, -90 to 90")
	fetchCmd.Flags().StringVar(&opts.query.Longitude, "longitude", "", "Longitude, -180 to 180")
	fetchCmd.Flags().StringVar(&opts.query.StartDate, "start", "", "First day in ISO 8601 format (YYYY-MM-DD)")
	fetchCmd.Flags().StringVar(&opts.query.EndDate, "end", "", "Last day in ISO 8601 format (YYYY-MM-DD)")
	fetchCmd.Flags().IntVar(&opts.page, "page", 1, "Table page to print, starting at 1")
	fetchCmd.Flags().IntVar(&opts.pageSize, "page-size", dashboard.DefaultPageSize, "Rows per page: 10, 20 or 50; unset uses dashboard.default_page_size")
	fetchCmd.Flags().StringVarP(&opts.output, "output", "o", outputText, "Output format: text or json")

	return fetchCmd
}

func (o fetchOptions) validate() error {
	if err := dashboard.ValidateQuery(o.query); err != nil {
		return err
	}
	if !dashboard.ValidPageSize(o.pageSize) {
		return dashboard.ErrInvalidPageSize
	}
	if o.output != outputText && o.output != outputJSON {
		return errors.Errorf("unknown output format %q", o.output)
	}
	return nil
}

// applyConfig fills options the user did not set on the command line.
func (o *fetchOptions) applyConfig(cmd *cobra.Command, cnf *config.Config) {
	if !cmd.Flags().Changed("page-size") && dashboard.ValidPageSize(cnf.Dashboard.DefaultPageSize) {
		o.pageSize = cnf.Dashboard.DefaultPageSize
	}
}

func runFetch(cmd *cobra.Command, out io.Writer, svc *dashboard.Service, opts fetchOptions) error {
	res, err := svc.Run(cmd.Context(), opts.query)
	if err != nil {
		return err
	}

	state, err := res.State.SetPageSize(opts.pageSize)
	if err != nil {
		return err
	}
	res.State = state.GotoPage(opts.page - 1)

	if opts.output == outputJSON {
		return renderJSON(out, res)
	}
	return renderText(out, res)
}
