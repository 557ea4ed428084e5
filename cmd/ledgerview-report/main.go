package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"ledgerview/internal/aggregate"
	"ledgerview/internal/backend"
	"ledgerview/internal/cli"
	"ledgerview/internal/core"
	"ledgerview/internal/log"
	"ledgerview/internal/present"
	"ledgerview/internal/report"
)

func main() {
	columns := flag.String("columns", "", "comma-separated table columns (default date,description,net,balance)")
	precision := flag.String("precision", "m", "aggregation precision: y, m or d")
	limit := flag.Int("limit", 0, "show at most this many table rows (0 for all)")
	flag.Parse()

	cli.LoadEnvFile()
	cfg, logger := cli.LoadAndValidateConfig()

	cols, err := present.ParseColumns(*columns)
	if err != nil {
		fatal(logger, "Invalid -columns", err)
	}
	p, err := core.ParsePrecision(*precision)
	if err != nil {
		fatal(logger, "Invalid -precision", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		fatal(logger, "Invalid backend configuration", err)
	}
	res, err := backend.NewFactory(logger.WithComponent(log.ComponentBackend).Slog()).CreateLoader(ctx, backendCfg)
	if err != nil {
		fatal(logger, "Failed to create loader", err)
	}
	if res.Cleanup != nil {
		defer res.Cleanup()
	}

	rep, err := report.NewBuilder(res.Loader, cfg.CurrentBalance, logger.WithComponent(log.ComponentReport).Slog()).Build(ctx)
	if err != nil {
		fatal(logger, "Failed to build report", err)
	}
	tbl, err := present.BuildTable(rep.Rows, cols)
	if err != nil {
		fatal(logger, "Failed to build table", err)
	}
	if *limit > 0 && len(tbl.Rows) > *limit {
		tbl.Rows = tbl.Rows[:*limit]
	}

	if err := render(os.Stdout, rep, tbl, rep.Buckets(p)); err != nil {
		fatal(logger, "Failed to write report", err)
	}
}

func render(out io.Writer, rep report.Report, tbl present.Table, buckets []aggregate.Bucket) error {
	fmt.Fprintf(out, "Current balance:  %s\n", core.FormatAmount(rep.Anchor))
	fmt.Fprintf(out, "Starting balance: %s\n\n", core.FormatAmount(rep.Start))

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(tbl.Headers(), "\t"))
	for _, r := range tbl.Rows {
		fmt.Fprintln(tw, strings.Join(r.Cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "PERIOD\tCREDIT\tDEBIT\tNET\t")
	for _, b := range buckets {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", b.Key,
			core.FormatAmount(b.Credit), core.FormatAmount(b.Debit), core.FormatAmount(b.Net))
	}
	return tw.Flush()
}

func fatal(logger *log.Logger, msg string, err error) {
	logger.Error(msg, log.FieldError, err)
	os.Exit(1)
}
