package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/careerlens/internal/adapters/export"
	"github.com/okian/careerlens/internal/adapters/recordfile"
	service "github.com/okian/careerlens/internal/app"
	"github.com/okian/careerlens/internal/domain/types"
	"github.com/okian/careerlens/internal/domain/variant"
)

type fileFlags struct {
	domain string
	file   string
}

func (f *fileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.domain, "domain", "d", "", "Record domain: education or experience")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "YAML or JSON file holding the record list")
	_ = cmd.MarkFlagRequired("domain")
	_ = cmd.MarkFlagRequired("file")
}

// load resolves the domain and reads its records from the file.
func (f *fileFlags) load() (variant.Variant, []types.RawRecord, error) {
	v, ok := variant.Lookup(f.domain)
	if !ok {
		return variant.Variant{}, nil, fmt.Errorf("%w: %q", service.ErrUnknownDomain, f.domain)
	}
	raws, err := recordfile.Load(f.file, v.Collection)
	if err != nil {
		return variant.Variant{}, nil, err
	}
	return v, raws, nil
}

func newAnalyzeCmd() *cobra.Command {
	var (
		in   fileFlags
		xlsx string
		now  string
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyse a record file and print the report as JSON",
		Long: `Analyse one education or experience list and print the report.

Usage:
  careerlens analyze -d education -f educations.yaml
  careerlens analyze -d experience -f cv.json --xlsx report.xlsx --now 2024-06-30

The file holds either a bare list of records or a mapping with the list under
"educations" or "experiences".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			var extra []service.Option
			if now != "" {
				at, err := time.Parse(time.DateOnly, strings.TrimSpace(now))
				if err != nil {
					return fmt.Errorf("invalid --now %q, want YYYY-MM-DD: %w", now, err)
				}
				extra = append(extra, service.WithClock(func() time.Time { return at }))
			}

			v, raws, err := in.load()
			if err != nil {
				return err
			}
			_, svc, err := setup(ctx, cmd.ErrOrStderr(), extra...)
			if err != nil {
				return err
			}
			defer svc.Stop()

			report, err := svc.Analyze(ctx, string(v.Domain), raws)
			if err != nil {
				return err
			}
			if xlsx != "" {
				path, err := export.SaveReport(xlsx, report)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "workbook written to %s\n", path)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
	in.register(cmd)
	cmd.Flags().StringVar(&xlsx, "xlsx", "", "Also write the report to this Excel workbook")
	cmd.Flags().StringVar(&now, "now", "", "Reference date YYYY-MM-DD (default: today)")
	return cmd
}
