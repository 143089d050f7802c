package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"shareholder_catalyst/pkg/core/config"
	"shareholder_catalyst/pkg/core/orchestrator"
	"shareholder_catalyst/pkg/core/store"
)

func main() {
	godotenv.Load()

	ticker := flag.String("ticker", "", "company ticker symbol (required)")
	configPath := flag.String("config", "config/catalyst.yaml", "path to config file")
	asJSON := flag.Bool("json", false, "emit the full result as JSON instead of a report")
	flag.Parse()

	if *ticker == "" {
		fmt.Fprintln(os.Stderr, "usage: catalyst -ticker AAPL [-config config/catalyst.yaml] [-json]")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("[FATAL] %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	o := orchestrator.New(ctx, cfg)
	defer store.Close()

	result := o.AnalyzeCompany(ctx, strings.ToUpper(*ticker))

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Printf("[FATAL] failed to encode result: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printReport(result)
}

func printReport(r *orchestrator.AnalysisResult) {
	banner := strings.Repeat("=", 70)

	fmt.Println(banner)
	fmt.Printf("  SHAREHOLDER CATALYST REPORT: %s (%s)\n", r.CompanyName, r.Ticker)
	fmt.Printf("  Run %s  |  Generated %s\n", r.RunID, r.GeneratedAt.Format("2006-01-02 15:04 MST"))
	if r.DemoMode {
		fmt.Println("  MODE: DEMO (no extraction credential or no filings found)")
	}
	fmt.Println(banner)

	fmt.Println("\n--- Key Metrics ---")
	fmt.Printf("  ROE:               %8.1f%%\n", r.Metrics.ROE)
	fmt.Printf("  ROIC:              %8.1f%%\n", r.Metrics.ROIC)
	fmt.Printf("  Operating Margin:  %8.1f%%\n", r.Metrics.OperatingMargin)
	fmt.Printf("  Net Margin:        %8.1f%%\n", r.Metrics.NetMargin)
	fmt.Printf("  Revenue CAGR:      %8.1f%%\n", r.Metrics.RevenueCAGR)
	fmt.Printf("  Debt/Equity:       %8.2f\n", r.Metrics.DebtToEquity)
	fmt.Printf("  EPS:               %8.2f\n", r.Metrics.EPS)

	fmt.Println("\n--- Peer Comparison ---")
	fmt.Printf("  Peer medians: ROE %.1f%%, ROIC %.1f%%, Op Margin %.1f%%\n",
		r.Peers.Medians.ROE, r.Peers.Medians.ROIC, r.Peers.Medians.OperatingMargin)
	fmt.Printf("  Estimated upside to peer median: %.1f%%\n", r.Peers.UpsidePct)

	if len(r.RedFlags) > 0 {
		fmt.Println("\n--- Governance Red Flags ---")
		for _, f := range r.RedFlags {
			fmt.Printf("  ! %s\n", f)
		}
	}

	fmt.Println("\n--- Financial Analysis ---")
	fmt.Println(r.FinancialAnalysis)

	fmt.Println("\n--- Governance Analysis ---")
	fmt.Println(r.GovernanceAnalysis)

	fmt.Println("\n--- Thesis ---")
	fmt.Println(r.Thesis)

	fmt.Println(banner)
}
