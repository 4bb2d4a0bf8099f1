package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/attribution/internal/contract"
	"github.com/huangsam/attribution/schema"
)

// printReport dispatches a report to JSON, CSV or table output.
// The CSV and table writers receive the already opened writer.
func printReport(cfg *contract.Config, what string, data any, writeCSV, writeTable func(io.Writer) error) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, data)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, writeCSV, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return parquetUnsupported(what)
	default:
		return writeWithFile(cfg.OutputFile, writeTable, "Wrote table")
	}
	return nil
}

// PrintStats outputs the overall journey statistics.
func PrintStats(stats schema.Stats, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)
	rows := [][]string{
		{"total_conversions", fmt.Sprintf(intFmt, stats.TotalConversions)},
		{"total_revenue", fmtFloat(stats.TotalRevenue)},
		{"avg_touchpoints", fmt.Sprintf("%.1f", stats.AvgTouchpoints)},
		{"avg_time_to_conversion", fmt.Sprintf("%.1f", stats.AvgTimeToConversion)},
		{"total_marketing_spend", fmtFloat(stats.TotalMarketingSpend)},
		{"overall_roas", fmtFloat(stats.OverallROAS)},
	}

	return printReport(cfg, "stats", stats,
		func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"metric", "value"}, func(cw *csv.Writer) error {
				return cw.WriteAll(rows)
			})
		},
		func(w io.Writer) error {
			return renderTable(w, []string{"Metric", "Value"}, rows)
		})
}

// PrintChannelMetrics outputs interaction based metrics per channel.
func PrintChannelMetrics(metrics []schema.ChannelMetrics, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)
	channelWidth := GetMaxTableTextWidth(cfg, 80)

	return printReport(cfg, "channel metrics", metrics,
		func(w io.Writer) error {
			header := []string{"channel", "conversion_rate", "cpa", "total_interactions", "conversions", "revenue", "spend"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, m := range metrics {
					if err := cw.Write([]string{
						m.Channel,
						fmtFloat(m.ConversionRate),
						fmtFloat(m.CPA),
						fmt.Sprintf(intFmt, m.TotalInteractions),
						fmt.Sprintf(intFmt, m.Conversions),
						fmtFloat(m.Revenue),
						fmtFloat(m.Spend),
					}); err != nil {
						return err
					}
				}
				return nil
			})
		},
		func(w io.Writer) error {
			data := make([][]string, 0, len(metrics))
			for i, m := range metrics {
				data = append(data, []string{
					strconv.Itoa(i + 1),
					contract.TruncateText(m.Channel, channelWidth),
					fmtFloat(m.ConversionRate),
					fmtFloat(m.CPA),
					fmt.Sprintf(intFmt, m.TotalInteractions),
					fmt.Sprintf(intFmt, m.Conversions),
					fmtFloat(m.Revenue),
					fmtFloat(m.Spend),
				})
			}
			return renderTable(w, []string{"Rank", "Channel", "Conv Rate %", "CPA", "Interactions", "Conversions", "Revenue", "Spend"}, data)
		})
}

// PrintRevenueTrends outputs the daily revenue series.
func PrintRevenueTrends(trends []schema.RevenueTrend, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)
	rows := make([][]string, 0, len(trends))
	for _, t := range trends {
		rows = append(rows, []string{
			t.Date,
			fmtFloat(t.Revenue),
			fmt.Sprintf(intFmt, t.Conversions),
			fmtFloat(t.Spend),
			fmtFloat(t.CumulativeRevenue),
			fmtFloat(t.ROAS),
		})
	}

	return printReport(cfg, "revenue trends", trends,
		func(w io.Writer) error {
			header := []string{"date", "revenue", "conversions", "spend", "cumulative_revenue", "roas"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				return cw.WriteAll(rows)
			})
		},
		func(w io.Writer) error {
			if err := renderTable(w, []string{"Date", "Revenue", "Conversions", "Spend", "Cumulative", "ROAS"}, rows); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Showing %d days with conversions\n", len(trends))
			return err
		})
}

// PrintChannelSynergy outputs channel co-occurrence counts.
func PrintChannelSynergy(pairs []schema.ChannelSynergy, cfg *contract.Config) error {
	_, intFmt := createFormatters(cfg.Precision)
	channelWidth := GetMaxTableTextWidth(cfg, 30) / 2

	return printReport(cfg, "channel synergy", pairs,
		func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"channel1", "channel2", "co_occurrences"}, func(cw *csv.Writer) error {
				for _, p := range pairs {
					if err := cw.Write([]string{p.Channel1, p.Channel2, fmt.Sprintf(intFmt, p.CoOccurrences)}); err != nil {
						return err
					}
				}
				return nil
			})
		},
		func(w io.Writer) error {
			data := make([][]string, 0, len(pairs))
			for _, p := range pairs {
				data = append(data, []string{
					contract.TruncateText(p.Channel1, channelWidth),
					contract.TruncateText(p.Channel2, channelWidth),
					fmt.Sprintf(intFmt, p.CoOccurrences),
				})
			}
			return renderTable(w, []string{"Channel 1", "Channel 2", "Journeys"}, data)
		})
}

// PrintFunnel outputs journeys grouped by touchpoint count.
func PrintFunnel(stages []schema.FunnelStage, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)
	rows := make([][]string, 0, len(stages))
	for _, s := range stages {
		rows = append(rows, []string{
			fmt.Sprintf(intFmt, s.TouchpointCount),
			fmt.Sprintf(intFmt, s.Journeys),
			fmtFloat(s.Revenue),
			fmtFloat(s.AvgConversionValue),
		})
	}

	return printReport(cfg, "funnel", stages,
		func(w io.Writer) error {
			header := []string{"touchpoint_count", "journeys", "revenue", "avg_conversion_value"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				return cw.WriteAll(rows)
			})
		},
		func(w io.Writer) error {
			return renderTable(w, []string{"Touchpoints", "Journeys", "Revenue", "Avg Value"}, rows)
		})
}

// PrintTopPerformers outputs the best and worst channels by linear revenue.
func PrintTopPerformers(performers schema.TopPerformers, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	channelWidth := GetMaxTableTextWidth(cfg, 45)

	var rows [][]string
	addGroup := func(group string, list []schema.Performer, display bool) {
		for i, p := range list {
			channel := p.Channel
			if display {
				channel = contract.TruncateText(channel, channelWidth)
			}
			rows = append(rows, []string{group, strconv.Itoa(i + 1), channel, fmtFloat(p.Revenue), fmtFloat(p.ROAS)})
		}
	}

	return printReport(cfg, "top performers", performers,
		func(w io.Writer) error {
			rows = rows[:0]
			addGroup("top", performers.Top, false)
			addGroup("bottom", performers.Bottom, false)
			return writeCSVWithHeader(w, []string{"group", "rank", "channel", "revenue", "roas"}, func(cw *csv.Writer) error {
				return cw.WriteAll(rows)
			})
		},
		func(w io.Writer) error {
			rows = rows[:0]
			addGroup("Top", performers.Top, true)
			addGroup("Bottom", performers.Bottom, true)
			return renderTable(w, []string{"Group", "Rank", "Channel", "Revenue", "ROAS"}, rows)
		})
}
