package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tanviarora/aurum/internal/dashboard"
	"github.com/tanviarora/aurum/internal/display"
	"github.com/tanviarora/aurum/internal/render"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the store overview statistics",
	Long: `Fetch the dashboard aggregates: catalog and order totals, the
sales-over-time series and the best sellers. The three requests run in
parallel; a section that fails reports its error while the others
still render.`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	client, _, _, err := buildClient()
	if err != nil {
		return err
	}

	snap := dashboard.Fetch(cmd.Context(), client)

	if snap.StatsErr == nil {
		s := snap.Stats
		fmt.Println("📊 Store overview")
		fmt.Printf("   Products: %d (%d active)\n", s.TotalProducts, s.ActiveProducts)
		fmt.Printf("   Orders:   %d (%d pending)\n", s.TotalOrders, s.PendingOrders)
		fmt.Printf("   Users:    %d\n", s.TotalUsers)
		fmt.Printf("   Revenue:  %s\n", display.INR(s.TotalRevenue))
	}

	if snap.SalesErr == nil && len(snap.Sales) > 0 {
		fmt.Println("\n📈 Sales by month")
		rows := make([][]string, len(snap.Sales))
		for i, pt := range snap.Sales {
			rows[i] = []string{pt.Period, fmt.Sprintf("%d", pt.Orders), display.INR(pt.Revenue)}
		}
		fmt.Print(render.Table([]string{"PERIOD", "ORDERS", "REVENUE"}, rows))
	}

	if snap.TopErr == nil && len(snap.TopProducts) > 0 {
		fmt.Println("\n🏆 Best sellers")
		rows := make([][]string, len(snap.TopProducts))
		for i, tp := range snap.TopProducts {
			rows[i] = []string{tp.Name, fmt.Sprintf("%d", tp.UnitsSold), display.INR(tp.Revenue)}
		}
		fmt.Print(render.Table([]string{"PRODUCT", "SOLD", "REVENUE"}, rows))
	}

	if msgs := snap.Errors(); len(msgs) > 0 {
		fmt.Println()
		for _, msg := range msgs {
			fmt.Println(render.ErrorBlock(msg))
		}
	}
	return nil
}
