package optimizecli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/labstack/gommon/color"
)

func renderTables(w io.Writer, cl *color.Color, res []*runResult) {
	for _, r := range res {
		renderTable(w, cl, r)
	}
	if len(res) > 1 {
		renderComparison(w, cl, res)
	}
}

func renderTable(w io.Writer, cl *color.Color, r *runResult) {
	fmt.Fprintf(w, "%s (%s)\n", cl.Blue(r.Name), r.Strategy)
	if !r.Result.Feasible {
		fmt.Fprintf(w, "%s\n\n", cl.Red("Infeasible: "+r.Result.Reason))
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TASK\tEMPLOYEE\tSTART\tEND\tCOST")
	for _, a := range r.Result.Assignments {
		fmt.Fprintf(tw, "%d\t%d\t%.2f\t%.2f\t%d\n", a.TaskID, a.EmployeeID, a.StartTime, a.EndTime, a.Cost)
	}
	tw.Flush()
	fmt.Fprintf(w, "Total cost: %s\n", cl.Green(r.Result.TotalCost))
	fmt.Fprintf(w, "Makespan: %s\n", cl.Green(fmt.Sprintf("%.2fh", r.Result.Makespan)))
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "EMPLOYEE\tHOURS")
	for _, s := range r.Result.EmployeeSummary {
		fmt.Fprintf(tw, "%d\t%.2f\n", s.EmployeeID, s.TotalAssignedHours)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func renderComparison(w io.Writer, cl *color.Color, res []*runResult) {
	fmt.Fprintln(w, cl.Blue("Comparison"))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tFEASIBLE\tTOTAL COST\tMAKESPAN")
	for _, r := range res {
		fmt.Fprintf(tw, "%s\t%t\t%d\t%.2f\n", r.Strategy, r.Result.Feasible, r.Result.TotalCost, r.Result.Makespan)
	}
	tw.Flush()
}
