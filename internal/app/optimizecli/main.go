package optimizecli

import (
	"github.com/airenas/workopt/internal/pkg/cmdapp"
	"github.com/airenas/workopt/internal/pkg/mongo"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Assigns tasks to employees",
	Long: `Reads employees and tasks from a YAML or JSON file and assigns tasks
by cost (cheapest employees) or makespan (earliest completion) strategy`,
	Run: func(cmd *cobra.Command, args []string) {
		err := runOptimize(cmd.OutOrStdout(), &prms)
		cmdapp.CheckOrPanic(err, "")
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Stores employees and tasks to mongo db",
	Long:  `Validates the input file and upserts employees and tasks to mongo db (mongo.url)`,
	Run: func(cmd *cobra.Command, args []string) {
		err := seed(prms.input)
		cmdapp.CheckOrPanic(err, "Can't seed")
	},
}

type params struct {
	strategy string
	input    string
	output   string
	noColor  bool
}

var prms params

func init() {
	cmdapp.InitApplication(rootCmd)
	rootCmd.PersistentFlags().StringVarP(&prms.input, "input", "i", "", "Input file with employees and tasks (.yaml, .yml or .json)")
	rootCmd.Flags().StringVarP(&prms.strategy, "strategy", "s", allStrategies, "Strategy: cost, makespan or all")
	rootCmd.Flags().StringVarP(&prms.output, "output", "o", outputTable, "Output format: table or json")
	rootCmd.Flags().BoolVarP(&prms.noColor, "no-color", "", false, "Disable colored output")
	rootCmd.AddCommand(seedCmd)
}

// Execute runs the command
func Execute() {
	cmdapp.Execute(rootCmd)
}

func seed(file string) error {
	in, err := readInput(file)
	if err != nil {
		return err
	}
	url := cmdapp.Config.GetString("mongo.url")
	if url == "" {
		return errors.New("No mongo.url provided")
	}
	sp, err := mongo.NewSessionProvider(url)
	if err != nil {
		return errors.Wrap(err, "Can't init mongo")
	}
	defer sp.Close()
	saver, err := mongo.NewInputSaver(sp)
	if err != nil {
		return err
	}
	err = saver.Save(in.Employees, in.Tasks)
	if err != nil {
		return err
	}
	cmdapp.Log.Infof("Seeded %d employees, %d tasks", len(in.Employees), len(in.Tasks))
	return nil
}
