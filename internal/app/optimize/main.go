package optimize

import (
	"time"

	"github.com/airenas/workopt/internal/pkg/cmdapp"
	"github.com/airenas/workopt/internal/pkg/dataset"
	"github.com/airenas/workopt/internal/pkg/deliver"
	"github.com/airenas/workopt/internal/pkg/kafka"
	"github.com/airenas/workopt/internal/pkg/messages"
	"github.com/airenas/workopt/internal/pkg/mongo"
	"github.com/airenas/workopt/internal/pkg/rabbit"
	"github.com/heptiolabs/healthcheck"
	"github.com/spf13/cobra"
)

var appName = "Work Assignment Optimizer Service"

var rootCmd = &cobra.Command{
	Use:   "optimizerService",
	Short: appName,
	Long:  `HTTP server to assign tasks to employees by cost or makespan strategy`,
	Run:   run,
}

func init() {
	cmdapp.InitApplication(rootCmd)
	rootCmd.PersistentFlags().Int32P("port", "", 8000, "Default service port")
	cmdapp.Config.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
	cmdapp.Config.SetDefault("port", 8000)
	cmdapp.Config.SetDefault("messageServer.exchange", rabbit.DefaultExchange)
	cmdapp.Config.SetDefault("deliver.maxElapsed", 45*time.Second)
}

// Execute starts the server
func Execute() {
	cmdapp.Execute(rootCmd)
}

func run(cmd *cobra.Command, args []string) {
	cmdapp.Log.Info("Starting " + appName)
	data, err := newServiceData()
	cmdapp.CheckOrPanic(err, "Can't init metrics")
	data.health = healthcheck.NewHandler()

	if url := cmdapp.Config.GetString("mongo.url"); url != "" {
		sp, err := mongo.NewSessionProvider(url)
		cmdapp.CheckOrPanic(err, "Can't init mongo")
		defer sp.Close()
		data.health.AddLivenessCheck("mongo", healthcheck.Async(sp.Healthy, 10*time.Second))

		data.InputProvider, err = mongo.NewInputProvider(sp)
		cmdapp.CheckOrPanic(err, "Can't init input provider")
		data.RunSaver, err = mongo.NewRunSaver(sp)
		cmdapp.CheckOrPanic(err, "Can't init run saver")
		data.RunProvider, err = mongo.NewRunProvider(sp)
		cmdapp.CheckOrPanic(err, "Can't init run provider")
	} else if fn := cmdapp.Config.GetString("dataset.file"); fn != "" {
		data.InputProvider, err = dataset.NewFile(fn)
		cmdapp.CheckOrPanic(err, "Can't init dataset file")
	} else {
		cmdapp.Log.Warn("No mongo.url or dataset.file configured. Stored optimization is disabled")
	}

	var publishers []messages.Publisher
	if url := cmdapp.Config.GetString("messageServer.url"); url != "" {
		cp, err := rabbit.NewChannelProvider(url, cmdapp.Config.GetString("messageServer.user"),
			cmdapp.Config.GetString("messageServer.pass"))
		cmdapp.CheckOrPanic(err, "Can't init rabbit channel")
		defer cp.Close()
		data.health.AddLivenessCheck("rabbit", healthcheck.Async(cp.Healthy, 10*time.Second))
		publishers = append(publishers, rabbit.NewPublisher(cp, cmdapp.Config.GetString("messageServer.exchange")))
	}
	if brokers := cmdapp.Config.GetString("kafka.brokers"); brokers != "" {
		kw, err := kafka.NewWriter(brokers, cmdapp.Config.GetString("kafka.resultTopic"))
		cmdapp.CheckOrPanic(err, "Can't init kafka writer")
		defer kw.Close()
		publishers = append(publishers, kw)
	}
	data.Deliverer = deliver.NewDeliverer(
		deliver.NewExpBackOffProvider(cmdapp.Config.GetDuration("deliver.maxElapsed")), publishers...)
	defer data.Deliverer.Wait()

	data.Port = cmdapp.Config.GetInt("port")
	err = StartWebServer(data)
	cmdapp.CheckOrPanic(err, "Can't start web server")
}
