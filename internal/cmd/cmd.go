package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/clambin/froeling-monitor/internal/cmd/monitor"
	"github.com/clambin/froeling-monitor/internal/cmd/parameters"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFilename string
	RootCmd        = cobra.Command{
		Use:   "froeling-monitor",
		Short: "Publishes Fröling Connect heating systems to Home Assistant",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setJSONLogger(cmd, viper.GetBool("debug"))
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().StringVar(&configFilename, "config", "", "Configuration file")
	if err := addFlags(&RootCmd, viper.GetViper()); err != nil {
		panic("failed to add flags: " + err.Error())
	}

	RootCmd.AddCommand(&monitor.Cmd, &parameters.Cmd)
}

type argument struct {
	Default any
	Help    string
}

var arguments = map[string]argument{
	"debug":                         {Default: false, Help: "Log debug messages"},
	"froeling.username":             {Default: "", Help: "Fröling Connect username"},
	"froeling.password":             {Default: "", Help: "Fröling Connect password"},
	"froeling.language":             {Default: "en", Help: "Language of parameter names and labels"},
	"froeling.url":                  {Default: "https://connect-api.froeling.com", Help: "Fröling Connect API URL"},
	"froeling.sendChanges":          {Default: true, Help: "Send changes to numbers and selects to the Fröling API"},
	"poller.interval":               {Default: 30 * time.Second, Help: "Poller interval"},
	"poller.timeout":                {Default: 10 * time.Second, Help: "Maximum duration of a poll"},
	"poller.ratelimit":              {Default: 500 * time.Millisecond, Help: "Pause between two component requests"},
	"exporter.addr":                 {Default: ":9090", Help: "Address of Prometheus exporter"},
	"health.addr":                   {Default: ":8080", Help: "Address of /health endpoint"},
	"mqtt.broker":                   {Default: "tcp://localhost:1883", Help: "MQTT broker URL"},
	"mqtt.username":                 {Default: "", Help: "MQTT username"},
	"mqtt.password":                 {Default: "", Help: "MQTT password"},
	"mqtt.clientID":                 {Default: "froeling-monitor", Help: "MQTT client ID"},
	"homeassistant.discoveryPrefix": {Default: "homeassistant", Help: "Home Assistant discovery prefix"},
	"homeassistant.baseTopic":       {Default: "froeling", Help: "Prefix of state, command and availability topics"},
	"store.path":                    {Default: "froeling-monitor.db", Help: "Path of the session database"},
	"influxdb.url":                  {Default: "", Help: "InfluxDB URL. Leave blank to disable history"},
	"influxdb.token":                {Default: "", Help: "InfluxDB token"},
	"influxdb.org":                  {Default: "", Help: "InfluxDB organization"},
	"influxdb.bucket":               {Default: "", Help: "InfluxDB bucket"},
	"slack.token":                   {Default: "", Help: "Slack token. Leave blank to disable Slack notifications"},
}

func setDefaults(v *viper.Viper) {
	for key, arg := range arguments {
		v.SetDefault(key, arg.Default)
	}
}

// addFlags adds a persistent flag for each argument and binds it to its configuration key.
func addFlags(cmd *cobra.Command, v *viper.Viper) error {
	flags := cmd.PersistentFlags()
	for _, key := range slices.Sorted(maps.Keys(arguments)) {
		arg := arguments[key]
		switch value := arg.Default.(type) {
		case bool:
			flags.Bool(key, value, arg.Help)
		case string:
			flags.String(key, value, arg.Help)
		case time.Duration:
			flags.Duration(key, value, arg.Help)
		default:
			return fmt.Errorf("%s: unsupported type %T", key, value)
		}
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func initConfig() {
	if configFilename != "" {
		viper.SetConfigFile(configFilename)
	} else {
		viper.AddConfigPath("/etc/froeling-monitor/")
		viper.AddConfigPath("$HOME/.froeling-monitor")
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
	}

	setDefaults(viper.GetViper())

	viper.SetEnvPrefix("FROELING_MONITOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFilename != "" || !errors.As(err, &notFound) {
			slog.Error("failed to read config file", "err", err)
			os.Exit(1)
		}
	}
}

func setJSONLogger(cmd *cobra.Command, debug bool) {
	var opts slog.HandlerOptions
	if debug {
		opts.Level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &opts))
	slog.SetDefault(logger)
}
