package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/alexcesaro/statsd.v2"

	"github.com/moiji-mobile/sigdissect"
	"github.com/moiji-mobile/sigdissect/flow"
	"github.com/moiji-mobile/sigdissect/gryphon"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand(viper.New()).ExecuteContext(ctx); err != nil {
		log.WithError(err).Error("sigdissect failed")
		os.Exit(1)
	}
}

func newRootCommand(v *viper.Viper) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "sigdissect",
		Short:         "Dissect ANSI-41 MAP and Gryphon traffic",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, configFile, cmd.Flags())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Configuration file")
	flags.String("format", "text", "Output format, text or json")
	flags.String("log-level", "info", "Log level")
	flags.String("statsd-address", "", "Address of the statsd server")
	flags.String("statsd-prefix", "sigdissect", "Prefix for statsd messages")

	cmd.AddCommand(newCaptureCommand(v), newDecodeCommand(v))
	return cmd
}

// loadConfig layers flags over SIGDISSECT_* variables over the config file.
func loadConfig(v *viper.Viper, file string, flags *pflag.FlagSet) error {
	v.SetEnvPrefix("sigdissect")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return errors.Wrap(err, "bind flags")
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", file)
		}
	}

	level, err := log.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return err
	}
	log.SetLevel(level)

	switch v.GetString("format") {
	case "text", "json":
	default:
		return errors.Errorf("unknown format %q", v.GetString("format"))
	}
	return nil
}

func newStatsd(v *viper.Viper) *statsd.Client {
	opts := []statsd.Option{statsd.Prefix(v.GetString("statsd-prefix"))}
	if addr := v.GetString("statsd-address"); addr != "" {
		opts = append(opts, statsd.Address(addr))
	} else {
		opts = append(opts, statsd.Mute(true))
	}
	client, err := statsd.New(opts...)
	if err != nil {
		// The client stays usable and muted.
		log.WithError(err).Warn("Failed to create statsd client")
	}
	return client
}

func newCaptureCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Dissect packets from a pcap file or a live device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCapture(cmd.Context(), v, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.String("pcap-file", "", "Filename for PCAP")
	flags.String("pcap-device", "any", "Device to sniff")
	flags.String("pcap-filter", "sctp or tcp port 7000", "Filter for live sniffing")
	flags.Int("gryphon-port", gryphon.Port, "TCP port of Gryphon streams, 0 to disable")
	flags.Duration("expire-state", 10*time.Second, "Remove unanswered transactions after")
	flags.Duration("expire-pending", 2*time.Second, "Remove early answers after")
	flags.Duration("expire-ended", 10*time.Second, "Forget answered transactions after")
	return cmd
}

func runCapture(ctx context.Context, v *viper.Viper, out io.Writer) error {
	client := newStatsd(v)
	defer client.Close()

	tracker := flow.NewTracker(client)
	tracker.ExpireSessionDuration = v.GetDuration("expire-state")
	tracker.ExpirePendingDuration = v.GetDuration("expire-pending")
	tracker.ExpireEndedDuration = v.GetDuration("expire-ended")

	h := newFlowDataHandler(out, v.GetString("format"), client, sigdissect.NewDecoder(tracker))
	err := sigdissect.RunLoop(ctx, sigdissect.Capture{
		File:        v.GetString("pcap-file"),
		Device:      v.GetString("pcap-device"),
		Filter:      v.GetString("pcap-filter"),
		GryphonPort: v.GetInt("gryphon-port"),
	}, h)

	// Debugging in case of ran with a PCAP file
	for key := range tracker.Sessions {
		log.WithField("key", key).Debug("Transaction left open")
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
