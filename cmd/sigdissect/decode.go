package main

import (
	"encoding/hex"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/moiji-mobile/sigdissect/ansimap"
	"github.com/moiji-mobile/sigdissect/gryphon"
)

func newDecodeCommand(v *viper.Viper) *cobra.Command {
	var protocol string

	cmd := &cobra.Command{
		Use:   "decode HEX...",
		Short: "Dissect hex encoded messages",
		Long:  "Dissect hex encoded ANSI TCAP messages or Gryphon frames given as arguments, one message per argument.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd.OutOrStdout(), v.GetString("format"), protocol, args)
		},
	}
	cmd.Flags().StringVarP(&protocol, "protocol", "p", "ansi", "Protocol of the messages, ansi or gryphon")
	return cmd
}

func runDecode(out io.Writer, format, protocol string, args []string) error {
	h := newFlowDataHandler(out, format, nil, nil)

	for _, arg := range args {
		buf, err := hex.DecodeString(strings.Join(strings.Fields(arg), ""))
		if err != nil {
			return errors.Wrapf(err, "decode %q", arg)
		}

		r := record{Protocol: protocol}
		switch protocol {
		case "ansi":
			m, err := ansimap.Dissect(buf, ansimap.Options{})
			r.Tree = m.Tree
			if err != nil {
				r.Error = err.Error()
			}
		case "gryphon":
			t, _, err := gryphon.Dissect(buf)
			r.Tree = t
			if err != nil {
				r.Error = err.Error()
			}
		default:
			return errors.Errorf("unknown protocol %q", protocol)
		}
		h.emit(r)
	}
	return nil
}
