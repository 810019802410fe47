package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/gopacket"
	"github.com/spf13/viper"
	"gopkg.in/alexcesaro/statsd.v2"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/moiji-mobile/sigdissect"
)

const (
	queryHex = "e219c7040000002ae811e90fcf0105d102090df206890401020304"
	textHex  = "2000400000030600 6f6b0000"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand(viper.New())
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDecodeANSI(t *testing.T) {
	out, err := execute(t, "decode", queryHex)
	assert.NilError(t, err)
	assert.Check(t, is.Contains(out, "Query With Permission"))
	assert.Check(t, is.Contains(out, "Invoke (Last) - Registration Notification"))
	assert.Check(t, is.Contains(out, "Missing Mandatory Parameter"))
}

func TestDecodeGryphonJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "decode", "-p", "gryphon", textHex)
	assert.NilError(t, err)

	var r record
	assert.NilError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, r.Protocol, "gryphon")
	assert.Assert(t, r.Tree != nil)
	assert.Assert(t, r.Tree.Root.Find("Text: ok") != nil)
	assert.Equal(t, r.Error, "")
}

func TestDecodeTruncated(t *testing.T) {
	out, err := execute(t, "decode", queryHex[:20])
	assert.NilError(t, err)
	assert.Check(t, is.Contains(out, "Malformed Packet"))
	assert.Check(t, is.Contains(out, "error: "))
}

func TestDecodeBadInput(t *testing.T) {
	_, err := execute(t, "decode", "zz")
	assert.ErrorContains(t, err, "decode")

	_, err = execute(t, "decode", "-p", "sua", queryHex)
	assert.ErrorContains(t, err, "unknown protocol")
}

func TestFormatFromEnvironment(t *testing.T) {
	t.Setenv("SIGDISSECT_FORMAT", "yaml")
	_, err := execute(t, "decode", queryHex)
	assert.ErrorContains(t, err, "unknown format")

	t.Setenv("SIGDISSECT_FORMAT", "json")
	out, err := execute(t, "decode", queryHex)
	assert.NilError(t, err)
	assert.Check(t, strings.HasPrefix(out, "{"))
}

func TestHandlerOnData(t *testing.T) {
	client, _ := statsd.New(statsd.Mute(true))
	var out bytes.Buffer
	h := newFlowDataHandler(&out, "text", client, sigdissect.NewDecoder(nil))

	begin := []byte{0x62, 0x06, 0x48, 0x04, 0x00, 0x00, 0x00, 0x2a}
	h.OnData(sigdissect.SCCPAddress{Number: "hlr", Ssn: 6}, sigdissect.SCCPAddress{Number: "vlr", Ssn: 7}, begin, nil)
	assert.Check(t, is.Contains(out.String(), "itu-tcap BEGIN OTID(0000002a) DTID() vlr->hlr STATES(1)"))

	out.Reset()
	h.OnData(sigdissect.SCCPAddress{}, sigdissect.SCCPAddress{}, []byte{0xe2, 0x10}, nil)
	assert.Check(t, is.Contains(out.String(), "error: ANSI TCAP"))

	h.ParseError([]byte{1}, "boom")
	h.AfterOnePacket()
}

func TestHandlerOnGryphon(t *testing.T) {
	client, _ := statsd.New(statsd.Mute(true))
	var out bytes.Buffer
	h := newFlowDataHandler(&out, "json", client, sigdissect.NewDecoder(nil))

	h.OnGryphon([]byte{0x20, 0, 0x40, 0, 0, 3, 6, 0, 'o', 'k', 0, 0}, gopacket.Flow{}, gopacket.Flow{})
	var r record
	assert.NilError(t, json.Unmarshal(out.Bytes(), &r))
	assert.Equal(t, r.Protocol, "gryphon")
	assert.Check(t, is.Contains(r.Summary, "Text"))
}
