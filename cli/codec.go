// Package cli contains the command line front end of the MQTT encoding primitives
package cli

import (
	"bytes"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jkiot/orus-mqtt/logger"
	"github.com/jkiot/orus-mqtt/mqtt"
	"github.com/jkiot/orus-mqtt/mqtt/pkg"
	"github.com/tada/catch"
	"github.com/tada/catch/pio"
	"github.com/tada/jsonstream"
)

const usage = `usage: %s [flags] <command> <arg>...

commands:
  encode <value>...       Variable Byte Integer encoding of each value
  decode <hex>...         value of each Variable Byte Integer encoding
  validate <hex>...       check the continuation bits of each byte sequence
  reason <hex byte>...    MQTT v5 reason code lookup
  type <value|NAME>...    MQTT packet type lookup
  header <hex>...         parse an MQTT fixed header and check its body

flags:
`

// result is the outcome of one command argument
type result struct {
	input string
	value string
	text  string
	err   error
}

func (r *result) MarshalToJSON(w io.Writer) {
	pio.WriteString(`{"input":`, w)
	jsonstream.WriteString(r.input, w)
	if r.err != nil {
		pio.WriteString(`,"error":`, w)
		jsonstream.WriteString(r.err.Error(), w)
	} else {
		if r.value != "" {
			pio.WriteString(`,"value":`, w)
			pio.WriteString(r.value, w)
		}
		pio.WriteString(`,"text":`, w)
		jsonstream.WriteString(r.text, w)
	}
	pio.WriteByte('}', w)
}

func (r *result) writeText(w io.Writer) {
	if r.err != nil {
		pio.WriteString(r.input+": error: "+r.err.Error()+"\n", w)
	} else {
		pio.WriteString(r.input+": "+r.text+"\n", w)
	}
}

type command func(arg string) *result

var commands = map[string]command{
	"encode":   encode,
	"decode":   decode,
	"validate": validate,
	"reason":   reason,
	"type":     packetType,
	"header":   header,
}

// Codec runs the command given in args and returns the process exit code; 0 when all arguments were
// processed successfully, 1 if at least one argument failed, and 2 for usage errors.
func Codec(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(args[0], flag.ExitOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), usage, args[0])
		fs.PrintDefaults()
	}

	var (
		printHelp bool
		debug     bool
		jsonOut   bool
		logLevel  string
	)
	fs.BoolVar(&printHelp, "h", false, "")
	fs.BoolVar(&printHelp, "help", false, "Print this help")
	fs.BoolVar(&debug, "D", false, "Enable Debug logging")
	fs.BoolVar(&debug, "debug", false, "Enable Debug logging")
	fs.StringVar(&logLevel, "loglevel", "error", "Log level, one of silent, error, info, or debug")
	fs.BoolVar(&jsonOut, "json", false, "Write one JSON object per argument")

	_ = fs.Parse(args[1:])
	if printHelp {
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}

	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		_, _ = io.WriteString(stderr, err.Error()+"\n")
		return 2
	}
	if debug {
		level = logger.Debug
	}
	lg := logger.New(level, stderr, stderr)

	cmdArgs := fs.Args()
	if len(cmdArgs) < 2 {
		fs.Usage()
		return 2
	}
	cmd, ok := commands[cmdArgs[0]]
	if !ok {
		_, _ = io.WriteString(stderr, "unknown command "+strconv.Quote(cmdArgs[0])+"\n")
		return 2
	}

	exitCode := 0
	err = catch.Do(func() {
		for _, arg := range cmdArgs[1:] {
			r := cmd(arg)
			if r.err != nil {
				lg.Debug(cmdArgs[0], arg, "failed:", r.err)
				exitCode = 1
			}
			if jsonOut {
				r.MarshalToJSON(stdout)
				pio.WriteByte('\n', stdout)
			} else {
				r.writeText(stdout)
			}
		}
	})
	if err != nil {
		lg.Error(err)
		return 1
	}
	return exitCode
}

// parseHex accepts hex digits optionally separated by spaces or colons, e.g. "80 80 01" or "80:80:01"
func parseHex(s string) ([]byte, error) {
	s = strings.NewReplacer(" ", "", ":", "").Replace(s)
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	return hex.DecodeString(s)
}

func hexText(bs []byte) string {
	return fmt.Sprintf("% x", bs)
}

func encode(arg string) *result {
	r := &result{input: arg}
	v, err := strconv.ParseUint(arg, 0, 32)
	if err != nil {
		r.err = err
		return r
	}
	bs, err := mqtt.EncodeVarInt(uint32(v))
	if err != nil {
		r.err = fmt.Errorf("value %d: %w", v, err)
		return r
	}
	r.text = hexText(bs)
	return r
}

func decode(arg string) *result {
	r := &result{input: arg}
	bs, err := parseHex(arg)
	if err == nil {
		var v uint32
		if v, err = mqtt.DecodeVarInt(bs); err == nil {
			r.value = strconv.FormatUint(uint64(v), 10)
			r.text = r.value
		}
	}
	r.err = err
	return r
}

func validate(arg string) *result {
	r := &result{input: arg}
	bs, err := parseHex(arg)
	if err != nil {
		r.err = err
		return r
	}
	r.text = "invalid"
	if mqtt.IsVarIntValid(bs) {
		r.text = "valid"
	}
	return r
}

func reason(arg string) *result {
	r := &result{input: arg}
	bs, err := parseHex(arg)
	if err == nil && len(bs) != 1 {
		err = errors.New("expected a single byte")
	}
	if err == nil {
		var rc mqtt.ReasonCode
		if rc, err = mqtt.ParseReasonCode(bs[0]); err == nil {
			r.value = strconv.Itoa(int(rc))
			r.text = rc.String()
		}
	}
	r.err = err
	return r
}

func packetType(arg string) *result {
	r := &result{input: arg}
	pt, ok := pkg.ParsePacketTypeName(arg)
	if !ok {
		v, err := strconv.ParseUint(arg, 0, 8)
		if err == nil {
			pt, err = pkg.ParsePacketType(byte(v))
		}
		if err != nil {
			r.err = err
			return r
		}
	}
	r.value = strconv.Itoa(int(pt))
	r.text = pt.String()
	return r
}

// header parses the fixed header and checks that the body is complete. The topic name
// of a PUBLISH is shown since it is the first field of its variable header.
func header(arg string) *result {
	r := &result{input: arg}
	bs, err := parseHex(arg)
	if err != nil {
		r.err = err
		return r
	}
	rd := mqtt.NewReader(bytes.NewReader(bs))
	h, err := pkg.ReadFixedHeader(rd)
	if err != nil {
		r.err = err
		return r
	}
	body, err := rd.ReadPacket(h.RemainingLength)
	if err != nil {
		r.err = fmt.Errorf("%s body truncated, %d of %d bytes: %w", h.Type, len(bs)-h.Size(), h.RemainingLength, err)
		return r
	}
	text := h.String()
	if h.Type == pkg.Publish {
		var topic string
		if topic, err = body.ReadString(); err != nil {
			r.err = fmt.Errorf("%s topic name: %w", h.Type, err)
			return r
		}
		text += " topic " + strconv.Quote(topic)
	}
	rest, err := body.ReadRemainingBytes()
	if err != nil {
		r.err = err
		return r
	}
	if len(rest) > 0 {
		text += " body: " + hexText(rest)
	}
	buf := &bytes.Buffer{}
	h.MarshalToJSON(buf)
	r.value = buf.String()
	r.text = text
	return r
}
