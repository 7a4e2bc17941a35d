package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/kwire-io/kwire/pkg/wire"
)

// wiredump decodes hex-encoded protocol fragments for debugging.
// Bytes come from the arguments (whitespace and "0x" prefixes are
// tolerated) or from stdin when no argument is given.

var codecs = map[string]wire.Type{
	"int8":           wire.Int8{},
	"int16":          wire.Int16{},
	"int32":          wire.Int32{},
	"int64":          wire.Int64{},
	"boolean":        wire.Boolean{},
	"float64":        wire.Float64{},
	"uuid":           wire.UUID{},
	"varint":         wire.VarInt{},
	"uvarint":        wire.UnsignedVarInt{},
	"varlong":        wire.VarLong{},
	"string":         wire.NewString(),
	"compact-string": wire.NewCompactString(),
	"bytes":          wire.NewBytes(),
	"compact-bytes":  wire.NewCompactBytes(),
	"tagged":         wire.TaggedField{},
	"tagged-fields":  wire.TaggedFields{},
}

func main() {
	typeName := flag.StringP("type", "t", "bytes", "codec to decode with")
	repeat := flag.BoolP("repeat", "r", false, "decode values until the buffer is exhausted")
	flag.Parse()

	codec, ok := codecs[*typeName]
	if !ok {
		fmt.Fprintf(os.Stderr, "wiredump: unknown type %q\n", *typeName)
		os.Exit(2)
	}

	raw, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "wiredump: %v\n", err)
		os.Exit(1)
	}

	c := wire.NewCursor(raw)
	for {
		val, err := codec.Decode(c)
		if err != nil {
			fmt.Fprintf(os.Stderr, "wiredump: at offset %d: %v\n", c.Pos(), err)
			os.Exit(1)
		}
		fmt.Printf("%s\t%s\n", *typeName, codec.Describe(val))
		if !*repeat || c.Remaining() == 0 {
			break
		}
	}
	if c.Remaining() > 0 {
		fmt.Fprintf(os.Stderr, "wiredump: %d trailing bytes unread\n", c.Remaining())
	}
}

func readInput(args []string) ([]byte, error) {
	var text string
	if len(args) > 0 {
		text = strings.Join(args, "")
	} else {
		sc := bufio.NewScanner(os.Stdin)
		var b strings.Builder
		for sc.Scan() {
			b.WriteString(sc.Text())
		}
		if err := sc.Err(); err != nil {
			return nil, err
		}
		text = b.String()
	}
	text = strings.NewReplacer(" ", "", "\t", "", "0x", "", ",", "").Replace(text)
	raw, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("bad hex input: %w", err)
	}
	return raw, nil
}
