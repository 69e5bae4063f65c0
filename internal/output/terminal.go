// Package output renders built request descriptors as JSON envelopes or as a
// colored terminal summary.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/dmagro/eth-rpc-builder/internal/rpc"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// DisableColors turns off ANSI colors for all output.
func DisableColors() {
	color.NoColor = true
}

// RenderTerminal writes a human-readable view of d: the method, then one
// table row per parameter with its inferred kind and a decoded value where
// one exists. wildcard is the sentinel in use, so it can be labeled.
func RenderTerminal(w io.Writer, d rpc.Descriptor, id int, wildcard string) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", bold(d.Method()), cyan(fmt.Sprintf("(id %d)", id)))
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════")

	params := d.Params()
	if len(params) == 0 {
		fmt.Fprintf(w, "  %s\n\n", yellow("no params"))
		return
	}

	headerFmt := color.New(color.FgCyan, color.Underline).SprintfFunc()
	tbl := table.New("#", "Kind", "Value", "Decoded").WithWriter(w)
	tbl.WithHeaderFormatter(headerFmt)

	for i, p := range params {
		kind, value, decoded := describeParam(p, wildcard)
		tbl.AddRow(i, kind, value, decoded)
	}

	tbl.Print()
	fmt.Fprintln(w)
}

// RenderErrorTerminal writes a validation failure.
func RenderErrorTerminal(w io.Writer, err error) {
	fmt.Fprintln(w)
	if verr, ok := asValidationError(err); ok {
		fmt.Fprintf(w, "  %s %s\n", red("✗"), bold(verr.Method))
		fmt.Fprintf(w, "    Field:  %s\n", verr.Field)
		fmt.Fprintf(w, "    Reason: %s\n\n", verr.Reason)
		return
	}
	fmt.Fprintf(w, "  %s %s\n\n", red("✗"), err.Error())
}

func describeParam(p interface{}, wildcard string) (kind, value, decoded string) {
	switch v := p.(type) {
	case nil:
		return "omitted", "null", ""
	case bool:
		return "bool", fmt.Sprintf("%t", v), ""
	case string:
		return describeString(v, wildcard)
	case rpc.CallMsg, rpc.LogFilter:
		data, err := json.Marshal(v)
		if err != nil {
			return "object", fmt.Sprintf("%v", v), ""
		}
		return "object", string(data), ""
	default:
		s := fmt.Sprintf("%v", v)
		return "integer", s, rpc.FormatNumber(s)
	}
}

func describeString(s, wildcard string) (kind, value, decoded string) {
	switch {
	case s == wildcard:
		return yellow("wildcard"), s, ""
	case rpc.IsBlockTag(s):
		return "block tag", s, ""
	}

	if !strings.HasPrefix(s, "0x") {
		return "string", s, ""
	}

	digits := len(s) - 2
	switch {
	case digits == 2*rpc.AddressLength:
		return "address", s, ""
	case digits == 2*rpc.HashLength:
		if n, err := rpc.ParseHexBigInt(s); err == nil && n.BitLen() <= 64 {
			return "hash/quantity", s, rpc.FormatNumber(n.String())
		}
		return "hash", s, ""
	case digits > 0 && digits <= 16 && (digits == 1 || s[2] != '0'):
		if n, err := rpc.ParseHexUint64(s); err == nil {
			return green("quantity"), s, rpc.FormatNumber(strconv.FormatUint(n, 10))
		}
	}
	return "data", s, fmt.Sprintf("%d bytes", digits/2)
}

func asValidationError(err error) (*rpc.ValidationError, bool) {
	var verr *rpc.ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
