package output

import (
	"encoding/json"
	"io"

	"github.com/dmagro/eth-rpc-builder/internal/rpc"
)

// RenderJSON writes the JSON-RPC 2.0 envelope for d, indented, followed by a newline.
func RenderJSON(w io.Writer, d rpc.Descriptor, id int) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(d.Request(id))
}

// RenderErrorJSON writes a validation failure as {"error": {...}} so scripted
// callers can tell which field failed.
func RenderErrorJSON(w io.Writer, err error) error {
	body := map[string]interface{}{
		"message": err.Error(),
	}
	if verr, ok := asValidationError(err); ok {
		body["method"] = verr.Method
		body["field"] = verr.Field
		body["reason"] = verr.Reason
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]interface{}{"error": body})
}
