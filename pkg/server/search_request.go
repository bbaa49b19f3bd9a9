package server

import (
	"net/http"

	"github.com/gorilla/schema"

	"github.com/gardet/listing-finder/pkg/types"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// QueryFromRequest hydrates the query state from the URL parameters.
// Unknown keys are ignored and fields that fail conversion stay at their
// zero value: bad input means "no constraint", never an error. A forced
// transaction kind from the hosting endpoint overrides whatever the URL
// carried.
func QueryFromRequest(r *http.Request, forcedOperation string) *types.Query {
	q := &types.Query{}
	// conversion errors on single fields are deliberately not surfaced
	_ = decoder.Decode(q, r.URL.Query())
	if forcedOperation != "" {
		q.Operacion = forcedOperation
	}
	q.Sanitize()
	return q
}
