//nolint:lll
package api

import (
	"fmt"
	"net/http"
)

// The custom Error type satisfies the error interface.
// Error() returns a human-readable description of the error.
//
// Error codes in the 40001-49999 range are the user's fault,
// and they return HTTP Status 400 or 404 (or even 204), whatever is most appropriate.
//
// Error codes 50001-59999 are the server's fault
// and they return HTTP Status 500 or 503, or something else if appropriate.
//
// NEVER change any of the current error codes, only append new errors after the current last 4XXX or 5XXX.
// If you notice there's a gap, don't fill it in, that code was used in the past for some error and
// shouldn't be reused.
var (
	ErrMalformedBody      = Error{Code: 40001, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("malformed JSON body")}
	ErrUnknownProtocol    = Error{Code: 40002, HTTPstatus: http.StatusNotFound, Err: fmt.Errorf("unknown protocol")}
	ErrInvalidWitness     = Error{Code: 40003, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("invalid witness encoding")}
	ErrInvalidInstance    = Error{Code: 40004, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("invalid instance encoding")}
	ErrInvalidProofHex    = Error{Code: 40005, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("invalid proof encoding")}
	ErrProofRejected      = Error{Code: 40006, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("proof verification failed")}
	ErrProofNotFound      = Error{Code: 40007, HTTPstatus: http.StatusNotFound, Err: fmt.Errorf("proof not found")}

	ErrMarshalingServerJSONFailed = Error{Code: 50001, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("marshaling (server-side) JSON failed")}
	ErrProveFailed                = Error{Code: 50002, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("proving failed")}
	ErrSpecRenderFailed           = Error{Code: 50003, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("spec rendering failed")}
	ErrProofLogFailed             = Error{Code: 50004, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("proof log write failed")}
)
