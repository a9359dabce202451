package api

import (
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vocdoni/sigmacompiler/log"
	"github.com/vocdoni/sigmacompiler/prooflog"
)

// proveRequest is the wire shape for POST /prove. Witness and Instance map
// each declared field name to its big-endian hex encoding (hex scalar, or
// curve-marshaled hex point).
type proveRequest struct {
	Protocol string            `json:"protocol"`
	Witness  map[string]string `json:"witness"`
	Instance map[string]string `json:"instance"`
}

type proveResponse struct {
	Proof  string `json:"proof"`
	ProofID string `json:"proofId,omitempty"`
}

// verifyRequest is the wire shape for POST /verify.
type verifyRequest struct {
	Protocol string            `json:"protocol"`
	Instance map[string]string `json:"instance"`
	Proof    string            `json:"proof"`
}

type verifyResponse struct {
	Valid bool `json:"valid"`
}

func (a *API) prove(w http.ResponseWriter, r *http.Request) {
	var req proveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrMalformedBody.WithErr(err).Write(w)
		return
	}

	entry, ok := a.registry[req.Protocol]
	if !ok {
		ErrUnknownProtocol.Withf("protocol %q", req.Protocol).Write(w)
		return
	}

	proof, err := entry.Prove(req.Witness, req.Instance)
	if err != nil {
		ErrProveFailed.WithErr(err).Write(w)
		return
	}

	resp := proveResponse{Proof: hex.EncodeToString(proof)}
	if a.proofLog != nil {
		instanceJSON, _ := json.Marshal(req.Instance)
		id, err := a.proofLog.Put(prooflog.Record{
			Protocol: req.Protocol,
			Instance: instanceJSON,
			Proof:    proof,
		})
		if err != nil && err != prooflog.ErrKeyAlreadyExists {
			log.Warnw("failed to log proof", "error", err)
		} else {
			resp.ProofID = id.String()
		}
	}

	httpWriteJSON(w, resp)
}

func (a *API) verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrMalformedBody.WithErr(err).Write(w)
		return
	}

	entry, ok := a.registry[req.Protocol]
	if !ok {
		ErrUnknownProtocol.Withf("protocol %q", req.Protocol).Write(w)
		return
	}

	proof, err := hex.DecodeString(req.Proof)
	if err != nil {
		ErrInvalidProofHex.WithErr(err).Write(w)
		return
	}

	if err := entry.Verify(req.Instance, proof); err != nil {
		httpWriteJSON(w, verifyResponse{Valid: false})
		return
	}

	httpWriteJSON(w, verifyResponse{Valid: true})
}

func (a *API) spec(w http.ResponseWriter, r *http.Request) {
	label := chi.URLParam(r, ProtocolURLParam)
	entry, ok := a.registry[label]
	if !ok {
		ErrUnknownProtocol.Withf("protocol %q", label).Write(w)
		return
	}
	doc, err := entry.Spec()
	if err != nil {
		ErrSpecRenderFailed.WithErr(err).Write(w)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(doc)); err != nil {
		log.Warnw("failed to write http response", "error", err)
	}
}

func (a *API) getProof(w http.ResponseWriter, r *http.Request) {
	if a.proofLog == nil {
		ErrProofNotFound.Write(w)
		return
	}
	idHex := chi.URLParam(r, ProofIDURLParam)
	raw, err := hex.DecodeString(idHex)
	if err != nil || len(raw) != 16 {
		ErrProofNotFound.WithErr(err).Write(w)
		return
	}
	var id prooflog.ID
	copy(id[:], raw)

	rec, err := a.proofLog.Get(id)
	if err != nil {
		ErrProofNotFound.WithErr(err).Write(w)
		return
	}
	httpWriteJSON(w, rec)
}
