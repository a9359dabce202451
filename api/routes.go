package api

const (
	// PingEndpoint is the endpoint for checking the API status.
	PingEndpoint = "/ping"

	// ProveEndpoint runs a protocol's prover over a witness and instance,
	// both supplied as field-name-to-hex maps, and returns the proof.
	ProveEndpoint = "/prove"

	// VerifyEndpoint checks a proof against an instance for a protocol.
	VerifyEndpoint = "/verify"

	// ProtocolURLParam names the {protocol} path parameter.
	ProtocolURLParam = "protocol"
	// SpecEndpoint renders a protocol's f/ψ equations as Markdown.
	SpecEndpoint = "/spec/{" + ProtocolURLParam + "}"

	// ProofIDURLParam names the {id} path parameter.
	ProofIDURLParam = "id"
	// ProofEndpoint retrieves a previously logged proof by id.
	ProofEndpoint = "/proofs/{" + ProofIDURLParam + "}"
)
