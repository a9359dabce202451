// Command sigmactl is the CLI entry point for the Σ-protocol compiler: it
// can prove, verify, and render the spec of a registered protocol from the
// command line, or serve the HTTP API.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/vocdoni/sigmacompiler/crypto/ecc"
	"github.com/vocdoni/sigmacompiler/crypto/ecc/curves"
	"github.com/vocdoni/sigmacompiler/log"
	"github.com/vocdoni/sigmacompiler/prooflog"
	"github.com/vocdoni/sigmacompiler/protocols"

	"github.com/vocdoni/sigmacompiler/api"

	"go.vocdoni.io/dvote/db"
	"go.vocdoni.io/dvote/db/metadb"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		serveCmd(os.Args[2:])
	case "prove":
		proveCmd(os.Args[2:])
	case "verify":
		verifyCmd(os.Args[2:])
	case "spec":
		specCmd(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: sigmactl <serve|prove|verify|spec> [flags]")
}

func curveFromFlag(name string) ecc.Point {
	return curves.New(name)
}

func serveCmd(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	host := fs.String("host", "0.0.0.0", "listen host")
	port := fs.Int("port", 8080, "listen port")
	curveName := fs.String("curve", "bn254", "curve: bn254, bjj_gnark, bjj_iden3")
	dbPath := fs.String("dbpath", "", "proof log database path; empty disables logging")
	logLevel := fs.String("loglevel", "info", "log level: debug, info, warn, error")
	_ = fs.Parse(args)

	if err := log.Init(*logLevel, "stdout", nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var proofLog *prooflog.Log
	if *dbPath != "" {
		database, err := metadb.New(db.TypePebble, *dbPath)
		if err != nil {
			log.Fatalf("failed to open proof log database: %v", err)
		}
		proofLog = prooflog.New(database)
	}

	_, err := api.New(&api.APIConfig{
		Host:     *host,
		Port:     *port,
		Curve:    curveFromFlag(*curveName),
		ProofLog: proofLog,
	})
	if err != nil {
		log.Fatalf("failed to start API: %v", err)
	}

	select {}
}

func proveCmd(args []string) {
	fs := flag.NewFlagSet("prove", flag.ExitOnError)
	protocol := fs.String("protocol", "", "protocol label")
	curveName := fs.String("curve", "bn254", "curve: bn254, bjj_gnark, bjj_iden3")
	witness := fs.String("witness", "", "witness as field=hex,field=hex,...")
	instance := fs.String("instance", "", "instance as field=hex,field=hex,...")
	logLevel := fs.String("loglevel", "info", "log level: debug, info, warn, error")
	_ = fs.Parse(args)

	if err := log.Init(*logLevel, "stderr", nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	entry, ok := protocols.Registry(curveFromFlag(*curveName))[*protocol]
	if !ok {
		log.Fatalf("unknown protocol %q", *protocol)
	}

	proof, err := entry.Prove(parseFieldMap(*witness), parseFieldMap(*instance))
	if err != nil {
		log.Fatalf("prove failed: %v", err)
	}

	fmt.Println(hex.EncodeToString(proof))
}

func verifyCmd(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	protocol := fs.String("protocol", "", "protocol label")
	curveName := fs.String("curve", "bn254", "curve: bn254, bjj_gnark, bjj_iden3")
	instance := fs.String("instance", "", "instance as field=hex,field=hex,...")
	proofHex := fs.String("proof", "", "proof as hex")
	logLevel := fs.String("loglevel", "info", "log level: debug, info, warn, error")
	_ = fs.Parse(args)

	if err := log.Init(*logLevel, "stderr", nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	entry, ok := protocols.Registry(curveFromFlag(*curveName))[*protocol]
	if !ok {
		log.Fatalf("unknown protocol %q", *protocol)
	}

	proof, err := hex.DecodeString(*proofHex)
	if err != nil {
		log.Fatalf("invalid proof hex: %v", err)
	}

	if err := entry.Verify(parseFieldMap(*instance), proof); err != nil {
		fmt.Println("invalid:", err)
		os.Exit(1)
	}
	fmt.Println("valid")
}

func specCmd(args []string) {
	fs := flag.NewFlagSet("spec", flag.ExitOnError)
	protocol := fs.String("protocol", "", "protocol label")
	curveName := fs.String("curve", "bn254", "curve: bn254, bjj_gnark, bjj_iden3")
	logLevel := fs.String("loglevel", "info", "log level: debug, info, warn, error")
	_ = fs.Parse(args)

	if err := log.Init(*logLevel, "stderr", nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	entry, ok := protocols.Registry(curveFromFlag(*curveName))[*protocol]
	if !ok {
		log.Fatalf("unknown protocol %q", *protocol)
	}

	doc, err := entry.Spec()
	if err != nil {
		log.Fatalf("spec render failed: %v", err)
	}
	fmt.Println(doc)
}

// parseFieldMap parses a "field=hex,field=hex" string into a map.
func parseFieldMap(s string) map[string]string {
	out := map[string]string{}
	if s == "" {
		return out
	}
	for _, part := range strings.Split(s, ",") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		out[kv[0]] = kv[1]
	}
	return out
}
