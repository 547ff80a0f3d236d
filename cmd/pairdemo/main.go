// Command pairdemo computes a Tate pairing on one of the built-in toy
// curves (or a curve described by a TOML file) and demonstrates
// bilinearity: e(a*G1, b*G2) against e(G1, G2)^(a*b).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/moonpair/tinypairing/config"
	"github.com/moonpair/tinypairing/curves"
	"github.com/moonpair/tinypairing/logger"
)

func main() {
	curveName := flag.String("curve", "tinyjubjub", "built-in curve name (tinyjubjub or bls6_6)")
	configFile := flag.String("config", "", "path to a TOML curve descriptor (overrides -curve)")
	a := flag.Uint64("a", 2, "scalar multiplier for G1")
	b := flag.Uint64("b", 3, "scalar multiplier for G2")
	trace := flag.Bool("trace", false, "log every Miller-loop step")
	flag.Parse()

	if *trace {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := logger.Logger()

	var (
		ins *curves.Instance
		err error
	)
	if *configFile != "" {
		ins, err = config.Build(*configFile)
	} else {
		ins, err = curves.Named(*curveName)
	}
	if err != nil {
		log.Error().Err(err).Msg("curve setup failed")
		os.Exit(1)
	}

	params := ins.BaseCurve.Params()
	log.Info().
		Str("curve", ins.Name).
		Uint64("q", params.Q).
		Uint64("r", params.R).
		Uint64("k", params.K).
		Msg("curve ready")

	p := ins.BaseCurve.ScalarMul(*a, ins.G1)
	q := ins.ExtCurve.ScalarMul(*b, ins.G2)

	lhs, err := ins.Pair(p, q)
	if err != nil {
		log.Error().Err(err).Msg("pairing failed")
		os.Exit(1)
	}
	base, err := ins.Pair(ins.G1, ins.G2)
	if err != nil {
		log.Error().Err(err).Msg("pairing failed")
		os.Exit(1)
	}
	// Reduce each scalar before multiplying so large inputs cannot
	// wrap around uint64.
	r := params.R
	rhs := ins.Ext.Exp(base, (*a%r)*(*b%r)%r)

	fmt.Printf("e(%d*G1, %d*G2)   = %s\n", *a, *b, ins.Ext.Format(lhs))
	fmt.Printf("e(G1, G2)^(%d*%d) = %s\n", *a, *b, ins.Ext.Format(rhs))
	if ins.Ext.Equal(lhs, rhs) {
		fmt.Println("bilinearity holds")
	} else {
		fmt.Println("bilinearity VIOLATED")
		os.Exit(1)
	}
}
