// Command flowmap reads an AIGER ASCII network, maps it onto K-input LUTs
// with the FlowMap algorithm, and writes the result as RTLIL text.
//
// Usage: flowmap <aiger-in> <rtlil-out>
package main

import (
	"os"

	"github.com/rs/zerolog"

	flowmap "github.com/flowmap-go/flowmap"
	"github.com/flowmap-go/flowmap/aiger"
	"github.com/flowmap-go/flowmap/rtlil"
)

// k is the LUT input count the mapper targets. The specification fixes
// this as a compile-time constant rather than a flag; 6 matches the LUT
// size of the FPGA families FlowMap was originally built for.
const k = 6

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if len(os.Args) != 3 {
		log.Error().Str("usage", "flowmap <aiger-in> <rtlil-out>").Msg("wrong number of arguments")
		os.Exit(1)
	}

	if err := run(log, os.Args[1], os.Args[2]); err != nil {
		log.Error().Err(err).Msg("mapping failed")
		os.Exit(1)
	}
}

func run(log zerolog.Logger, inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	reader, err := aiger.NewReader(in)
	if err != nil {
		return err
	}

	net, err := aiger.BuildNetwork(reader)
	if err != nil {
		return err
	}
	log.Info().Int("nodes", net.NodeCount()).Msg("parsed AIGER network")

	luts := flowmap.Map(net, k)
	log.Info().Int("luts", len(luts)).Int("k", k).Msg("mapped network to LUTs")

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := rtlil.Write(out, net, luts); err != nil {
		return err
	}

	log.Info().Str("output", outPath).Msg("wrote RTLIL")
	return nil
}
