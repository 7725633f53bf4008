// Command aacdec decodes AAC, HE-AAC and HE-AACv2 streams to WAV or raw
// PCM. Input is a file, an HTTP(S) URL or "-" for standard input, framed
// as ADTS, LOAS, ADIF, an MPEG transport stream or raw data blocks
// described by -asc.
//
// Flag defaults can be set through AACDEC_* environment variables, which
// are also read from a .env file in the working directory.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type options struct {
	input  string
	output string
	raw    bool
	format string

	downmix       bool
	oldADTS       bool
	noImplicitSBR bool
	asc           string
	objectType    uint
	sampleRate    uint
	maxFrames     int
	infoOnly      bool

	logLevel string
	logFile  string
	logEnv   string
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func envUint(key string, def uint) uint {
	if v, ok := os.LookupEnv(key); ok {
		n, err := strconv.ParseUint(v, 10, 32)
		if err == nil {
			return uint(n)
		}
	}
	return def
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var o options
	fs.StringVar(&o.output, "o", envString("AACDEC_OUTPUT", ""), "output file, - for standard output (default: input name with .wav)")
	fs.BoolVar(&o.raw, "raw", envBool("AACDEC_RAW", false), "write headerless little endian PCM instead of WAV")
	fs.StringVar(&o.format, "f", envString("AACDEC_FORMAT", "16"), "sample format: 16, 24, 32, float or double (float formats need -raw)")
	fs.BoolVar(&o.downmix, "downmix", envBool("AACDEC_DOWNMIX", false), "fold 5 and 5.1 channel streams into stereo")
	fs.BoolVar(&o.oldADTS, "old-adts", envBool("AACDEC_OLD_ADTS", false), "expect the emphasis bits of early MPEG-2 ADTS headers")
	fs.BoolVar(&o.noImplicitSBR, "no-implicit-sbr", envBool("AACDEC_NO_IMPLICIT_SBR", false), "keep low rate streams at their core rate until SBR data is found")
	fs.StringVar(&o.asc, "asc", envString("AACDEC_ASC", ""), "hex AudioSpecificConfig for raw streams")
	fs.UintVar(&o.objectType, "object", envUint("AACDEC_OBJECT", 2), "object type of raw streams without -asc")
	fs.UintVar(&o.sampleRate, "rate", envUint("AACDEC_RATE", 44100), "sampling rate of raw streams without -asc")
	fs.IntVar(&o.maxFrames, "n", 0, "stop after n frames (0: decode everything)")
	fs.BoolVar(&o.infoOnly, "i", false, "print the stream description and exit")
	fs.StringVar(&o.logLevel, "log-level", envString("AACDEC_LOG_LEVEL", "info"), "log level: debug, info, warn or error")
	fs.StringVar(&o.logFile, "log-file", envString("AACDEC_LOG_FILE", ""), "also write logs to this rotated file")
	fs.StringVar(&o.logEnv, "log-env", envString("AACDEC_ENV", "development"), "production for JSON logs, development for console logs")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: aacdec [flags] input\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return o, fmt.Errorf("expected one input, got %d", fs.NArg())
	}
	o.input = fs.Arg(0)
	return o, nil
}

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	o, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	log, level, err := newLogger(o.logLevel, o.logEnv, o.logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "aacdec: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Debug("logger ready", zap.Stringer("level", level.Level()))

	if err := run(o, log, os.Stdout); err != nil {
		log.Error("decoding failed", zap.String("input", o.input), zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}
