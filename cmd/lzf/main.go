// Command lzf compresses and decompresses files in the lzf block stream
// format. Invoked as unlzf it decompresses; as lzcat it decompresses to
// standard output.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ogier/pflag"
	"golang.org/x/term"

	"github.com/woozymasta/lzf"
)

const defaultBlockSize = 64*1024 - 1

const usageStr = `Usage: lzf [-cd9fhvb] [FILE]...
Compress or uncompress FILEs in the lzf block stream format (in place).

  -c, --compress     compress
  -d, --decompress   decompress
  -9, --best         best compression
  -f, --force        force overwrite of output file
  -h, --help         give this help
  -v, --verbose      verbose mode
  -b, --blocksize #  set block size

When invoked as unlzf, decompress; as lzcat, decompress to standard output.
With no FILE, read standard input and write standard output.

The LZF_BLOCKSIZE environment variable overrides the default block size.
`

type operation int

const (
	opCompress operation = iota
	opUncompress
	opCat
)

type config struct {
	op        operation
	force     bool
	verbose   bool
	best      bool
	blockSize int
}

func (c *config) mode() lzf.CompressionMode {
	if c.best {
		return lzf.ModeBest
	}
	return lzf.ModeNormal
}

// opFromName derives the default operation from the invocation name, the way
// the historical utility dispatches on its hard links.
func opFromName(name string) operation {
	if strings.Contains(name, "cat") {
		return opCat
	}
	if strings.HasPrefix(name, "un") || strings.HasPrefix(name, "de") {
		return opUncompress
	}
	return opCompress
}

// parseBlockSize accepts decimal, 0x-prefixed hex and 0-prefixed octal
// values. Malformed or out-of-range input falls back to the default.
func parseBlockSize(s string) int {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil || v == 0 || v > defaultBlockSize {
		return defaultBlockSize
	}
	return int(v)
}

func main() {
	cmdName := filepath.Base(os.Args[0])
	log.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	log.SetFlags(0)

	pflag.CommandLine = pflag.NewFlagSet(cmdName, pflag.ExitOnError)
	pflag.Usage = func() { fmt.Fprint(os.Stderr, usageStr) }
	var (
		compress   = pflag.BoolP("compress", "c", false, "")
		decompress = pflag.BoolP("decompress", "d", false, "")
		uncompress = pflag.BoolP("uncompress", "u", false, "")
		best       = pflag.BoolP("best", "9", false, "")
		force      = pflag.BoolP("force", "f", false, "")
		verbose    = pflag.BoolP("verbose", "v", false, "")
		help       = pflag.BoolP("help", "h", false, "")
		blockArg   = pflag.StringP("blocksize", "b", "", "")
	)
	pflag.Parse()

	if *help {
		fmt.Print(usageStr)
		os.Exit(0)
	}

	cfg := config{
		op:        opFromName(cmdName),
		force:     *force,
		verbose:   *verbose,
		best:      *best,
		blockSize: defaultBlockSize,
	}
	if *compress {
		cfg.op = opCompress
	}
	if *decompress || *uncompress {
		cfg.op = opUncompress
	}
	if env := os.Getenv("LZF_BLOCKSIZE"); env != "" {
		cfg.blockSize = parseBlockSize(env)
	}
	if *blockArg != "" {
		cfg.blockSize = parseBlockSize(*blockArg)
	}

	files := pflag.Args()
	if len(files) == 0 {
		os.Exit(runStdio(&cfg))
	}

	rc := 0
	for _, file := range files {
		if err := runFile(&cfg, file); err != nil {
			log.Print(err)
			rc = 1
		}
	}
	os.Exit(rc)
}

// runStdio filters standard input to standard output. Compressed data is
// refused on a terminal unless forced.
func runStdio(cfg *config) int {
	if !cfg.force {
		if cfg.op != opCompress && term.IsTerminal(int(os.Stdin.Fd())) {
			log.Print("compressed data not read from a terminal. Use -f to force decompression.")
			return 1
		}
		if cfg.op == opCompress && term.IsTerminal(int(os.Stdout.Fd())) {
			log.Print("compressed data not written to a terminal. Use -f to force compression.")
			return 1
		}
	}

	if cfg.op == opCompress {
		zw, err := lzf.NewWriter(os.Stdout, &lzf.WriterOptions{BlockSize: cfg.blockSize, Mode: cfg.mode()})
		if err != nil {
			log.Print(err)
			return 1
		}
		if _, err := io.Copy(zw, os.Stdin); err != nil {
			log.Print("write error")
			return 1
		}
		if err := zw.Close(); err != nil {
			log.Print("write error")
			return 1
		}
		return 0
	}

	if _, err := io.Copy(os.Stdout, lzf.NewReader(os.Stdin)); err != nil {
		log.Print("decompress: invalid stream - data corrupted")
		return 1
	}
	return 0
}
