package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/woozymasta/lzf"
)

const suffix = ".lzf"

// targetName resolves the output path: compression appends the suffix,
// decompression requires and strips it. lzcat has no target.
func targetName(op operation, path string) (string, error) {
	switch op {
	case opCompress:
		return path + suffix, nil
	case opUncompress:
		if target, ok := strings.CutSuffix(path, suffix); ok && target != "" {
			return target, nil
		}
		return "", fmt.Errorf("%s: unknown suffix", path)
	}
	return "", nil
}

// runFile converts one file in place: the result is written next to the
// source with the source's permissions, then the source is removed. lzcat
// writes to standard output and keeps the source.
func runFile(cfg *config, file string) error {
	info, err := os.Lstat(file)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: not a regular file", file)
	}

	target, err := targetName(cfg.op, file)
	if err != nil {
		return err
	}

	in, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	var out []byte
	if cfg.op == opCompress {
		out, err = lzf.EncodeBlocks(in, cfg.blockSize, cfg.mode())
		if err != nil {
			return fmt.Errorf("%s: compress: %w", file, err)
		}
	} else {
		out, err = lzf.DecodeBlocks(in)
		if err != nil {
			return fmt.Errorf("%s: decompress: invalid stream - data corrupted", file)
		}
	}

	if cfg.op == opCat {
		_, err = os.Stdout.Write(out)
		return err
	}

	if err := writeTarget(target, out, cfg.force); err != nil {
		return err
	}
	// Carry the source permissions over, best effort.
	_ = os.Chmod(target, info.Mode().Perm())

	if cfg.verbose {
		printVerbose(cfg.op, file, target, len(in), len(out))
	}

	return os.Remove(file)
}

// writeTarget refuses to overwrite an existing file unless forced.
func writeTarget(path string, data []byte, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printVerbose(op operation, src, dst string, nrRead, nrWritten int) {
	var pct float64
	switch op {
	case opCompress:
		if nrRead > 0 {
			pct = 100 - float64(nrWritten)/(float64(nrRead)/100)
		}
	default:
		if nrWritten > 0 {
			pct = 100 - float64(nrRead)/(float64(nrWritten)/100)
		}
	}

	fmt.Fprintf(os.Stderr, "%s:  %5.1f%% -- replaced with %s\n", src, pct, dst)
}
