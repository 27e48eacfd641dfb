// Copyright (c) 2020. Temple3x (temple3x@gmail.com)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// uphex prints a file in uppercase hexadecimal.
//
// Usage:
//
//	uphex [-c config.toml] [-impl name] [-v] <file>
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/docker/go-units"
	"github.com/templexxx/tsc"

	"github.com/zaibyte/uphex/metricutil"
	"github.com/zaibyte/uphex/xerrors"
	"github.com/zaibyte/uphex/xhex"
	"github.com/zaibyte/uphex/xlog"
	"github.com/zaibyte/uphex/xmath"
)

const (
	exitOK    = 0
	exitErr   = 1
	exitUsage = 2
)

const unknownInstance = "unknown"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("uphex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("c", "", "config file path (TOML)")
	implName := fs.String("impl", "", "encoder: auto, scalar, generic, ssse3, avx2, neon or native")
	verbose := fs.Bool("v", false, "debug log")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: uphex [-c config.toml] [-impl name] [-v] <file>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitErr
	}
	if *implName != "" {
		cfg.Impl = *implName
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	cfg.adjust()
	if err = cfg.check(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitErr
	}

	if _, err = cfg.Log.MakeLogger(); err != nil {
		fmt.Fprintln(stderr, xerrors.WithMsg(err, "make logger"))
		return exitErr
	}
	defer xlog.Close()

	if err = encodeFile(cfg, fs.Arg(0), stdout); err != nil {
		// The log may be in a file, the user still needs to see it.
		fmt.Fprintf(stderr, "uphex: %s\n", err)
		xlog.Error(err.Error())
		return exitErr
	}

	if err = metricutil.Push(&cfg.Metrics, instance()); err != nil {
		xlog.Warn(err.Error())
	}
	return exitOK
}

// instance returns the Pushgateway instance label.
// It's "unknown" when the hostname can't be got,
// metrics are still pushed in that case.
func instance() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return unknownInstance
	}
	return host
}

func encodeFile(cfg *Config, path string, w io.Writer) error {
	impl, err := xhex.ParseImpl(cfg.Impl)
	if err != nil {
		return err
	}
	if !impl.Available() {
		return fmt.Errorf("impl %s is not available on this machine", impl)
	}
	limit, err := cfg.maxInput()
	if err != nil {
		return err
	}

	src, err := readInput(path, limit)
	if err != nil {
		return xerrors.WithMsg(err, "read input")
	}

	start := tsc.UnixNano()
	s := xhex.EncodeWith(impl, src)
	cost := time.Duration(tsc.UnixNano() - start)

	xlog.Debugf("encoded %s by %s in %s (%.2f MiB/s)",
		units.HumanSize(float64(len(src))), impl, cost, xmath.MiBps(len(src), cost))
	metricutil.Observe(impl.String(), len(src), cost)

	bw := bufio.NewWriter(w)
	bw.WriteString(s)
	bw.WriteByte('\n')
	return xerrors.WithMsg(bw.Flush(), "write output")
}

// readInput reads the whole file, it refuses files larger than limit.
func readInput(path string, limit int64) ([]byte, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if fi.Size() > limit {
		return nil, fmt.Errorf("%s is too large: %s > %s", path,
			units.BytesSize(float64(fi.Size())), units.BytesSize(float64(limit)))
	}
	return os.ReadFile(path)
}
