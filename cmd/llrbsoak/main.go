// Copyright 2022 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command llrbsoak runs a long random sequence of operations against an
// llrb.Tree, checking it against github.com/petar/GoLLRB and verifying the
// red-black invariants as it goes.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	progress "gopkg.in/cheggaaa/pb.v1"

	"github.com/google/llrb"
	"github.com/google/llrb/internal/soak"
)

func main() {
	cfg := soak.DefaultConfig()
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	cfg.AddFlags(fs)
	verbose := fs.BoolP("verbose", "v", false, "Log every check and every rejected tree call.")
	quiet := fs.BoolP("quiet", "q", false, "Do not show the progress bar.")
	fs.Parse(os.Args[1:])

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
		llrb.Log.SetLevel(logrus.DebugLevel)
	}

	var bar *progress.ProgressBar
	if !*quiet && cfg.Ops > 0 {
		cfg.OnProgress = func(done, total int) {
			if bar == nil {
				bar = progress.New(total)
				bar.Callback = func(msg string) {
					os.Stderr.WriteString("\033[2K\r" + msg)
				}
				bar.NotPrint = true
				bar.ShowSpeed = true
				bar.SetMaxWidth(80).Start()
			}
			bar.Set(done)
		}
	}

	log.WithFields(logrus.Fields{
		"ops":         cfg.Ops,
		"keys":        cfg.Keys,
		"seed":        cfg.Seed,
		"check_every": cfg.CheckEvery,
	}).Info("starting soak run")
	stats, err := soak.Run(cfg, log)
	if bar != nil {
		bar.Finish()
		fmt.Fprint(os.Stderr, "\033[2K\r")
	}
	if err != nil {
		log.WithFields(stats.Fields()).WithError(err).Error("soak run failed")
		os.Exit(1)
	}
	log.WithFields(stats.Fields()).Info("soak run passed")
}
