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

// Package metricutil records encoding metrics and pushes them to
// Prometheus Pushgateway.
//
// uphex is a short-lived process, so there is no scraping endpoint,
// metrics are pushed once before exit.
package metricutil

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/zaibyte/uphex/config"
	"github.com/zaibyte/uphex/xerrors"
)

const defaultPushJob = "uphex"

type Config struct {
	PushJob     string `toml:"push_job"`
	PushAddress string `toml:"push_address"`
}

// Enabled returns true if there is a Pushgateway address.
func (c *Config) Enabled() bool {
	return c.PushAddress != ""
}

var (
	EncodedBytes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "uphex",
		Name:      "encoded_bytes_total",
		Help:      "Number of source bytes encoded.",
	}, []string{"impl"})

	EncodeDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "uphex",
		Name:      "encode_duration_seconds",
		Help:      "Time spent on encoding.",
		Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12), // 1us ~ 4s
	}, []string{"impl"})
)

// Observe records an encoding of n bytes which took d.
func Observe(impl string, n int, d time.Duration) {
	EncodedBytes.WithLabelValues(impl).Add(float64(n))
	EncodeDuration.WithLabelValues(impl).Observe(d.Seconds())
}

// Push pushes metrics to Pushgateway once.
// It does nothing if cfg isn't enabled.
func Push(cfg *Config, instance string) error {
	if !cfg.Enabled() {
		return nil
	}

	config.Adjust(&cfg.PushJob, defaultPushJob)

	err := push.New(cfg.PushAddress, cfg.PushJob).
		Collector(EncodedBytes).
		Collector(EncodeDuration).
		Grouping("instance", instance).
		Push()
	return xerrors.WithMsg(err, "could not push metrics to Prometheus Pushgateway")
}
