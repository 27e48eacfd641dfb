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

package metricutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	before := testutil.ToFloat64(EncodedBytes.WithLabelValues("scalar"))
	Observe("scalar", 100, time.Millisecond)
	Observe("scalar", 28, time.Millisecond)
	assert.Equal(t, before+128, testutil.ToFloat64(EncodedBytes.WithLabelValues("scalar")))
}

func TestPushDisabled(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.Enabled())
	assert.NoError(t, Push(cfg, "host"))
}

func TestPush(t *testing.T) {
	var (
		method, path string
		body         []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	Observe("generic", 16, time.Microsecond)

	cfg := &Config{PushAddress: srv.URL}
	require.NoError(t, Push(cfg, "host"))
	assert.Equal(t, defaultPushJob, cfg.PushJob)
	assert.Equal(t, http.MethodPut, method)
	assert.True(t, strings.HasPrefix(path, "/metrics/job/uphex"), path)
	assert.Contains(t, path, "instance/host")
	assert.Contains(t, string(body), "uphex_encoded_bytes_total")
}

func TestPushFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := Push(&Config{PushAddress: srv.URL}, "host")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Pushgateway")
}
