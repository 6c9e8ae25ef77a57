// SPDX-License-Identifier: GPL-3.0-or-later

package privileged_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/robgonnella/go-airscan/pkg/privileged"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSecret(t *testing.T) {
	secret := privileged.Secret("hunter2")

	t.Run("redacts formatting", func(st *testing.T) {
		out := fmt.Sprintf("%s %v %#v %q", secret, secret, secret, secret)

		assert.NotContains(st, out, "hunter2")
	})

	t.Run("redacts json", func(st *testing.T) {
		data, err := json.Marshal(struct {
			Secret privileged.Secret `json:"secret"`
		}{Secret: secret})

		assert.NoError(st, err)
		assert.NotContains(st, string(data), "hunter2")
	})

	t.Run("redacts log events", func(st *testing.T) {
		buf := &bytes.Buffer{}
		log := zerolog.New(buf)

		log.Info().Object("auth", secret).Interface("raw", secret).Msg("test")

		assert.NotContains(st, buf.String(), "hunter2")
	})

	t.Run("reports empty", func(st *testing.T) {
		assert.True(st, privileged.Secret("").IsEmpty())
		assert.False(st, secret.IsEmpty())
	})
}
