// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package role_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustJSON(t *testing.T, value any) string {
	t.Helper()
	payload, err := json.Marshal(value)
	require.NoError(t, err)
	return string(payload)
}

// extractMenus returns the raw menus value of an envelope body.
func extractMenus(t *testing.T, body string) string {
	t.Helper()
	var envelope struct {
		Data struct {
			Menus json.RawMessage `json:"menus"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	return string(envelope.Data.Menus)
}
