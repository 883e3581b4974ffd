// SPDX-License-Identifier: MIT

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Pair: {
	key:   string & !=""
	count: int & >=0
}
`

type pair struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	res, err := ParseAndDecode[pair]([]byte(testSchema), []byte(`key: "dyms", count: 3`), "#Pair")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Value.Key != "dyms" || res.Value.Count != 3 {
		t.Errorf("unexpected decode result: %+v", res.Value)
	}
}

func TestParseAndDecodeSchemaViolation(t *testing.T) {
	t.Parallel()

	_, err := ParseAndDecode[pair]([]byte(testSchema), []byte(`key: "", count: -1`), "#Pair", WithFilename("pair.cue"))
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !strings.Contains(err.Error(), "pair.cue") {
		t.Errorf("expected filename in error, got %q", err.Error())
	}
}

func TestParseAndDecodeRejectsOversizedInput(t *testing.T) {
	t.Parallel()

	data := []byte(`key: "` + strings.Repeat("x", 64) + `", count: 1`)
	_, err := ParseAndDecode[pair]([]byte(testSchema), data, "#Pair", WithMaxFileSize(16))
	if err == nil {
		t.Fatal("expected a size error")
	}
	if !strings.Contains(err.Error(), "exceeds maximum") {
		t.Errorf("expected size message, got %q", err.Error())
	}
}

func TestValidateValue(t *testing.T) {
	t.Parallel()

	if err := ValidateValue([]byte(testSchema), "#Pair", pair{Key: "dyms", Count: 1}); err != nil {
		t.Errorf("expected valid value to pass, got %v", err)
	}

	err := ValidateValue([]byte(testSchema), "#Pair", pair{Key: "", Count: 1}, WithFilename("pair.toml"))
	if err == nil {
		t.Fatal("expected invalid value to fail")
	}
	if !strings.Contains(err.Error(), "pair.toml") {
		t.Errorf("expected filename in error, got %q", err.Error())
	}
}
