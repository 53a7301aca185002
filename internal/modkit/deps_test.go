package modkit

import (
	"bytes"
	"testing"

	"genailab/internal/core/lexicon"
	"genailab/internal/platform/logger"
	"genailab/internal/platform/testkit"
)

func TestDeps_Lex(t *testing.T) {
	if (Deps{}).Lex() != lexicon.Default() {
		t.Fatal("zero deps should fall back to the embedded lexicon")
	}
	lx, err := lexicon.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if (Deps{Lexicon: lx}).Lex() != lx {
		t.Fatal("configured lexicon ignored")
	}
}

func TestDeps_Logger(t *testing.T) {
	var buf bytes.Buffer
	base := logger.New(logger.Options{Level: "debug", Format: "json", Writer: &buf})

	l := Deps{Log: &base}.Logger("rag")
	l.Info().Msg("hello")
	testkit.MustContain(t, buf.String(), `"component":"rag"`)

	// falls back to the process logger without panicking
	fallback := Deps{}.Logger("nlp")
	fallback.Debug().Msg("quiet")
}
