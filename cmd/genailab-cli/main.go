package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"genailab/internal/core/bias"
	"genailab/internal/core/keywords"
	"genailab/internal/core/lexicon"
	"genailab/internal/core/prompt"
	"genailab/internal/core/sentiment"
	"genailab/internal/core/textgen"
	"genailab/internal/platform/logger"
)

func readText(flagText string) string {
	if flagText != "" {
		return flagText
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		panic(fmt.Errorf("read stdin: %w", err))
	}
	return strings.TrimSpace(string(b))
}

func run(mode, text string, seed uint64, maxLength int) (any, error) {
	lx := lexicon.Default()
	switch mode {
	case "sentiment":
		clf, err := sentiment.Train(lx.Training())
		if err != nil {
			return nil, err
		}
		return clf.Analyze(text)
	case "keywords":
		return keywords.Extract(text), nil
	case "bias":
		d := bias.New(lx.Bias(), bias.Options{})
		res := d.Detect(text)
		return map[string]any{
			"result":      res,
			"suggestions": d.SuggestMitigation(res),
		}, nil
	case "generate":
		var gen *textgen.Generator
		if seed != 0 {
			gen = textgen.NewSeeded(lx.Connectives(), seed)
		} else {
			gen = textgen.New(lx.Connectives(), nil)
		}
		return gen.Generate(text, maxLength), nil
	case "prompt":
		return prompt.Analyze(text), nil
	default:
		return nil, fmt.Errorf("unknown -mode %q", mode)
	}
}

func main() {
	var (
		fMode   = flag.String("mode", "sentiment", "analysis mode: sentiment | keywords | bias | generate | prompt")
		fText   = flag.String("text", "", "input text (reads stdin when empty)")
		fSeed   = flag.Uint64("seed", 0, "generator seed for -mode generate (0 = clock)")
		fMaxLen = flag.Int("max-length", textgen.DefaultMaxLength, "max generated characters for -mode generate")
	)
	flag.Parse()

	l := logger.Get()

	out, err := run(*fMode, readText(*fText), *fSeed, *fMaxLen)
	if err != nil {
		l.Error().Err(err).Str("mode", *fMode).Msg("analysis failed")
		os.Exit(2)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		l.Error().Err(err).Msg("encode failed")
		os.Exit(1)
	}
}
