package benchmark_test

import (
	"testing"

	"github.com/optkit/optset/optset"
)

// Parsing benchmarks over one prebuilt option set. Sessions are
// independent, so the same set is reused across iterations the way a
// long-running tool would reuse it.

func continueHandler(*optset.ParseError) bool { return true }

func BenchmarkParseFlags(b *testing.B) {
	s := optset.New()
	s.Flag("--verbose", "Verbose output")
	s.Flag("--force", "Skip confirmation")
	s.Flag("--dry-run", "Do not write")
	if err := s.Validate(); err != nil {
		b.Fatal(err)
	}

	args := []string{"bench", "--verbose", "--dry-run"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = s.ParseWithHandler(args, continueHandler, nil)
	}
}

func BenchmarkParseMixed(b *testing.B) {
	s := optset.New()
	s.String("--host", "Server host")
	s.Int("--port", "Server port")
	s.Float("--ratio", "Sampling ratio")
	s.Flag("--verbose", "Verbose output")
	s.String("input", "Input path").Positional()
	if err := s.Validate(); err != nil {
		b.Fatal(err)
	}

	args := []string{"bench", "--host", "0.0.0.0", "--port", "9000", "--ratio", "0.25", "--verbose", "data.txt"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = s.ParseWithHandler(args, continueHandler, nil)
	}
}

func BenchmarkParseMultiple(b *testing.B) {
	s := optset.New()
	s.Int("--n", "Numbers").Multiple()
	if err := s.Validate(); err != nil {
		b.Fatal(err)
	}

	args := []string{"bench", "--n", "1", "--n", "2", "--n", "3", "--n", "4", "--n", "5"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = s.ParseWithHandler(args, continueHandler, nil)
	}
}

func BenchmarkParseInlineValues(b *testing.B) {
	s := optset.New()
	s.String("--name", "Name")
	s.String("-x", "Short").ShortOption()
	if err := s.Validate(); err != nil {
		b.Fatal(err)
	}

	args := []string{"bench", "--name=widget", "-xvalue"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = s.ParseWithHandler(args, continueHandler, nil)
	}
}

func BenchmarkParseStopSentinel(b *testing.B) {
	s := optset.New().StopParsing("--")
	s.String("--name", "Name")
	if err := s.Validate(); err != nil {
		b.Fatal(err)
	}

	args := []string{"bench", "--name", "x", "--", "a", "b", "c", "d"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = s.ParseWithHandler(args, continueHandler, nil)
	}
}

func BenchmarkHelpRendering(b *testing.B) {
	s := optset.New()
	s.String("--name", "Set the name").Required()
	s.Int("--port", "Listen port")
	s.Flag("--verbose", "Enable verbose output")
	s.EnumString("--format", "Output format", "json", "text", "yaml")
	s.String("input", "Input path").Positional().Required()
	s.HelpOption()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = s.Help()
	}
}

func BenchmarkUnrecognizedWithSuggestion(b *testing.B) {
	s := optset.New()
	s.Flag("--verbose", "Verbose output")
	s.Flag("--version", "Print version")
	s.String("--format", "Output format")
	if err := s.Validate(); err != nil {
		b.Fatal(err)
	}

	args := []string{"bench", "--verbos"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = s.ParseWithHandler(args, continueHandler, nil)
	}
}
