package benchmark_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/urfave/cli/v2"

	"github.com/optkit/optset/optset"
)

// Benchmark simple flag parsing against cobra and urfave/cli.
// The optset variant reuses one declared set across iterations (sessions
// are independent); cobra and urfave rebuild their command objects per
// iteration because their parse state is single-use.

func BenchmarkSimpleFlags_Optset(b *testing.B) {
	s := optset.New()
	s.Int("--port", "Server port")
	s.Flag("--verbose", "Verbose output")
	if err := s.Validate(); err != nil {
		b.Fatal(err)
	}

	args := []string{"bench", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = s.ParseWithHandler(args, continueHandler, nil)
	}
}

func BenchmarkSimpleFlags_Cobra(b *testing.B) {
	args := []string{"--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		cmd.Flags().IntP("port", "p", 8080, "Server port")
		cmd.Flags().BoolP("verbose", "v", false, "Verbose output")
		cmd.SetArgs(args)
		_ = cmd.Execute()
	}
}

func BenchmarkSimpleFlags_Urfave(b *testing.B) {
	args := []string{"bench", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "port", Value: 8080, Usage: "Server port"},
				&cli.BoolFlag{Name: "verbose", Usage: "Verbose output"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}

// Benchmark positional arguments mixed with named options.

func BenchmarkPositionals_Optset(b *testing.B) {
	s := optset.New()
	s.Flag("--verbose", "Verbose output")
	s.String("src", "Source path").Positional().Required()
	s.String("dst", "Destination path").Positional().Required()
	if err := s.Validate(); err != nil {
		b.Fatal(err)
	}

	args := []string{"bench", "a.txt", "--verbose", "b.txt"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = s.ParseWithHandler(args, continueHandler, nil)
	}
}

func BenchmarkPositionals_Cobra(b *testing.B) {
	args := []string{"a.txt", "--verbose", "b.txt"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cmd := &cobra.Command{
			Use:  "bench",
			Args: cobra.ExactArgs(2),
			Run:  func(_ *cobra.Command, _ []string) {},
		}
		cmd.Flags().BoolP("verbose", "v", false, "Verbose output")
		cmd.SetArgs(args)
		_ = cmd.Execute()
	}
}

func BenchmarkPositionals_Urfave(b *testing.B) {
	args := []string{"bench", "--verbose", "a.txt", "b.txt"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "verbose", Usage: "Verbose output"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}

// Benchmark list-valued options.

func BenchmarkRepeatedOption_Optset(b *testing.B) {
	s := optset.New()
	s.String("--tag", "Tags").Multiple()
	if err := s.Validate(); err != nil {
		b.Fatal(err)
	}

	args := []string{"bench", "--tag", "a", "--tag", "b", "--tag", "c"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = s.ParseWithHandler(args, continueHandler, nil)
	}
}

func BenchmarkRepeatedOption_Cobra(b *testing.B) {
	args := []string{"--tag", "a", "--tag", "b", "--tag", "c"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		cmd.Flags().StringArray("tag", nil, "Tags")
		cmd.SetArgs(args)
		_ = cmd.Execute()
	}
}

func BenchmarkRepeatedOption_Urfave(b *testing.B) {
	args := []string{"bench", "--tag", "a", "--tag", "b", "--tag", "c"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{Name: "tag", Usage: "Tags"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}
