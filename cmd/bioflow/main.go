// Command bioflow provides a CLI for genomic sequence analysis.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/bioflow-go/bioflow-core/internal/align"
	"github.com/bioflow-go/bioflow-core/internal/alignment"
	"github.com/bioflow-go/bioflow-core/internal/enumerate"
	"github.com/bioflow-go/bioflow-core/internal/score"
	"github.com/bioflow-go/bioflow-core/pkg/bioflow"
)

var rootCmd = &cobra.Command{
	Use:   "bioflow",
	Short: "Genomic sequence analysis toolkit",
	Long:  "BioFlow - a CLI for sequence inspection and pairwise alignment.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func checkErr(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadSequences(file, seq string) []*bioflow.Sequence {
	if file == "" && seq == "" {
		checkErr(fmt.Errorf("either --file or --seq is required"))
	}
	if file != "" {
		sequences, err := bioflow.ReadFASTA(file)
		checkErr(err)
		return sequences
	}
	s, err := bioflow.NewSequence(seq)
	checkErr(err)
	return []*bioflow.Sequence{s}
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show sequence information",
	Run: func(cmd *cobra.Command, args []string) {
		file, _ := cmd.Flags().GetString("file")
		seq, _ := cmd.Flags().GetString("seq")

		for i, s := range loadSequences(file, seq) {
			at, err := s.ATContent()
			checkErr(err)
			counts := s.BaseCounts()

			fmt.Printf("Sequence %d:\n", i+1)
			if s.ID != "" {
				fmt.Printf("  ID: %s\n", s.ID)
			}
			fmt.Printf("  Length: %d bp\n", s.Len())
			fmt.Printf("  GC Content: %.2f%%\n", s.GCContent()*100)
			fmt.Printf("  AT Content: %.2f%%\n", at*100)
			fmt.Printf("  Base Counts: A=%d, C=%d, G=%d, T=%d, N=%d\n",
				counts.A, counts.C, counts.G, counts.T, counts.N)
			fmt.Println()
		}
	},
}

var gcCmd = &cobra.Command{
	Use:   "gc",
	Short: "Calculate GC content",
	Run: func(cmd *cobra.Command, args []string) {
		file, _ := cmd.Flags().GetString("file")
		seq, _ := cmd.Flags().GetString("seq")

		for _, s := range loadSequences(file, seq) {
			id := s.ID
			if id == "" {
				id = "sequence"
			}
			fmt.Printf("%s: %.4f (%.2f%%)\n", id, s.GCContent(), s.GCContent()*100)
		}
	},
}

// buildModel assembles a score.Model from the align/score commands'
// shared flag set, letting a caller reach Gotoh and FOGSAA (not just the
// linear-gap default pkg/bioflow.Align wraps) from the command line. It
// sets no gap callback, so WSB is not reachable from here.
func buildModel(cmd *cobra.Command) *score.Model {
	modeStr, _ := cmd.Flags().GetString("mode")
	match, _ := cmd.Flags().GetFloat64("match")
	mismatch, _ := cmd.Flags().GetFloat64("mismatch")
	gapOpen, _ := cmd.Flags().GetFloat64("gap-open")
	gapExtend, _ := cmd.Flags().GetFloat64("gap-extend")

	mode, err := score.ParseMode(modeStr)
	checkErr(err)

	m := score.NewModel()
	m.SetMatch(match)
	m.SetMismatch(mismatch)
	for ctx := score.Internal; ctx <= score.Right; ctx++ {
		for _, side := range [...]score.GapSide{score.Insertion, score.Deletion} {
			m.SetGap(ctx, side, score.Open, gapOpen)
			m.SetGap(ctx, side, score.Extend, gapExtend)
		}
	}
	m.SetMode(mode)
	return m
}

func addScoringFlags(cmd *cobra.Command) {
	cmd.Flags().String("mode", "local", "alignment mode: global, local, or fogsaa")
	cmd.Flags().Float64("match", 2, "match score")
	cmd.Flags().Float64("mismatch", -1, "mismatch penalty")
	cmd.Flags().Float64("gap-open", -2, "gap open penalty")
	cmd.Flags().Float64("gap-extend", -1, "gap extend penalty")
}

var alignCmd = &cobra.Command{
	Use:   "align",
	Short: "Align two sequences",
	Run: func(cmd *cobra.Command, args []string) {
		seq1, _ := cmd.Flags().GetString("seq1")
		seq2, _ := cmd.Flags().GetString("seq2")
		if seq1 == "" || seq2 == "" {
			checkErr(fmt.Errorf("both --seq1 and --seq2 are required"))
		}

		model := buildModel(cmd)
		aligner := align.New(model, align.DefaultDNAMapping())

		enum, sc, err := aligner.Align(seq1, seq2, '+')
		checkErr(err)

		for _, w := range aligner.Warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}

		path, ok, err := enum.Next()
		checkErr(err)
		if !ok {
			checkErr(fmt.Errorf("no alignment path found"))
		}

		startA, startB := enum.StartPos()
		pairs := enumerate.Positions(path, startA, startB, '+', len(seq2))

		aligned1 := make([]byte, len(pairs))
		aligned2 := make([]byte, len(pairs))
		for i, p := range pairs {
			if p.A >= 0 {
				aligned1[i] = seq1[p.A]
			} else {
				aligned1[i] = '-'
			}
			if p.B >= 0 {
				aligned2[i] = seq2[p.B]
			} else {
				aligned2[i] = '-'
			}
		}

		alignType := alignment.Global
		if model.Mode == score.Local {
			alignType = alignment.Local
		}

		var totalA, totalB int
		for _, st := range path.Steps {
			totalA += st.ALen
			totalB += st.BLen
		}

		result, err := alignment.NewAlignmentWithPositions(string(aligned1), string(aligned2),
			int(math.Round(sc)), startA, startA+totalA, startB, startB+totalB, alignType)
		checkErr(err)

		fmt.Println(result.Format())

		rowsA, rowsB := enumerate.RunEndpoints(path, startA, startB, '+', len(seq2))
		fmt.Printf("rowsA: %v\n", rowsA)
		fmt.Printf("rowsB: %v\n", rowsB)

		count, overflowed := enum.Len()
		if overflowed {
			fmt.Printf("Co-optimal paths: more than %d (overflowed)\n", count)
		} else {
			fmt.Printf("Co-optimal paths: %d\n", count)
		}
	},
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute the optimal alignment score without materializing an alignment",
	Run: func(cmd *cobra.Command, args []string) {
		seq1, _ := cmd.Flags().GetString("seq1")
		seq2, _ := cmd.Flags().GetString("seq2")
		if seq1 == "" || seq2 == "" {
			checkErr(fmt.Errorf("both --seq1 and --seq2 are required"))
		}

		model := buildModel(cmd)
		aligner := align.New(model, align.DefaultDNAMapping())

		sc, err := aligner.Score(seq1, seq2, '+')
		checkErr(err)

		for _, w := range aligner.Warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}

		fmt.Printf("Score: %g\n", sc)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(bioflow.Info())
	},
}

func init() {
	infoCmd.Flags().String("file", "", "FASTA file to analyze")
	infoCmd.Flags().String("seq", "", "Sequence string to analyze")

	gcCmd.Flags().String("file", "", "FASTA file to analyze")
	gcCmd.Flags().String("seq", "", "Sequence string to analyze")

	alignCmd.Flags().String("seq1", "", "First sequence")
	alignCmd.Flags().String("seq2", "", "Second sequence")
	addScoringFlags(alignCmd)

	scoreCmd.Flags().String("seq1", "", "First sequence")
	scoreCmd.Flags().String("seq2", "", "Second sequence")
	addScoringFlags(scoreCmd)

	rootCmd.AddCommand(infoCmd, gcCmd, alignCmd, scoreCmd, versionCmd)
}
