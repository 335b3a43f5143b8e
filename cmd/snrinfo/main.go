// Command snrinfo computes the matched-filter S/N map of a pulse profile
// against a bank of templates and prints the per-template peaks.
//
// Usage:
//
//	snrinfo [flags]
//
// The profile is read from -file ("-" for stdin) as whitespace-separated
// numbers, one full folded period. Without -file a synthetic noisy test
// profile is generated from the -bins/-pulse-*/-noise/-seed flags.
//
// Examples:
//
//	snrinfo -file profile.txt
//	snrinfo -file - -kind gaussian -widths 2,4,8 < profile.txt
//	snrinfo -bins 512 -pulse-start 100 -pulse-width 8 -pulse-amp 6
//	snrinfo -file profile.txt -mean 0.0 -std diffcov
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-snr/dsp/noise"
	"github.com/cwbudde/algo-snr/dsp/snr"
	"github.com/cwbudde/algo-snr/dsp/template"
)

func main() {
	kind := flag.String("kind", "boxcar", "template kind: boxcar or gaussian")
	widths := flag.String("widths", "1,2,4,8,16", "comma-separated template widths in bins")
	file := flag.String("file", "", "profile file of whitespace-separated numbers, \"-\" for stdin")
	meanArg := flag.String("mean", noise.MethodMedian, "noise mean: estimator name or literal value")
	stdArg := flag.String("std", noise.MethodIQR, "noise std: estimator name or literal value")
	models := flag.Bool("models", true, "reconstruct and summarize the best-fit model")

	bins := flag.Int("bins", 256, "synthetic profile length")
	pulseStart := flag.Int("pulse-start", 100, "synthetic pulse start bin")
	pulseWidth := flag.Int("pulse-width", 8, "synthetic pulse width in bins")
	pulseAmp := flag.Float64("pulse-amp", 5, "synthetic pulse amplitude")
	noiseSigma := flag.Float64("noise", 1, "synthetic noise standard deviation")
	seed := flag.Int64("seed", 42, "synthetic noise seed")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: snrinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Computes a matched-filter S/N map of a pulse profile against a template bank.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	profile, err := loadOrSynthesize(*file, *bins, *pulseStart, *pulseWidth, *pulseAmp, *noiseSigma, *seed)
	if err != nil {
		fatal(err)
	}

	bank, err := buildBank(*kind, *widths)
	if err != nil {
		fatal(err)
	}

	opts, err := buildOptions(*meanArg, *stdArg, *models)
	if err != nil {
		fatal(err)
	}

	res, err := snr.ComputeProfile(profile, bank, opts...)
	if err != nil {
		fatal(err)
	}

	printReport(os.Stdout, res, bank, *models)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "snrinfo:", err)
	os.Exit(1)
}

func loadOrSynthesize(path string, bins, start, width int, amp, sigma float64, seed int64) ([]float64, error) {
	if path != "" {
		return readProfile(path)
	}

	rng := rand.New(rand.NewSource(seed))
	profile := make([]float64, bins)
	for i := range profile {
		profile[i] = sigma * rng.NormFloat64()
	}
	for i := 0; i < width; i++ {
		profile[(start+i)%bins] += amp
	}
	return profile, nil
}

func readProfile(path string) ([]float64, error) {
	var in *os.File
	if path == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	var profile []float64
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("bad value %q: %w", scanner.Text(), err)
		}
		profile = append(profile, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(profile) == 0 {
		return nil, fmt.Errorf("no values in %s", path)
	}
	return profile, nil
}

func buildBank(kind, widthList string) (*template.Bank, error) {
	fields := strings.Split(widthList, ",")

	switch kind {
	case "boxcar":
		widths := make([]int, 0, len(fields))
		for _, f := range fields {
			w, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("bad width %q: %w", f, err)
			}
			widths = append(widths, w)
		}
		return template.Boxcars(widths)
	case "gaussian":
		widths := make([]float64, 0, len(fields))
		for _, f := range fields {
			w, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("bad width %q: %w", f, err)
			}
			widths = append(widths, w)
		}
		return template.Gaussians(widths)
	default:
		return nil, fmt.Errorf("unknown template kind %q (valid choices: boxcar, gaussian)", kind)
	}
}

// buildOptions resolves the -mean and -std flags, which accept either an
// estimator name or a literal numeric value.
func buildOptions(meanArg, stdArg string, models bool) ([]snr.Option, error) {
	var opts []snr.Option

	if v, err := strconv.ParseFloat(meanArg, 64); err == nil {
		opts = append(opts, snr.WithMean(v))
	} else {
		opts = append(opts, snr.WithMeanMethod(meanArg))
	}

	if v, err := strconv.ParseFloat(stdArg, 64); err == nil {
		opts = append(opts, snr.WithStd(v))
	} else {
		opts = append(opts, snr.WithStdMethod(stdArg))
	}

	if !models {
		opts = append(opts, snr.WithoutModels())
	}
	return opts, nil
}

func printReport(out *os.File, res *snr.Result, bank *template.Bank, models bool) {
	fmt.Fprintf(out, "bins: %d  noise mean: %.6g  noise std: %.6g\n\n",
		res.NumBins(), res.Mean[0], res.Std[0])

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "idx\tkind\twidth\tsize\trefbin\tpeak bin\tpeak S/N")

	bestTemp, bestBin, _ := res.ProfilePeak(0)
	for j := 0; j < bank.Len(); j++ {
		tpl := bank.At(j)
		row := res.SNR[0][j]

		peakBin := 0
		for k, v := range row {
			if v > row[peakBin] {
				peakBin = k
			}
		}

		marker := ""
		if j == bestTemp {
			marker = " *"
		}
		fmt.Fprintf(w, "%d\t%s\t%.3g\t%d\t%d\t%d\t%.2f%s\n",
			j, tpl.Kind(), tpl.ShapeParams()["w"], tpl.Size(), tpl.RefBin(),
			peakBin, row[peakBin], marker)
	}
	w.Flush()

	if models && res.Models != nil {
		model := res.Models[0]
		peak := 0
		for k, v := range model {
			if v > model[peak] {
				peak = k
			}
		}
		fmt.Fprintf(out, "\nbest fit: template %d at bin %d, model peak %.4g at bin %d\n",
			bestTemp, bestBin, model[peak], peak)
	}
}
