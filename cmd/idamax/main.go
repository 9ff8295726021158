// Command idamax prints the index of the element of largest absolute value.
//
// Usage:
//
//	idamax [flags] [value ...]
//
// Values come from the arguments or, if there are none, from whitespace
// separated standard input.
//
// Examples:
//
//	idamax 0.1 -0.3 0.5 -0.1
//	idamax -stride 2 0.1 4 -0.3 6 -0.5 7 -0.1 3
//	idamax -stride -1 3 -4 1 15 4 3
//	idamax -linear -ptr 16 -stride 1 1 2 3 4 5
//	seq 1 100 | idamax -n 10
//	idamax -list
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-blas/idamax"
	"github.com/cwbudde/algo-blas/memory"
)

type options struct {
	n       int
	stride  int
	offset  int
	linear  bool
	ptr     int
	generic bool
	list    bool
	verbose bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("idamax", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opt options
	fs.IntVar(&opt.n, "n", -1, "number of elements to scan (default: as many as the stride allows)")
	fs.IntVar(&opt.stride, "stride", 1, "element stride; negative strides scan backward")
	fs.IntVar(&opt.offset, "offset", -1, "starting element offset (default: 0, or the last element for negative strides)")
	fs.BoolVar(&opt.linear, "linear", false, "copy the vector into linear memory and scan it there")
	fs.IntVar(&opt.ptr, "ptr", 0, "byte pointer used with -linear")
	fs.BoolVar(&opt.generic, "generic", false, "force the pure Go kernel")
	fs.BoolVar(&opt.list, "list", false, "list the compiled kernels and exit")
	fs.BoolVar(&opt.verbose, "v", false, "log debug events to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: idamax [flags] [value ...]\n\n")
		fmt.Fprintf(stderr, "Prints the index of the first element of largest absolute value.\n")
		fmt.Fprintf(stderr, "Reads values from standard input when none are given.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opt.list {
		if err := printKernels(stdout, idamax.Kernels()); err != nil {
			fmt.Fprintf(stderr, "error: failed to write output: %v\n", err)
			return 1
		}
		return 0
	}

	values, err := parseValues(fs.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	logger := slog.New(slog.DiscardHandler)
	if opt.verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	res, err := reduce(values, opt, logger)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if err := printResult(stdout, res); err != nil {
		fmt.Fprintf(stderr, "error: failed to write output: %v\n", err)
		return 1
	}
	return 0
}

type result struct {
	n      int
	stride int
	offset int
	index  int
	value  float64
	where  string
	kernel string
}

func reduce(values []float64, opt options, logger *slog.Logger) (result, error) {
	if opt.stride == 0 {
		return result{}, errors.New("stride must be non-zero")
	}

	step := opt.stride
	if step < 0 {
		step = -step
	}

	n := opt.n
	if n < 0 {
		n = 0
		if len(values) > 0 {
			n = (len(values)-1)/step + 1
		}
	}

	offset := opt.offset
	if offset < 0 {
		offset = 0
		if opt.stride < 0 && n > 0 {
			offset = (1 - n) * opt.stride
		}
	}

	res := result{n: n, stride: opt.stride, offset: offset, index: -1, value: math.NaN()}

	var modOpts []idamax.ModuleOption
	modOpts = append(modOpts, idamax.WithLogger(logger))
	if opt.generic {
		modOpts = append(modOpts, idamax.WithGenericKernel())
	}

	mem, err := linearMemory(values, opt, logger)
	if err != nil {
		return res, err
	}
	mod, err := idamax.NewModule(mem, modOpts...)
	if err != nil {
		return res, err
	}

	operand := idamax.HostOperand(values)
	res.where = "host"
	if !opt.linear && n > 0 {
		lo, hi := offset, offset+(n-1)*opt.stride
		if lo > hi {
			lo, hi = hi, lo
		}
		if lo < 0 || hi >= len(values) {
			return res, fmt.Errorf("view of %d elements at offset %d, stride %d exceeds %d values", n, offset, opt.stride, len(values))
		}
	}
	if opt.linear {
		if err := mod.Initialize(); err != nil {
			return res, err
		}
		if err := mod.Write(opt.ptr, values); err != nil {
			return res, err
		}
		operand = idamax.LinearOperand(int32(opt.ptr))
		res.where = "linear"
		res.kernel = mod.Kernel()
	}

	idx, err := mod.Reduce(n, operand, opt.stride, offset)
	if err != nil {
		return res, err
	}
	res.index = idx
	if idx >= 0 {
		pos := offset + idx*opt.stride
		if opt.linear {
			w, err := mod.Read(opt.ptr+pos*memory.Float64Size, 1)
			if err != nil {
				return res, err
			}
			if res.value, err = w.At(0); err != nil {
				return res, err
			}
		} else {
			res.value = values[pos]
		}
	}
	if res.kernel == "" {
		res.kernel = idamax.Kernel()
	}
	return res, nil
}

// linearMemory sizes a memory to hold values at opt.ptr, or a single empty
// page when the host path is used.
func linearMemory(values []float64, opt options, logger *slog.Logger) (*memory.Memory, error) {
	if !opt.linear {
		return memory.New(0, 1, memory.WithLogger(logger))
	}
	if opt.ptr < 0 {
		return nil, fmt.Errorf("negative pointer %d", opt.ptr)
	}
	need := opt.ptr + len(values)*memory.Float64Size
	pages := (need + memory.PageSize - 1) / memory.PageSize
	if pages > memory.MaxPages {
		return nil, fmt.Errorf("%d bytes do not fit in linear memory", need)
	}
	return memory.New(uint32(pages), uint32(pages), memory.WithLogger(logger))
}

func parseValues(args []string, stdin io.Reader) ([]float64, error) {
	if len(args) > 0 {
		values := make([]float64, len(args))
		for i, a := range args {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return nil, fmt.Errorf("value %d: %w", i, err)
			}
			values[i] = v
		}
		return values, nil
	}

	var values []float64
	sc := bufio.NewScanner(stdin)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", len(values), err)
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

func printResult(w io.Writer, res result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Index\tValue\tN\tStride\tOffset\tMemory\tKernel\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-----\t-----\t-\t------\t------\t------\t------\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "%d\t%g\t%d\t%d\t%d\t%s\t%s\n",
		res.index, res.value, res.n, res.stride, res.offset, res.where, res.kernel); err != nil {
		return err
	}
	return tw.Flush()
}

func printKernels(w io.Writer, kernels []idamax.KernelInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Kernel\tSIMD\tPriority\tSupported\n"); err != nil {
		return err
	}
	for _, k := range kernels {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%t\n", k.Name, k.SIMDLevel, k.Priority, k.Supported); err != nil {
			return err
		}
	}
	return tw.Flush()
}
