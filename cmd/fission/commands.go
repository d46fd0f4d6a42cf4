package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	"google.golang.org/grpc"

	"github.com/wippyai/fission/errors"
	"github.com/wippyai/fission/gateway"
	"github.com/wippyai/fission/loader"
	"github.com/wippyai/fission/service"
	"github.com/wippyai/fission/service/pb"
)

// addrFlag is an address flag accepting decimal, 0x hex or 0o octal.
type addrFlag struct {
	v   uint64
	set bool
}

func (a *addrFlag) String() string { return fmt.Sprintf("%#x", a.v) }

func (a *addrFlag) Set(s string) error {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return err
	}
	a.v, a.set = v, true
	return nil
}

// target is the input file of a command, either raw bytes or a parsed
// executable.
type target struct {
	bin  *loader.Binary
	code []byte
	base uint64
	lang string
}

func openTarget(e *env, path string, base addrFlag) (*target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t := &target{lang: e.cfg.Language}
	if loader.Detect(data) == "" {
		t.code, t.base = data, base.v
		if !base.set {
			t.base = 0x1000
		}
		return t, nil
	}

	bin, err := loader.Parse(data)
	if err != nil {
		return nil, err
	}
	bin.Path = path
	t.bin = bin
	t.code, t.base, err = bin.Code()
	if err != nil {
		return nil, err
	}
	if e.lang == "" {
		t.lang = bin.Language
	}
	return t, nil
}

func (t *target) handle(e *env, extra ...gateway.Option) (*gateway.Handle, error) {
	opts := append(e.cfg.GatewayOptions(), gateway.WithLanguage(t.lang))
	return gateway.Create(e.cfg.SpecDir, append(opts, extra...)...)
}

func newFlags(name string, e *env) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

func oneFile(fs *flag.FlagSet) (string, error) {
	if fs.NArg() != 1 {
		fs.Usage()
		return "", flag.ErrHelp
	}
	return fs.Arg(0), nil
}

func cmdDisasm(e *env, args []string) error {
	fs := newFlags("disasm", e)
	var base, addr addrFlag
	fs.Var(&base, "base", "Load address of a raw file (default 0x1000)")
	fs.Var(&addr, "addr", "Start address (default: start of code)")
	n := fs.Int("n", e.cfg.MaxInstructions, "Maximum instructions")
	capacity := fs.Int("cap", e.cfg.OutputCapacity, "Output buffer capacity in bytes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := oneFile(fs)
	if err != nil {
		return err
	}

	t, err := openTarget(e, path, base)
	if err != nil {
		return err
	}
	code, start := t.code, t.base
	if addr.set {
		if addr.v < t.base || addr.v-t.base >= uint64(len(code)) {
			return errors.InvalidInput(errors.PhaseDisassemble, fmt.Sprintf("address %#x outside code", addr.v))
		}
		code, start = code[addr.v-t.base:], addr.v
	}

	h, err := t.handle(e, gateway.WithMaxInstructions(*n))
	if err != nil {
		return err
	}
	defer h.Destroy()

	out := make([]byte, max(*capacity, 1))
	written, err := h.Disassemble(code, start, out)
	if err != nil {
		return err
	}
	_, err = e.stdout.Write(out[:written])
	return err
}

func cmdDecompile(e *env, args []string) error {
	fs := newFlags("decompile", e)
	var base, addr addrFlag
	fs.Var(&base, "base", "Load address of a raw file (default 0x1000)")
	fs.Var(&addr, "addr", "Function address (default: entry point or base)")
	fn := fs.String("func", "", "Function name (executables only)")
	blocks := fs.Bool("blocks", false, "Print the basic block listing")
	capacity := fs.Int("cap", e.cfg.OutputCapacity, "Output buffer capacity in bytes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := oneFile(fs)
	if err != nil {
		return err
	}

	t, err := openTarget(e, path, base)
	if err != nil {
		return err
	}
	h, err := t.handle(e)
	if err != nil {
		return err
	}
	defer h.Destroy()

	req := gateway.Request{Code: t.code, Base: t.base, Entry: t.base}
	if t.bin != nil {
		req = gateway.Request{Image: t.bin.Image(), Entry: t.bin.Entry}
		if *fn != "" {
			f, ok := t.bin.FindFunction(*fn)
			if !ok {
				return errors.NotFound(errors.PhaseDecompile, "function", *fn)
			}
			req.Entry = f.Addr
		}
	}
	if addr.set {
		req.Entry = addr.v
	}

	// Raw input decompiled at its base goes through the fixed-capacity
	// buffer path, like a foreign caller would.
	if t.bin == nil && req.Entry == t.base && !*blocks {
		out := make([]byte, max(*capacity, 1))
		n, err := h.Decompile(t.code, t.base, out)
		if err != nil {
			return err
		}
		_, err = e.stdout.Write(out[:n])
		return err
	}

	a, err := h.Analyze(req)
	if err != nil {
		return err
	}
	fmt.Fprint(e.stdout, a.C)
	if *blocks {
		for _, b := range a.Blocks {
			fmt.Fprintf(e.stdout, "\n// block %#x-%#x\n", b.Start, b.End)
			for _, inst := range b.Instructions {
				fmt.Fprintf(e.stdout, "//   %x:  %s\n", inst.Address, inst.Text())
			}
		}
	}
	return nil
}

func cmdInfo(e *env, args []string) error {
	fs := newFlags("info", e)
	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := oneFile(fs)
	if err != nil {
		return err
	}
	bin, err := loader.Open(path)
	if err != nil {
		return err
	}

	fmt.Fprintln(e.stdout, bin.Summary())
	fmt.Fprintln(e.stdout, "\nSections:")
	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	for _, s := range bin.Sections {
		perm := []byte("---")
		if s.Read {
			perm[0] = 'r'
		}
		if s.Write {
			perm[1] = 'w'
		}
		if s.Exec {
			perm[2] = 'x'
		}
		fmt.Fprintf(tw, "  %s\t%#x\t%#x\t%s\n", s.Name, s.Addr, s.Size, perm)
	}
	tw.Flush()

	fmt.Fprintln(e.stdout, "\nFunctions:")
	for _, f := range bin.SortedFunctions() {
		kind := ""
		switch {
		case f.Import:
			kind = " [import]"
		case f.Export:
			kind = " [export]"
		}
		fmt.Fprintf(tw, "  %#x\t%s%s\n", f.Addr, f.Name, kind)
	}
	return tw.Flush()
}

func cmdServe(e *env, args []string) error {
	fs := newFlags("serve", e)
	listen := fs.String("listen", e.cfg.Listen, "Listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	srv, err := service.NewServer(e.cfg.SpecDir, e.log.Named("service"), e.cfg.GatewayOptions()...)
	if err != nil {
		return err
	}
	defer srv.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return service.Serve(ctx, *listen, func(_ context.Context, _ net.Listener, g *grpc.Server) error {
		srv.Register(g)
		return nil
	})
}

func cmdPing(e *env, args []string) error {
	fs := newFlags("ping", e)
	addr := fs.String("addr", e.cfg.Listen, "Service address")
	timeout := fs.Duration("timeout", 5*time.Second, "Call timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	return service.WithConn(ctx, *addr, func(ctx context.Context, conn *grpc.ClientConn) error {
		resp, err := service.NewClient(conn).Ping(ctx, &pb.PingRequest{})
		if err != nil {
			return err
		}
		fmt.Fprintf(e.stdout, "%s alive=%v\n", *addr, resp.Alive)
		return nil
	})
}
