package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"

	napiruntime "github.com/wippyai/napi-runtime"
	"github.com/wippyai/napi-runtime/config"
	"github.com/wippyai/napi-runtime/env"
	"github.com/wippyai/napi-runtime/loader"
	"github.com/wippyai/napi-runtime/value"
	"github.com/wippyai/napi-runtime/wasmshim"
)

func main() {
	var (
		addonFile   = flag.String("addon", "", "Path to add-on (.node shared object or .wasm)")
		shimFile    = flag.String("shim", "", "Path to the native shim library (required for .node add-ons)")
		funcName    = flag.String("func", "", "Export to call (optional)")
		argsStr     = flag.String("args", "", "Comma-separated arguments (numbers and strings)")
		configFile  = flag.String("config", "", "Runtime options YAML")
		list        = flag.Bool("list", false, "List exports and exit")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *addonFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: napi-run -addon <file.node> -shim <libnapi_shim.so> [-func name] [-args a,b]")
		fmt.Fprintln(os.Stderr, "       napi-run -addon <file.wasm> [-func name]")
		fmt.Fprintln(os.Stderr, "       napi-run -addon <file> -list")
		fmt.Fprintln(os.Stderr, "       napi-run -addon <file> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			env.SetLogger(logger)
		}
	}

	if *interactive {
		if err := runInteractive(*addonFile, *shimFile, *configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*addonFile, *shimFile, *funcName, *argsStr, *configFile, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadModule(addonFile, shimFile, configFile string) (*napiruntime.Runtime, *napiruntime.Module, error) {
	opts := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, err
		}
		opts = loaded
	}

	rt := napiruntime.NewWithOptions(opts)

	var mod *napiruntime.Module
	var err error
	if strings.HasSuffix(addonFile, ".wasm") {
		ctx := context.Background()
		wr := wazero.NewRuntime(ctx)
		shim := wasmshim.New(rt)
		if err := shim.Instantiate(ctx, wr); err != nil {
			rt.Close()
			return nil, nil, err
		}
		data, rerr := os.ReadFile(addonFile)
		if rerr != nil {
			rt.Close()
			return nil, nil, rerr
		}
		mod, err = shim.Register(ctx, wr, data, addonFile)
	} else {
		if shimFile != "" {
			if err := loader.InstallShim(shimFile); err != nil {
				rt.Close()
				return nil, nil, err
			}
		}
		mod, err = loader.Open(rt, addonFile)
	}
	if err != nil {
		rt.Close()
		return nil, nil, err
	}
	return rt, mod, nil
}

func run(addonFile, shimFile, funcName, argsStr, configFile string, listOnly bool) error {
	rt, mod, err := loadModule(addonFile, shimFile, configFile)
	if err != nil {
		return err
	}
	defer rt.Close()
	defer mod.Close()

	names := mod.ExportNames()
	fmt.Printf("Addon: %s\n", addonFile)
	fmt.Printf("Exports: %d\n", len(names))
	for _, name := range names {
		v, _ := mod.Export(name)
		fmt.Printf("  %s: %s\n", name, describeExport(v))
	}

	if listOnly {
		return nil
	}

	if funcName == "" {
		// A single callable export is an unambiguous entry point.
		var callables []string
		for _, name := range names {
			if v, _ := mod.Export(name); isCallable(v) {
				callables = append(callables, name)
			}
		}
		if len(callables) == 1 {
			funcName = callables[0]
		} else {
			fmt.Printf("\nNo function specified. Use -func to pick one.\n")
			return nil
		}
	}

	args := parseArgs(argsStr)
	fmt.Printf("\nCalling %s(%s)...\n", funcName, argsStr)
	result, err := mod.Call(funcName, args...)
	rt.Poll()
	if err != nil {
		return err
	}
	fmt.Printf("Result: %s\n", value.ToString(result))
	return nil
}

func isCallable(v any) bool {
	_, ok := v.(*value.Function)
	return ok
}

func describeExport(v any) string {
	switch x := v.(type) {
	case *value.Function:
		return "function " + x.Name
	case *value.Object:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// parseArgs turns "2,3.5,hello" into host values: numbers when they
// parse, booleans for true/false, strings otherwise.
func parseArgs(argsStr string) []any {
	if argsStr == "" {
		return nil
	}
	parts := strings.Split(argsStr, ",")
	out := make([]any, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		switch {
		case p == "true":
			out = append(out, true)
		case p == "false":
			out = append(out, false)
		case p == "null":
			out = append(out, nil)
		default:
			if f, err := strconv.ParseFloat(p, 64); err == nil {
				out = append(out, f)
			} else {
				out = append(out, strings.Trim(p, `"`))
			}
		}
	}
	return out
}
