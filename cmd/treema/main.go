package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	treema "github.com/reoring/treema"
	"github.com/reoring/treema/apidef"
	"github.com/reoring/treema/diag"
	"github.com/reoring/treema/i18n"
	"github.com/reoring/treema/source/json"
	"github.com/reoring/treema/source/yaml"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "check":
		checkCmd(os.Args[2:])
	case "params":
		paramsCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "treema CLI\n\nUsage:\n  treema check -schema ns.json -type TypeName doc.json\n  treema params -schema ns.json -function funcName args.json\n\nDocuments may be JSON or YAML (by extension).")
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var schemaFile, typeName, lang string
	var strict bool
	fs.StringVar(&schemaFile, "schema", "", "namespace definition file")
	fs.StringVar(&typeName, "type", "", "record type to validate against")
	fs.BoolVar(&strict, "strict", false, "reject unknown keys")
	fs.StringVar(&lang, "lang", "en", "message language (en/ja)")
	_ = fs.Parse(args)
	if schemaFile == "" || typeName == "" || fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	i18n.SetLanguage(lang)

	ns := loadNamespace(schemaFile)
	rt, ok := ns.Types.Lookup(typeName)
	if !ok {
		fatalf("type %q not found in namespace %s (have: %s)",
			typeName, ns.Name, strings.Join(ns.Types.Names(), ", "))
	}

	doc := loadDocument(fs.Arg(0))
	opt := treema.DecodeOpt{}
	if strict {
		opt.Unknown = treema.UnknownStrict
	}
	if _, err := rt.Decode(doc, opt); err != nil {
		reportIssues(err)
	}
	fmt.Printf("%s: ok (%s/%s)\n", fs.Arg(0), ns.Name, typeName)
}

func paramsCmd(args []string) {
	fs := flag.NewFlagSet("params", flag.ExitOnError)
	var schemaFile, funcName, lang string
	fs.StringVar(&schemaFile, "schema", "", "namespace definition file")
	fs.StringVar(&funcName, "function", "", "function whose parameters to validate")
	fs.StringVar(&lang, "lang", "en", "message language (en/ja)")
	_ = fs.Parse(args)
	if schemaFile == "" || funcName == "" || fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	i18n.SetLanguage(lang)

	ns := loadNamespace(schemaFile)
	fn, ok := ns.Functions[funcName]
	if !ok {
		fatalf("function %q not found in namespace %s (have: %s)",
			funcName, ns.Name, strings.Join(ns.FunctionNames(), ", "))
	}

	doc := loadDocument(fs.Arg(0))
	if _, err := fn.CreateParams(doc); err != nil {
		reportIssues(err)
	}
	fmt.Printf("%s: ok (%s.%s)\n", fs.Arg(0), ns.Name, funcName)
}

func loadNamespace(path string) *treema.Namespace {
	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("%v", err)
	}
	ns, err := apidef.LoadNamespaceJSON(data)
	if err != nil {
		fatalf("load %s: %v", path, err)
	}
	return ns
}

func loadDocument(path string) *treema.Node {
	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("%v", err)
	}
	var n *treema.Node
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		n, err = yaml.Parse(data)
	default:
		n, err = json.Parse(data)
	}
	if err != nil {
		reportIssues(err)
	}
	return n
}

func reportIssues(err error) {
	if iss, ok := treema.AsIssues(err); ok {
		diag.NewPrinter(os.Stderr).Print(iss)
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
