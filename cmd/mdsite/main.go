// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// This CLI utility converts markdown documents into HTML pages of a static site.
//
// Usage:
//   mdsite [command]
//
// Available Commands:
//   help        Help about any command
//   html        Convert a markdown document to an HTML fragment
//   page        Generate one page from a markdown document and a template
//   site        Generate every page of a site and copy its static files
//   title       Print the title of a markdown document
//
// Flags:
//   -h, --help           help for mdsite
//       --trace string   trace level: error, info or debug
//
// Use "mdsite [command] --help" for more information about a command.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"time"

	"akhil.cc/mdsite/gen/html"
	"akhil.cc/mdsite/internal/site"
	"akhil.cc/mdsite/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

func prefix(msg string, err error) error {
	return errors.New(msg + err.Error())
}

// input reads the named file, or standard input if args is empty.
func input(args []string) ([]byte, error) {
	if len(args) == 0 {
		return ioutil.ReadAll(os.Stdin)
	}
	return ioutil.ReadFile(args[0])
}

// output returns the named file, or standard output if name is empty.
func output(name string) (io.WriteCloser, error) {
	if len(name) == 0 {
		return os.Stdout, nil
	}
	return os.Create(name)
}

func main() {
	var traceLevel string
	rootCmd := &cobra.Command{
		Use:   "mdsite",
		Short: "static site generation from markdown documents",
		Long: `This CLI utility converts markdown documents into HTML pages of
a static site.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			t := gologadapter.New()
			t.SetTraceLevel(tracing.TraceLevelFromString(traceLevel))
			tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace { return t }))
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "error", "``trace level: error, info or debug")

	var (
		outputfile string
		timeout    time.Duration
		builder    html.Builder
	)
	prefixHTML := "(HTML) "
	htmlCmd := &cobra.Command{
		Use:   "html [input] [-o output]",
		Short: "Convert a markdown document to an HTML fragment",
		Long: `This command parses a markdown document into a document tree and
writes the tree as HTML, wrapped in a single <div>.

If no input file is specified, input is read from
standard input. Similarly, if no output argument is
specified, output is written to standard output.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := input(args)
			if err != nil {
				return prefix(prefixHTML, err)
			}
			root, err := builder.Build(parser.Blocks(string(src)))
			if err != nil {
				return prefix(prefixHTML, err)
			}
			out, err := output(outputfile)
			if err != nil {
				return prefix(prefixHTML, err)
			}
			defer out.Close()
			ctx := context.Background()
			if timeout > -1 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			g := html.GenContext(ctx, root)
			g.Stdout = out
			if err := g.Run(); err != nil {
				return prefix(prefixHTML, err)
			}
			return nil
		},
	}
	// pflag includes the argument type when it unquotes its usage.
	// To prevent this behavior we prefix the usage with backquotes ``.
	htmlCmd.Flags().StringVarP(&outputfile, "output", "o", "", "``name of the output file")
	htmlCmd.Flags().DurationVarP(&timeout, "timeout", "t", -1, "``timeout used to halt the generator")
	// Set string version of default value to be zero-value to prevent it from being printed by FlagUsages.
	htmlCmd.Flags().Lookup("timeout").DefValue = "0"
	htmlCmd.Flags().BoolVar(&builder.HeadingIDs, "heading-ids", false, "add id attributes to headings")
	htmlCmd.Flags().BoolVar(&builder.CodeLanguage, "code-language", false, "mark code blocks with the language of their fence")

	prefixTitle := "(title) "
	titleCmd := &cobra.Command{
		Use:                   "title [input]",
		Short:                 "Print the title of a markdown document",
		Long:                  `This command prints the text of the first heading of a markdown document.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := input(args)
			if err != nil {
				return prefix(prefixTitle, err)
			}
			title, err := parser.Title(string(src))
			if err != nil {
				return prefix(prefixTitle, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), title)
			return nil
		},
	}

	var tmplfile string
	prefixPage := "(page) "
	pageCmd := &cobra.Command{
		Use:   "page input -t template [-o output]",
		Short: "Generate one page from a markdown document and a template",
		Long: `This command renders a markdown document and fills the
{{ Title }} and {{ Content }} placeholders of a template with its
title and HTML.`,
		Args:                  cobra.ExactArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(tmplfile) == 0 {
				return prefix(prefixPage, errors.New("no template given"))
			}
			dest := outputfile
			if len(dest) == 0 {
				dest = "index.html"
			}
			if _, err := site.GeneratePage(args[0], tmplfile, dest, builder); err != nil {
				return prefix(prefixPage, err)
			}
			return nil
		},
	}
	pageCmd.Flags().StringVarP(&tmplfile, "template", "t", "", "``template file")
	pageCmd.Flags().StringVarP(&outputfile, "output", "o", "", "``name of the output file (default index.html)")
	pageCmd.Flags().BoolVar(&builder.HeadingIDs, "heading-ids", false, "add id attributes to headings")
	pageCmd.Flags().BoolVar(&builder.CodeLanguage, "code-language", false, "mark code blocks with the language of their fence")

	var configfile string
	conf := site.DefaultConfig()
	prefixSite := "(site) "
	siteCmd := &cobra.Command{
		Use:   "site [-c config]",
		Short: "Generate every page of a site and copy its static files",
		Long: `This command copies the static directory into a freshly cleaned
public directory and generates a page for every markdown file of the
content directory. Settings are read from a TOML file if one is given;
flags override it.`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := conf
			if len(configfile) != 0 {
				var err error
				if c, err = site.LoadConfig(configfile); err != nil {
					return prefix(prefixSite, err)
				}
				overrideFlags(cmd, &c, conf)
			}
			if err := site.CopyStatic(c.Static, c.Public, true); err != nil {
				return prefix(prefixSite, err)
			}
			pages, err := site.GeneratePagesRecursive(c.Content, c.Template, c.Public, c.Builder())
			if err != nil {
				return prefix(prefixSite, err)
			}
			return site.WriteReport(cmd.OutOrStdout(), pages)
		},
	}
	siteCmd.Flags().StringVarP(&configfile, "config", "c", "", "``TOML configuration file")
	siteCmd.Flags().StringVar(&conf.Content, "content", conf.Content, "``directory of markdown sources")
	siteCmd.Flags().StringVar(&conf.Static, "static", conf.Static, "``directory of static files")
	siteCmd.Flags().StringVar(&conf.Public, "public", conf.Public, "``output directory")
	siteCmd.Flags().StringVar(&conf.Template, "template", conf.Template, "``page template")
	siteCmd.Flags().BoolVar(&conf.HeadingIDs, "heading-ids", false, "add id attributes to headings")
	siteCmd.Flags().BoolVar(&conf.CodeLanguage, "code-language", false, "mark code blocks with the language of their fence")

	rootCmd.AddCommand(htmlCmd, titleCmd, pageCmd, siteCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// overrideFlags copies the values of flags set on the command line from
// flags into c.
func overrideFlags(cmd *cobra.Command, c *site.Config, flags site.Config) {
	set := func(name string) bool { return cmd.Flags().Changed(name) }
	if set("content") {
		c.Content = flags.Content
	}
	if set("static") {
		c.Static = flags.Static
	}
	if set("public") {
		c.Public = flags.Public
	}
	if set("template") {
		c.Template = flags.Template
	}
	if set("heading-ids") {
		c.HeadingIDs = flags.HeadingIDs
	}
	if set("code-language") {
		c.CodeLanguage = flags.CodeLanguage
	}
}
