package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/mflett/calc"
)

const (
	prompt      = "> "
	historyFile = ".calc_history"
)

const helpText = `commands:
  /deg /rad                          switch angle mode
  /let <name>=<expr>                 define a variable (also /let <name> <expr>)
  /vars                              list variables
  /del <name>                        delete a variable
  /diff <expr> <var> <x0> [h]        numeric derivative (default h 1e-5)
  /solve <expr> <var> <x0> [maxit tol]
                                     Newton root search (defaults 30, 1e-10)
  /integ <expr> <var> <a> <b> [n]    Simpson integration (default n 200)
  /plot <expr> <var> <xmin> <xmax> [w h]
                                     character plot (default 60x20)
  /history                           show result history
  /save <file>                       save result history to a file
  /mc /mr /m+ [v] /m- [v]            memory register
  /hex <n> /bin <n>                  print an integer in another base
  /quit                              exit
a bare = repeats the last expression; ans holds the last result`

func main() {
	log.SetFlags(0)
	var evalStr string
	flag.StringVar(&evalStr, "e", "", "evaluate the given expression and exit")
	flag.Parse()

	conf, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	ctx := calc.NewContext(calc.Capacity(conf.Engine.Variables))
	if strings.EqualFold(conf.Engine.Angle, "deg") {
		ctx.SetMode(calc.Degree)
	}

	if evalStr != "" {
		v, err := ctx.Eval(evalStr)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%.15g\n", v)
		return
	}
	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			v, err := ctx.Eval(arg)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("%.15g\n", v)
		}
		return
	}
	os.Exit(repl(ctx, conf))
}

type session struct {
	ctx      *calc.Context
	hist     *history
	conf     config
	memory   float64
	lastExpr string
}

func repl(ctx *calc.Context, conf config) int {
	fmt.Printf("calc: angle mode %s, /help for commands, Ctrl+D to exit\n", ctx.Mode())

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	s := &session{ctx: ctx, hist: newHistory(conf.Repl.History), conf: conf}
	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				continue
			}
			fmt.Println()
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if line == "=" {
			if s.lastExpr == "" {
				fmt.Println("no expression to repeat")
				continue
			}
			line = s.lastExpr
		}
		if strings.HasPrefix(line, "/") {
			if s.command(line) {
				break
			}
			continue
		}
		s.evaluate(line)
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}
	return 0
}

func (s *session) evaluate(expr string) {
	v, err := s.ctx.Eval(expr)
	s.hist.add(expr, v, err)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	s.lastExpr = expr
	fmt.Printf("= %.15g\n", v)
}

// command dispatches a slash command. It reports whether the REPL should
// exit.
func (s *session) command(line string) bool {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case "/help":
		fmt.Println(helpText)
	case "/quit", "/exit":
		return true
	case "/deg":
		s.ctx.SetMode(calc.Degree)
		fmt.Println("angle mode: deg")
	case "/rad":
		s.ctx.SetMode(calc.Radian)
		fmt.Println("angle mode: rad")
	case "/mc":
		s.memory = 0
		fmt.Println("memory cleared")
	case "/mr":
		fmt.Printf("MR = %.15g\n", s.memory)
		s.ctx.Set("ans", s.memory)
	case "/m+", "/m-":
		s.memoryAdd(cmd, arg)
	case "/history":
		s.hist.print(os.Stdout)
	case "/save":
		if arg == "" {
			fmt.Println("usage: /save <file>")
			break
		}
		if err := s.hist.save(arg); err != nil {
			fmt.Println("save failed:", err)
			break
		}
		fmt.Println("history saved:", arg)
	case "/vars":
		s.printVars()
	case "/del":
		if arg == "" {
			fmt.Println("usage: /del <name>")
			break
		}
		name := strings.ToLower(arg)
		if s.ctx.Delete(name) {
			fmt.Println("deleted:", name)
		} else {
			fmt.Println("no such variable:", name)
		}
	case "/let":
		s.let(arg)
	case "/diff":
		s.diff(arg)
	case "/solve":
		s.solve(arg)
	case "/integ":
		s.integ(arg)
	case "/plot":
		s.plot(arg)
	case "/hex", "/bin":
		s.radix(cmd, arg)
	default:
		fmt.Printf("unknown command %s (/help for a list)\n", cmd)
	}
	return false
}

func (s *session) memoryAdd(cmd, arg string) {
	v := s.ctx.Ans()
	if arg != "" {
		var err error
		v, err = strconv.ParseFloat(arg, 64)
		if err != nil {
			fmt.Println("not a number:", arg)
			return
		}
	}
	if cmd == "/m-" {
		v = -v
	}
	s.memory += v
	fmt.Printf("M = %.15g\n", s.memory)
}

func (s *session) printVars() {
	names := s.ctx.Names()
	fmt.Println("variables:")
	for _, name := range names {
		v, _ := s.ctx.Lookup(name)
		fmt.Printf("  %-8s = %.15g\n", name, v)
	}
	fmt.Printf("  %-8s = %.15g\n", "ans", s.ctx.Ans())
}

// let handles "/let name=expr" and "/let name expr".
func (s *session) let(arg string) {
	if arg == "" {
		fmt.Println("usage: /let <name>=<expr>")
		return
	}
	name, rhs, found := strings.Cut(arg, "=")
	if !found {
		name, rhs, found = strings.Cut(arg, " ")
		if !found {
			fmt.Println("usage: /let <name>=<expr>")
			return
		}
	}
	name = strings.ToLower(strings.TrimSpace(name))
	rhs = strings.TrimSpace(rhs)
	if !validName(name) {
		fmt.Println("invalid variable name:", name)
		return
	}
	v, err := s.ctx.Eval(rhs)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if !s.ctx.Set(name, v) {
		fmt.Println("variable store is full")
		return
	}
	fmt.Printf("%s = %.15g\n", name, v)
}

func validName(name string) bool {
	if name == "" || len(name) > 15 {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c != '_' && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}

func (s *session) diff(arg string) {
	f := strings.Fields(arg)
	if len(f) < 3 {
		fmt.Println("usage: /diff <expr> <var> <x0> [h]")
		return
	}
	x0, ok := parseFloatArg(f[2], "x0")
	if !ok {
		return
	}
	h := 1e-5
	if len(f) > 3 {
		if h, ok = parseFloatArg(f[3], "h"); !ok {
			return
		}
	}
	d, err := s.ctx.Diff(f[0], f[1], x0, h)
	if err != nil {
		fmt.Println("/diff failed:", err)
		return
	}
	fmt.Printf("d/d%s %s | x=%.6g ~= %.15g (h=%.1e)\n", f[1], f[0], x0, d, h)
}

func (s *session) solve(arg string) {
	f := strings.Fields(arg)
	if len(f) < 3 {
		fmt.Println("usage: /solve <expr> <var> <x0> [maxit tol]")
		return
	}
	x0, ok := parseFloatArg(f[2], "x0")
	if !ok {
		return
	}
	maxit, tol := 30, 1e-10
	if len(f) > 3 {
		n, err := strconv.Atoi(f[3])
		if err != nil {
			fmt.Println("not an integer:", f[3])
			return
		}
		maxit = n
	}
	if len(f) > 4 {
		if tol, ok = parseFloatArg(f[4], "tol"); !ok {
			return
		}
	}
	root, err := s.ctx.Solve(f[0], f[1], x0, maxit, tol)
	if err != nil {
		fmt.Println("/solve failed:", err)
		return
	}
	fmt.Printf("root ~= %.15g\n", root)
}

func (s *session) integ(arg string) {
	f := strings.Fields(arg)
	if len(f) < 4 {
		fmt.Println("usage: /integ <expr> <var> <a> <b> [n]")
		return
	}
	a, ok := parseFloatArg(f[2], "a")
	if !ok {
		return
	}
	b, ok := parseFloatArg(f[3], "b")
	if !ok {
		return
	}
	n := 200
	if len(f) > 4 {
		m, err := strconv.Atoi(f[4])
		if err != nil {
			fmt.Println("not an integer:", f[4])
			return
		}
		n = m
	}
	v, err := s.ctx.Integrate(f[0], f[1], a, b, n)
	if err != nil {
		fmt.Println("/integ failed:", err)
		return
	}
	fmt.Printf("integral[%g,%g] %s d%s ~= %.15g (n=%d)\n", a, b, f[0], f[1], v, n)
}

func (s *session) plot(arg string) {
	f := strings.Fields(arg)
	if len(f) < 4 {
		fmt.Println("usage: /plot <expr> <var> <xmin> <xmax> [w h]")
		return
	}
	xmin, ok := parseFloatArg(f[2], "xmin")
	if !ok {
		return
	}
	xmax, ok := parseFloatArg(f[3], "xmax")
	if !ok {
		return
	}
	w, h := s.conf.Plot.Width, s.conf.Plot.Height
	if len(f) > 4 {
		n, err := strconv.Atoi(f[4])
		if err != nil {
			fmt.Println("not an integer:", f[4])
			return
		}
		w = n
	}
	if len(f) > 5 {
		n, err := strconv.Atoi(f[5])
		if err != nil {
			fmt.Println("not an integer:", f[5])
			return
		}
		h = n
	}
	p := s.ctx.Plot(f[0], f[1], xmin, xmax, w, h)
	fmt.Printf("\n y in [%.6g, %.6g]  x in [%.6g, %.6g]\n", p.Ymin, p.Ymax, p.Xmin, p.Xmax)
	for i := 0; i < p.Height; i++ {
		fmt.Printf(" %s\n", p.Row(i))
	}
	if p.Skipped > 0 {
		fmt.Printf(" (%d points skipped)\n", p.Skipped)
	}
}

func (s *session) radix(cmd, arg string) {
	v, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		fmt.Println("not an unsigned integer:", arg)
		return
	}
	if cmd == "/hex" {
		fmt.Printf("0x%X\n", v)
	} else {
		fmt.Printf("%b\n", v)
	}
}

func parseFloatArg(s, what string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fmt.Printf("not a number for %s: %s\n", what, s)
		return 0, false
	}
	return v, true
}
