package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cloud-ru/firefly-go/internal/logging"
	"github.com/cloud-ru/firefly-go/internal/service"
	"github.com/cloud-ru/firefly-go/internal/validators"
	"github.com/mattn/go-isatty"
)

const helpText = `Commands:
  principal <amount>     annual <amount>        frequency daily|monthly|annually
  rate <percent>         monthly <amount>       compare
  years <n>              load <file.yaml>       reset
  months <n>             help                   quit`

// App цикл команд поверх экрана калькулятора
type App struct {
	screen *Screen
	in     *bufio.Scanner
	out    io.Writer
	clear  bool
	logger *logging.Logger
}

// NewApp создает приложение; экран сразу рассчитывается со значениями по умолчанию
func NewApp(ctx context.Context, svc *service.Service, in io.Reader, out io.Writer, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	screen, err := NewScreen(ctx, svc)
	if err != nil {
		return nil, err
	}
	clearScreen := false
	if f, ok := out.(*os.File); ok {
		clearScreen = isatty.IsTerminal(f.Fd())
	}
	return &App{
		screen: screen,
		in:     bufio.NewScanner(in),
		out:    out,
		clear:  clearScreen,
		logger: logger.WithComponent(logging.ComponentTUI),
	}, nil
}

// Screen текущий экран
func (a *App) Screen() *Screen {
	return a.screen
}

// Run читает команды до quit или конца ввода
func (a *App) Run(ctx context.Context) error {
	status := "Type help for commands."
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.draw(status); err != nil {
			return err
		}
		if !a.in.Scan() {
			return a.in.Err()
		}

		line := strings.TrimSpace(a.in.Text())
		if line == "" {
			status = ""
			continue
		}
		var quit bool
		status, quit = a.Execute(line)
		if quit {
			return nil
		}
	}
}

func (a *App) draw(status string) error {
	if a.clear {
		fmt.Fprint(a.out, "\x1b[H\x1b[2J")
	}
	if err := a.screen.Render(a.out); err != nil {
		return err
	}
	if status != "" {
		fmt.Fprintln(a.out, status)
	}
	_, err := fmt.Fprint(a.out, "> ")
	return err
}

// valueCommands команды, принимающие ровно один аргумент
var valueCommands = map[string]bool{
	"principal": true,
	"rate":      true,
	"years":     true,
	"months":    true,
	"monthly":   true,
	"annual":    true,
	"frequency": true,
	"load":      true,
}

// Execute выполняет одну команду и возвращает строку статуса
func (a *App) Execute(line string) (status string, quit bool) {
	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	switch cmd {
	case "quit", "q", "exit":
		return "", true
	case "help", "?":
		return helpText, false
	case "reset", "r":
		return a.result("Reset to defaults.", a.screen.Reset()), false
	case "compare", "c":
		var b strings.Builder
		if err := a.screen.Compare(&b); err != nil {
			return a.result("", err), false
		}
		return strings.TrimRight(b.String(), "\n"), false
	}

	if !valueCommands[cmd] {
		return fmt.Sprintf("unknown command %q (type help for commands)", cmd), false
	}
	if len(args) != 1 {
		return fmt.Sprintf("usage: %s <value> (type help for commands)", cmd), false
	}
	arg := args[0]

	var err error
	switch cmd {
	case "principal":
		err = withFloat(arg, a.screen.SetPrincipal)
	case "rate":
		err = withFloat(arg, a.screen.SetRate)
	case "years":
		err = withInt(arg, a.screen.SetYears)
	case "months":
		err = withInt(arg, a.screen.SetMonths)
	case "monthly":
		err = withFloat(arg, a.screen.SetMonthlyContribution)
	case "annual":
		err = withFloat(arg, a.screen.SetAnnualContribution)
	case "frequency":
		freq, perr := validators.ParseFrequency(arg)
		if perr != nil {
			err = perr
		} else {
			err = a.screen.SetFrequency(freq)
		}
	case "load":
		name, lerr := a.screen.Load(arg)
		if lerr != nil {
			return a.result("", lerr), false
		}
		return "Loaded " + name + ".", false
	}
	return a.result("Updated "+cmd+".", err), false
}

func (a *App) result(ok string, err error) string {
	if err != nil {
		a.logger.Debug("command rejected", logging.FieldError, err.Error())
		return "Error: " + err.Error()
	}
	return ok
}

func withFloat(s string, set func(float64) error) error {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	return set(v)
}

func withInt(s string, set func(int) error) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%q is not a whole number", s)
	}
	return set(v)
}
