package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// errAborted пользователь закрыл ввод (EOF или Ctrl+D)
var errAborted = errors.New("input aborted")

// prompter читает ответы построчно и переспрашивает при ошибке
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(r), out: w}
}

func (p *prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errAborted
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// ask задает вопрос; пустой ответ означает значение по умолчанию
func (p *prompter) ask(label, def string, check func(string) error) (string, error) {
	for {
		if def != "" {
			fmt.Fprintf(p.out, "? %s [%s]: ", label, def)
		} else {
			fmt.Fprintf(p.out, "? %s: ", label)
		}

		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		if answer == "" {
			answer = def
		}
		if err := check(answer); err != nil {
			fmt.Fprintf(p.out, "  ! %v\n", err)
			continue
		}
		return answer, nil
	}
}

// askFloat читает число; запятые-разделители тысяч допускаются
func (p *prompter) askFloat(label, def string, check func(float64) error) (float64, error) {
	var value float64
	_, err := p.ask(label, def, func(s string) error {
		v, err := parseAmount(s)
		if err != nil {
			return err
		}
		if err := check(v); err != nil {
			return err
		}
		value = v
		return nil
	})
	return value, err
}

func (p *prompter) askInt(label, def string, check func(int) error) (int, error) {
	var value int
	_, err := p.ask(label, def, func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%q is not a whole number", s)
		}
		if err := check(v); err != nil {
			return err
		}
		value = v
		return nil
	})
	return value, err
}

// choose выводит нумерованный список и возвращает индекс выбранного варианта.
// Вариант можно выбрать номером или названием без учета регистра.
func (p *prompter) choose(label string, options []string, def int) (int, error) {
	fmt.Fprintf(p.out, "? %s\n", label)
	for i, o := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, o)
	}

	var choice int
	_, err := p.ask("Select", strconv.Itoa(def+1), func(s string) error {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(options) {
			choice = n - 1
			return nil
		}
		for i, o := range options {
			if strings.EqualFold(s, o) {
				choice = i
				return nil
			}
		}
		return fmt.Errorf("choose a number between 1 and %d", len(options))
	})
	return choice, err
}

func (p *prompter) confirm(label string, def bool) (bool, error) {
	d := "y/N"
	if def {
		d = "Y/n"
	}
	var yes bool
	_, err := p.ask(label+" ("+d+")", "", func(s string) error {
		switch strings.ToLower(s) {
		case "":
			yes = def
		case "y", "yes":
			yes = true
		case "n", "no":
			yes = false
		default:
			return errors.New("answer y or n")
		}
		return nil
	})
	return yes, err
}

func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}
