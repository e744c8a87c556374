package types

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter читает ответы оператора из терминала
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	fd := -1
	if f, ok := in.(*os.File); ok {
		fd = int(f.Fd())
	}
	return &Prompter{in: bufio.NewReader(in), out: out, fd: fd}
}

// Line запрашивает строку. Пустой ввод возвращает def.
func (p *Prompter) Line(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("ошибка чтения ввода: %w", err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

// Password запрашивает пароль без эха, если ввод - терминал
func (p *Prompter) Password(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)

	if p.fd >= 0 && term.IsTerminal(p.fd) {
		pw, err := term.ReadPassword(p.fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		return string(pw), nil
	}

	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("ошибка чтения пароля: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm задает вопрос да/нет. По умолчанию - нет.
func (p *Prompter) Confirm(question string) bool {
	answer, err := p.Line(question+" (y/N)", "")
	if err != nil {
		return false
	}

	switch strings.ToLower(answer) {
	case "y", "yes", "д", "да":
		return true
	default:
		return false
	}
}
