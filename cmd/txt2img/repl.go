package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/wbrown/txt2img"
)

// settings holds the render configuration; in interactive mode the
// commands below change it between renders.
type settings struct {
	output    string
	table     *txt2img.Table
	fg, bg    txt2img.RGB
	letterGap int
	wordGap   int
	margins   txt2img.Margins
	scale     int
	count     int
}

func (s *settings) setColor(dst *txt2img.RGB, spec string) error {
	c, err := txt2img.ParseColorString(spec)
	if err != nil {
		return err
	}
	*dst = c
	return nil
}

func (s *settings) renderer() *txt2img.Renderer {
	return txt2img.NewRenderer(
		txt2img.WithTable(s.table),
		txt2img.WithForeground(s.fg),
		txt2img.WithBackground(s.bg),
		txt2img.WithLetterGap(s.letterGap),
		txt2img.WithWordGap(s.wordGap),
		txt2img.WithMargins(s.margins),
		txt2img.WithScale(s.scale),
	)
}

func (s *settings) render(text, path string) (txt2img.Result, error) {
	res, err := s.renderer().Render(text, path)
	if err != nil {
		return res, err
	}
	pterm.Success.Println(fmt.Sprintf("Image saved to %s (%dx%d px)", res.Path, res.Width, res.Height))
	return res, nil
}

func (s *settings) String() string {
	return fmt.Sprintf("( fg=%s bg=%s gap=%d wordgap=%d margins=%d/%d/%d/%d scale=%d )",
		s.fg.Hex(), s.bg.Hex(), s.letterGap, s.wordGap,
		s.margins.Top, s.margins.Bottom, s.margins.Left, s.margins.Right, s.scale)
}

// numbered inserts a sequence number before the extension,
// e.g. "out/hola.png" → "out/hola-003.png".
func numbered(path string, n int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%03d%s", strings.TrimSuffix(path, ext), n, ext)
}

// repl starts interactive mode.
func repl(s *settings) error {
	rl, err := readline.New("txt2img > ")
	if err != nil {
		return err
	}
	defer rl.Close()

	pterm.Info.Println("Type a line to render it, :help for commands, quit with <ctrl>D")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			quit, err := s.command(strings.Fields(line[1:]))
			if err != nil {
				pterm.Error.Println(err.Error())
				continue
			}
			if quit {
				break
			}
			continue
		}
		s.count++
		if _, err := s.render(line, numbered(s.output, s.count)); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	pterm.Info.Println("Good bye!")
	return nil
}

const replHelp = `:fg <color>      foreground (name, #RRGGBB or r,g,b)
:bg <color>      background
:gap <n>         letter gap
:wordgap <n>     word gap
:margin <n>      margin on all sides
:scale <n>       scale factor
:show            print the current settings
:quit            leave`

// command executes one ':' command. Settings are only changed when the
// argument is valid.
func (s *settings) command(args []string) (quit bool, err error) {
	if len(args) == 0 {
		return false, fmt.Errorf("empty command, try :help")
	}
	cmd := strings.ToLower(args[0])
	switch cmd {
	case "quit", "q":
		return true, nil
	case "help":
		pterm.Println(replHelp)
		return false, nil
	case "show":
		pterm.Println(s.String())
		return false, nil
	}
	if len(args) != 2 {
		return false, fmt.Errorf(":%s needs exactly one argument", cmd)
	}
	arg := args[1]
	switch cmd {
	case "fg":
		return false, s.setColor(&s.fg, arg)
	case "bg":
		return false, s.setColor(&s.bg, arg)
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return false, fmt.Errorf(":%s needs an integer, got %q", cmd, arg)
	}
	if n < 0 || (cmd == "scale" && n < 1) {
		return false, fmt.Errorf(":%s out of range: %d", cmd, n)
	}
	switch cmd {
	case "gap":
		s.letterGap = n
	case "wordgap":
		s.wordGap = n
	case "margin":
		s.margins = txt2img.UniformMargins(n)
	case "scale":
		s.scale = n
	default:
		return false, fmt.Errorf("unknown command :%s, try :help", cmd)
	}
	tracer().Debugf("settings now %s", s)
	return false, nil
}
