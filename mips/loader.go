package mips

import (
	"bufio"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Source is a loaded simulator source file: the validated CPU
// configuration followed by the label and instruction lines in file
// order.
type Source struct {
	Config Config
	Lines  []string
}

// Loader consumes the two-section source format. The first relevant
// line is the config_cpu line; the rest are instruction and label
// lines. Blank lines and '#' comments are skipped. Lines may use .equ
// constants and compile-time $() expressions.
type Loader struct {
	Verbose bool              // If set, verbosely logs the loader actions.
	Equate  map[string]string // Map of equates.
}

var (
	configPattern = regexp.MustCompile(`\[(.*)\]`)
	parenPattern  = regexp.MustCompile(`\$\([^\$]*\)`)
)

// LoadSource loads a source file with a fresh Loader.
func LoadSource(input io.Reader) (src *Source, err error) {
	loader := &Loader{}
	return loader.Load(input)
}

// parenEval does compile-time $(...) evaluations.
func (ld *Loader) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range ld.Equate {
		v64, verr := strconv.ParseInt(str, 0, 64)
		if verr != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// expandLine applies $() evaluation and equate substitution to a line.
func (ld *Loader) expandLine(line string) (out string, err error) {
	out = parenPattern.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := ld.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return strconv.FormatInt(value, 10)
	})
	if err != nil {
		return
	}

	words := strings.Fields(out)
	for n, word := range words {
		comma := strings.HasSuffix(word, ",")
		token := strings.TrimSuffix(word, ",")
		equate, ok := ld.Equate[token]
		if !ok {
			continue
		}
		if comma {
			equate += ","
		}
		words[n] = equate
	}
	out = strings.Join(words, " ")

	return
}

// Load parses an input stream into a Source.
func (ld *Loader) Load(input io.Reader) (src *Source, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	ld.Equate = make(map[string]string, 16)

	src = &Source{}
	configured := false

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if ld.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, "#")
		line = strings.TrimSpace(text_comment[0])
		if len(line) == 0 {
			continue
		}

		// The first relevant line must configure the CPU.
		if !configured {
			if !strings.HasPrefix(strings.ToLower(line), "config_cpu") {
				err = ErrInvalidConfig
				return
			}
			m := configPattern.FindStringSubmatch(line)
			if m == nil {
				err = ErrInvalidConfig
				return
			}
			src.Config, err = ParseConfig(strings.Split(m[1], ","))
			if err != nil {
				return
			}
			configured = true
			continue
		}

		words := strings.Fields(line)

		// .equ CONST VALUE
		if words[0] == ".equ" {
			if len(words) != 3 {
				err = ErrEquateSyntax
				return
			}
			_, ok := ld.Equate[words[1]]
			if ok {
				err = ErrEquateDuplicate
				return
			}
			ld.Equate[words[1]] = words[2]
			continue
		}

		line, err = ld.expandLine(line)
		if err != nil {
			return
		}

		src.Lines = append(src.Lines, line)
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if !configured {
		err = ErrInvalidConfig
		return
	}

	return
}
