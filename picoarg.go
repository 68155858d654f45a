package picoarg

import (
	"fmt"
	"io"
	"os"

	"github.com/anacrolix/missinggo"
)

// An option serves as both a declaration and a match. Declarations carry an
// empty value; matches copy their declaration and fill the value in.
type option struct {
	key          byte
	value        string
	expectsValue bool
}

// OptionParser recognizes short options of the form -k or -kVALUE in an
// argument vector. The zero value is ready to use and prints diagnostics to
// standard output.
type OptionParser struct {
	options []option // declared, consumed by a successful Parse
	parsed  []option // matched, drained by PopValue
	output  io.Writer
}

func New(opts ...parseOpt) *OptionParser {
	p := new(OptionParser)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Add declares the option identified by key. If expectsValue is set, a
// matching token must carry an inline value (-kVALUE). Keys are not checked
// for duplicates; lookup takes the first declaration with a matching key,
// so a re-added key is never found.
func (p *OptionParser) Add(key byte, expectsValue bool) {
	p.options = append(p.options, option{key: key, expectsValue: expectsValue})
}

// Parse matches argv against the declared options. argv is the full vector
// as supplied to the process; argv[0] is the program name and is skipped.
// On failure a one line diagnostic is written to the configured output and
// the error is returned; options matched before the failing token remain
// queryable. On success the declarations are cleared, so a second parse
// requires re-adding them.
func (p *OptionParser) Parse(argv []string) error {
	args := argv
	if len(args) != 0 {
		args = args[1:]
	}
	for _, token := range args {
		err := p.parseToken(token)
		if err != nil {
			fmt.Fprintf(p.writer(), "%s", missinggo.Unchomp(err.Error()))
			return err
		}
	}
	p.options = nil
	return nil
}

func (p *OptionParser) parseToken(token string) error {
	if !isOption(token) {
		return OptionExpectedError{Token: token}
	}
	key := token[1]
	opt, ok := p.findOption(key)
	if !ok {
		return UnknownOptionError{Key: key}
	}
	var value string
	if len(token) > 2 {
		value = token[2:]
	}
	if opt.expectsValue && value == "" {
		return MissingValueError{Key: key}
	}
	if !opt.expectsValue && value != "" {
		return UnexpectedValueError{Key: key, Value: value}
	}
	p.parsed = append(p.parsed, option{key: key, value: value, expectsValue: opt.expectsValue})
	return nil
}

// Has reports whether a parsed option with the given key remains.
func (p *OptionParser) Has(key byte) bool {
	for _, o := range p.parsed {
		if o.key == key {
			return true
		}
	}
	return false
}

// PopValue removes the first parsed option with the given key and returns
// its value, the empty string for an option declared without one. Repeated
// occurrences pop in argument order. An absent key returns the empty
// string and changes nothing.
func (p *OptionParser) PopValue(key byte) string {
	for i, o := range p.parsed {
		if o.key == key {
			p.parsed = append(p.parsed[:i], p.parsed[i+1:]...)
			return o.value
		}
	}
	return ""
}

// PopArgument is an older name for PopValue.
func (p *OptionParser) PopArgument(key byte) string {
	return p.PopValue(key)
}

func (p *OptionParser) findOption(key byte) (option, bool) {
	for _, o := range p.options {
		if o.key == key {
			return o, true
		}
	}
	return option{}, false
}

// A bare "-" and the empty string are not options.
func isOption(token string) bool {
	return len(token) > 1 && token[0] == '-'
}

func (p *OptionParser) writer() io.Writer {
	if p.output != nil {
		return p.output
	}
	return os.Stdout
}
